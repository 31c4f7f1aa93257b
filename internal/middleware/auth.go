// Package middleware provides HTTP middleware for the chatbot API.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// RequireAdmin rejects requests without an authenticated admin session.
// The session is established by the OIDC callback.
func RequireAdmin(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "unauthorized",
		})
	}

	if sess.Get("admin_sub") == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "unauthorized",
		})
	}

	return c.Next()
}
