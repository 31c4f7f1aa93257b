package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"

	"gatbot/internal/chat"
	"gatbot/internal/metrics"
	"gatbot/internal/models"
	"gatbot/internal/validation"
)

// ChatHandler handles chat question resolution.
type ChatHandler struct {
	resolver *chat.Resolver
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(resolver *chat.Resolver) *ChatHandler {
	return &ChatHandler{resolver: resolver}
}

// Chat resolves a user question. The resolver is total, so every well-formed
// request is answered with 200; degraded conditions show up in the source
// tag, never as transport errors.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req models.ChatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if ok, msg := validation.ValidateMessage(req.UserMessage); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	start := time.Now()
	res := h.resolver.Resolve(c.Context(), req.UserMessage)
	metrics.RecordResolution(string(res.Source), time.Since(start))

	return c.JSON(res)
}
