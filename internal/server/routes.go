package server

import (
	"context"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"gatbot/internal/chat"
	"gatbot/internal/handlers"
	"gatbot/internal/middleware"
	"gatbot/internal/store"
)

// Deps are the collaborators the routes need.
type Deps struct {
	FAQs     store.FAQStore
	Contacts store.ContactStore
	Resolver *chat.Resolver

	// Ping checks store connectivity for readiness; nil with the memory store.
	Ping func(ctx context.Context) error
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	chatHandler := handlers.NewChatHandler(deps.Resolver)
	faqHandler := handlers.NewFAQHandler(deps.FAQs)
	probeHandler := handlers.NewProbeHandler(deps.Ping)
	consoleHandler := handlers.NewConsoleHandler(deps.FAQs)

	// Public API consumed by the frontend
	s.App.Post("/chat", chatHandler.Chat)
	s.App.Get("/faqs", faqHandler.List)
	s.App.Get("/ping", probeHandler.Ping)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Debug console
	s.App.Get("/", consoleHandler.Index)

	// Admin surface - only when OIDC is configured
	if s.Cfg.OIDCIssuer == "" {
		log.Warn().Msg("OIDC_ISSUER not set; admin routes are disabled")
		return nil
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
	if err != nil {
		return err
	}
	adminHandler := handlers.NewAdminHandler(deps.FAQs, deps.Contacts)

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)

	s.App.Put("/admin/faqs", middleware.RequireAdmin, adminHandler.ReplaceFAQs)
	s.App.Delete("/admin/faqs", middleware.RequireAdmin, adminHandler.ClearFAQs)
	s.App.Put("/admin/contact", middleware.RequireAdmin, adminHandler.ReplaceContact)

	return nil
}
