package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"gatbot/internal/store"
)

// ConsoleHandler renders the minimal debug console page.
type ConsoleHandler struct {
	faqs store.FAQStore
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(faqs store.FAQStore) *ConsoleHandler {
	return &ConsoleHandler{faqs: faqs}
}

// Index renders a small page with the corpus size and a chat test form.
func (h *ConsoleHandler) Index(c fiber.Ctx) error {
	count, err := h.faqs.Count(c.Context())
	if err != nil {
		log.Warn().Err(err).Msg("failed to count faqs for console")
		count = 0
	}

	return c.Render("index", fiber.Map{
		"Title":    "GAT Chatbot",
		"FAQCount": count,
	})
}
