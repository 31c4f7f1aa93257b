package handlers

import (
	"github.com/gofiber/fiber/v3"

	"gatbot/internal/models"
	"gatbot/internal/store"
)

// FAQHandler serves the FAQ corpus.
type FAQHandler struct {
	faqs store.FAQStore
}

// NewFAQHandler creates a new FAQ handler.
func NewFAQHandler(faqs store.FAQStore) *FAQHandler {
	return &FAQHandler{faqs: faqs}
}

// List returns the full FAQ corpus as a read-through of the store.
func (h *FAQHandler) List(c fiber.Ctx) error {
	records, err := h.faqs.ReadAll(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to read faqs")
	}
	if records == nil {
		records = []models.FAQ{}
	}

	return c.JSON(models.FAQListResponse{
		Count: len(records),
		FAQs:  records,
	})
}
