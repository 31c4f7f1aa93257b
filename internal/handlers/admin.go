package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"gatbot/internal/models"
	"gatbot/internal/store"
)

// AdminHandler exposes the store's replace/clear operations for reseeding
// FAQ and contact content. All routes here sit behind the admin auth
// middleware.
type AdminHandler struct {
	faqs     store.FAQStore
	contacts store.ContactStore
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(faqs store.FAQStore, contacts store.ContactStore) *AdminHandler {
	return &AdminHandler{faqs: faqs, contacts: contacts}
}

// ReplaceFAQs swaps the entire FAQ corpus for the posted records.
func (h *AdminHandler) ReplaceFAQs(c fiber.Ctx) error {
	var req models.ReplaceFAQsRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	for _, faq := range req.FAQs {
		if faq.Question == "" || faq.Answer == "" {
			return jsonError(c, fiber.StatusBadRequest, "faq records require question and answer")
		}
	}

	if err := h.faqs.ReplaceAll(c.Context(), req.FAQs); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to replace faqs")
	}

	return jsonSuccess(c, fiber.Map{"count": len(req.FAQs)})
}

// ClearFAQs removes all FAQ records.
func (h *AdminHandler) ClearFAQs(c fiber.Ctx) error {
	if err := h.faqs.Clear(c.Context()); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to clear faqs")
	}
	return jsonSuccess(c, fiber.Map{"count": 0})
}

// ReplaceContact swaps the stored admin contact. The resolver reads the
// contact once at startup, so the new value applies after a restart.
func (h *AdminHandler) ReplaceContact(c fiber.Ctx) error {
	var contact models.Contact
	if err := json.Unmarshal(c.Body(), &contact); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if contact.Name == "" || contact.Email == "" {
		return jsonError(c, fiber.StatusBadRequest, "contact requires name and email")
	}

	if err := h.contacts.Replace(c.Context(), &contact); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to replace contact")
	}

	return jsonSuccess(c, contact)
}
