// Package store provides the FAQ and contact record stores. The resolver only
// depends on the interfaces here; a Postgres-backed implementation and an
// in-memory substitute are selected at startup.
package store

import (
	"context"

	"gatbot/internal/models"
)

// FAQStore is the FAQ corpus consumed by the resolver. Implementations must
// return records in a stable order: best-match ties are broken by iteration
// order, so reordering the corpus changes answers.
type FAQStore interface {
	ReadAll(ctx context.Context) ([]models.FAQ, error)
	ReplaceAll(ctx context.Context, faqs []models.FAQ) error
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

// ContactStore holds the effectively-singleton admin contact.
type ContactStore interface {
	Get(ctx context.Context) (*models.Contact, error)
	Replace(ctx context.Context, contact *models.Contact) error
}
