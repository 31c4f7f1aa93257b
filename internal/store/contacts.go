package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gatbot/internal/models"
)

// Get returns the current admin contact, or ErrContactNotFound when none has
// been seeded.
func (d *DB) Get(ctx context.Context) (*models.Contact, error) {
	var contact models.Contact
	err := d.Pool.QueryRow(ctx, `
		SELECT name, email
		FROM contacts
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&contact.Name, &contact.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read contact: %w", err)
	}
	return &contact, nil
}

// Replace clears any stored contacts and inserts the given one.
func (d *DB) Replace(ctx context.Context, contact *models.Contact) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO contacts (id, name, email)
		VALUES ($1, $2, $3)
	`, uuid.New(), contact.Name, contact.Email)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return tx.Commit(ctx)
}
