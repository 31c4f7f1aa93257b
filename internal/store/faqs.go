package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gatbot/internal/models"
)

// ReadAll returns every FAQ record in insertion order.
func (d *DB) ReadAll(ctx context.Context) ([]models.FAQ, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT question, answer
		FROM faqs
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read faqs: %w", err)
	}
	defer rows.Close()

	var faqs []models.FAQ
	for rows.Next() {
		var faq models.FAQ
		if err := rows.Scan(&faq.Question, &faq.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, faq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read faqs: %w", err)
	}

	return faqs, nil
}

// ReplaceAll atomically swaps the entire FAQ corpus for the given records,
// preserving their order.
func (d *DB) ReplaceAll(ctx context.Context, faqs []models.FAQ) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM faqs`); err != nil {
		return fmt.Errorf("failed to clear faqs: %w", err)
	}

	for i, faq := range faqs {
		_, err := tx.Exec(ctx, `
			INSERT INTO faqs (id, question, answer, position)
			VALUES ($1, $2, $3, $4)
		`, uuid.New(), faq.Question, faq.Answer, i)
		if err != nil {
			return fmt.Errorf("failed to insert faq %d: %w", i, err)
		}
	}

	return tx.Commit(ctx)
}

// Count returns the number of FAQ records.
func (d *DB) Count(ctx context.Context) (int, error) {
	var count int
	if err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count faqs: %w", err)
	}
	return count, nil
}

// Clear removes all FAQ records.
func (d *DB) Clear(ctx context.Context) error {
	if _, err := d.Pool.Exec(ctx, `DELETE FROM faqs`); err != nil {
		return fmt.Errorf("failed to clear faqs: %w", err)
	}
	return nil
}
