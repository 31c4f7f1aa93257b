package store

import (
	"context"
	"sync"

	"gatbot/internal/models"
)

// MemoryFAQs is an in-memory FAQStore, used when no database is configured or
// the connection fails at startup. Reads and the admin replace/clear surface
// may run concurrently, hence the lock.
type MemoryFAQs struct {
	mu      sync.RWMutex
	records []models.FAQ
}

// NewMemoryFAQs creates an in-memory FAQ store with the given records.
func NewMemoryFAQs(records ...models.FAQ) *MemoryFAQs {
	m := &MemoryFAQs{}
	m.records = append(m.records, records...)
	return m
}

// ReadAll returns a copy of the stored records in insertion order.
func (m *MemoryFAQs) ReadAll(ctx context.Context) ([]models.FAQ, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.FAQ, len(m.records))
	copy(out, m.records)
	return out, nil
}

// ReplaceAll swaps the stored records for the given ones.
func (m *MemoryFAQs) ReplaceAll(ctx context.Context, faqs []models.FAQ) error {
	records := make([]models.FAQ, len(faqs))
	copy(records, faqs)

	m.mu.Lock()
	m.records = records
	m.mu.Unlock()
	return nil
}

// Count returns the number of stored records.
func (m *MemoryFAQs) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records), nil
}

// Clear removes all stored records.
func (m *MemoryFAQs) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.records = nil
	m.mu.Unlock()
	return nil
}

// MemoryContacts is an in-memory ContactStore.
type MemoryContacts struct {
	mu      sync.RWMutex
	contact *models.Contact
}

// NewMemoryContacts creates an empty in-memory contact store.
func NewMemoryContacts() *MemoryContacts {
	return &MemoryContacts{}
}

// Get returns the stored contact, or ErrContactNotFound when empty.
func (m *MemoryContacts) Get(ctx context.Context) (*models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.contact == nil {
		return nil, ErrContactNotFound
	}
	c := *m.contact
	return &c, nil
}

// Replace stores the given contact.
func (m *MemoryContacts) Replace(ctx context.Context, contact *models.Contact) error {
	c := *contact

	m.mu.Lock()
	m.contact = &c
	m.mu.Unlock()
	return nil
}
