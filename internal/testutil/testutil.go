// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"testing"

	"gatbot/internal/models"
	"gatbot/internal/store"
)

// TestFAQs is a small, representative corpus used across tests.
var TestFAQs = []models.FAQ{
	{Question: "When was GAT established?", Answer: "Global Academy of Technology (GAT) was established in 2001 under the National Education Foundation (NEF)."},
	{Question: "Where is GAT located?", Answer: "GAT is located at Aditya Layout, Rajarajeshwari Nagar, Bengaluru, Karnataka – 560098."},
	{Question: "What is the hostel fee?", Answer: "Hostel fees are around ₹80,000 per year depending on sharing and facilities."},
	{Question: "Are scholarships available?", Answer: "Yes, both government and private scholarships are available."},
}

// SeededStores returns in-memory FAQ and contact stores pre-populated with
// the test fixtures.
func SeededStores(t *testing.T) (*store.MemoryFAQs, *store.MemoryContacts) {
	t.Helper()

	faqs := store.NewMemoryFAQs(TestFAQs...)
	contacts := store.NewMemoryContacts()
	if err := contacts.Replace(context.Background(), &models.Contact{
		Name:  "Mr. Rajesh Kumar",
		Email: "rajesh.kumar@gat.ac.in",
	}); err != nil {
		t.Fatalf("failed to seed contact store: %v", err)
	}

	return faqs, contacts
}
