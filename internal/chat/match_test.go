package chat

import (
	"testing"

	"gatbot/internal/models"
)

func corpus(questions ...string) []models.FAQ {
	faqs := make([]models.FAQ, len(questions))
	for i, q := range questions {
		faqs[i] = models.FAQ{Question: q, Answer: "answer " + q}
	}
	return faqs
}

func TestBestExactMatch(t *testing.T) {
	m := NewMatcher(70, 5)
	c := corpus("When was GAT established?", "Where is GAT located?")

	faq, score, ok := m.Best("When was GAT established?", c)
	if !ok {
		t.Fatal("expected a match")
	}
	if faq.Question != "When was GAT established?" {
		t.Errorf("matched %q", faq.Question)
	}
	// 100 for the exact match plus the prefix bonus.
	if score != 105 {
		t.Errorf("score = %d, want 105", score)
	}
}

func TestBestTokenOrderInsensitive(t *testing.T) {
	m := NewMatcher(70, 5)
	c := corpus("fee hostel")

	faq, score, ok := m.Best("hostel fee", c)
	if !ok {
		t.Fatal("expected a match despite reordered tokens")
	}
	if faq.Question != "fee hostel" {
		t.Errorf("matched %q", faq.Question)
	}
	// Reordered tokens score 100 but are not a literal prefix.
	if score != 100 {
		t.Errorf("score = %d, want 100", score)
	}
}

func TestBestThresholdInclusive(t *testing.T) {
	// A reordered-token candidate scores exactly 100 with no prefix bonus,
	// which pins the boundary: threshold 100 accepts it, 101 does not.
	c := corpus("fee hostel")

	if _, _, ok := NewMatcher(100, 5).Best("hostel fee", c); !ok {
		t.Error("score equal to the threshold must be accepted")
	}
	if _, _, ok := NewMatcher(101, 5).Best("hostel fee", c); ok {
		t.Error("score below the threshold must be rejected")
	}
}

func TestBestPrefixBonus(t *testing.T) {
	c := corpus("when was gat established")

	_, with, ok := NewMatcher(1, 5).Best("when was gat", c)
	if !ok {
		t.Fatal("expected a match")
	}
	_, without, ok := NewMatcher(1, 0).Best("when was gat", c)
	if !ok {
		t.Fatal("expected a match")
	}
	if with-without != 5 {
		t.Errorf("prefix bonus = %d, want 5", with-without)
	}
}

func TestBestTieBreakFirstWins(t *testing.T) {
	m := NewMatcher(70, 5)
	c := []models.FAQ{
		{Question: "What is the hostel fee?", Answer: "first"},
		{Question: "What is the hostel fee?", Answer: "second"},
	}

	faq, _, ok := m.Best("What is the hostel fee?", c)
	if !ok {
		t.Fatal("expected a match")
	}
	if faq.Answer != "first" {
		t.Errorf("tie-break returned %q, want the earlier record", faq.Answer)
	}
}

func TestBestNoMatch(t *testing.T) {
	m := NewMatcher(70, 5)

	tests := []struct {
		name     string
		question string
		corpus   []models.FAQ
	}{
		{"empty corpus", "When was GAT established?", nil},
		{"empty question", "", corpus("When was GAT established?")},
		{"punctuation only question", "?!.,", corpus("When was GAT established?")},
		{"dissimilar", "quantum entanglement research papers", corpus("When was GAT established?")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := m.Best(tt.question, tt.corpus); ok {
				t.Errorf("Best(%q) matched, want absent", tt.question)
			}
		})
	}
}
