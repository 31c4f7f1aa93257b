package chat

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"gatbot/internal/models"
)

// Matcher scores a user question against the FAQ corpus with a token-sort
// ratio, so word order does not affect the score.
type Matcher struct {
	threshold   int
	prefixBonus int
}

// NewMatcher creates a matcher. A candidate is accepted when its score is at
// least threshold (inclusive). prefixBonus is added when the stored question
// starts with the user's question, rewarding exact truncated input.
func NewMatcher(threshold, prefixBonus int) *Matcher {
	return &Matcher{threshold: threshold, prefixBonus: prefixBonus}
}

// Best returns the highest-scoring FAQ record at or above the threshold,
// together with its score. Ties keep the earliest record in corpus order.
// Returns false for empty input, an empty corpus, or no candidate reaching
// the threshold.
func (m *Matcher) Best(question string, corpus []models.FAQ) (*models.FAQ, int, bool) {
	userQ := Normalize(question)
	if userQ == "" {
		return nil, 0, false
	}

	var best *models.FAQ
	bestScore := -1
	for i := range corpus {
		faqQ := Normalize(corpus[i].Question)
		score := fuzzy.TokenSortRatio(userQ, faqQ)
		if strings.HasPrefix(faqQ, userQ) {
			score += m.prefixBonus
		}
		if score > bestScore {
			bestScore = score
			best = &corpus[i]
		}
	}

	if best == nil || bestScore < m.threshold {
		return nil, 0, false
	}
	return best, bestScore, true
}
