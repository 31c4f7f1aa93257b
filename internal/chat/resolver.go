package chat

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gatbot/internal/models"
	"gatbot/internal/store"
)

const genericErrorMessage = "An error occurred."

// Completer produces an AI answer for a question. Implementations must not
// fail: degraded conditions come back as user-visible text.
type Completer interface {
	Ask(ctx context.Context, question string) string
}

// ResolverConfig collects the resolver's collaborators and fixed settings.
type ResolverConfig struct {
	FAQs    store.FAQStore
	AI      Completer
	Matcher *Matcher

	// Admin contact for the static fallback message, resolved once at
	// startup (contact store record or configured defaults).
	AdminName  string
	AdminEmail string
}

// Resolver runs the question through the priority chain
// rule > faq > ai > static fallback and tags the result with its source.
type Resolver struct {
	faqs       store.FAQStore
	ai         Completer
	matcher    *Matcher
	adminName  string
	adminEmail string
	log        zerolog.Logger
}

// NewResolver creates a resolver from its configuration.
func NewResolver(cfg ResolverConfig) *Resolver {
	return &Resolver{
		faqs:       cfg.FAQs,
		ai:         cfg.AI,
		matcher:    cfg.Matcher,
		adminName:  cfg.AdminName,
		adminEmail: cfg.AdminEmail,
		log:        log.With().Str("component", "resolver").Logger(),
	}
}

// Resolve answers a user question. It is total: every input produces exactly
// one Resolution, and no failure escapes past this boundary.
func (r *Resolver) Resolve(ctx context.Context, question string) (res models.Resolution) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Interface("panic", rec).Str("question", question).Msg("resolution panicked")
			res = models.Resolution{Response: genericErrorMessage, Source: models.SourceError}
		}
	}()

	if answer, ok := MatchRule(question); ok {
		return models.Resolution{Response: answer, Source: models.SourceRule}
	}

	if faq, score, ok := r.bestFAQ(ctx, question); ok {
		r.log.Info().Int("score", score).Str("matched", faq.Question).Msg("matched FAQ")
		return models.Resolution{Response: faq.Answer, Source: models.SourceFAQ}
	}

	if InDomain(question) {
		return models.Resolution{Response: r.ai.Ask(ctx, question), Source: models.SourceAI}
	}

	return models.Resolution{Response: r.fallbackMessage(), Source: models.SourceFallback}
}

// bestFAQ reads the corpus and delegates to the matcher. A store read failure
// is treated as "no data available", not as a resolution failure.
func (r *Resolver) bestFAQ(ctx context.Context, question string) (*models.FAQ, int, bool) {
	corpus, err := r.faqs.ReadAll(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("failed to read FAQ corpus")
		return nil, 0, false
	}
	return r.matcher.Best(question, corpus)
}

func (r *Resolver) fallbackMessage() string {
	return fmt.Sprintf(
		"Sorry, I can only answer queries related to Global Academy of Technology. Please contact %s at %s.",
		r.adminName, r.adminEmail,
	)
}
