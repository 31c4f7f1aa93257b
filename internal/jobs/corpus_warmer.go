// Package jobs contains background maintenance tasks.
package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CorpusRefresher re-reads the FAQ corpus and rewrites its cache entry.
type CorpusRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// CorpusWarmer periodically refreshes the cached FAQ corpus so chat requests
// rarely pay for a cold read.
type CorpusWarmer struct {
	refresher CorpusRefresher
	interval  time.Duration
	log       zerolog.Logger
}

// NewCorpusWarmer creates a new corpus warmer.
func NewCorpusWarmer(refresher CorpusRefresher, interval time.Duration) *CorpusWarmer {
	return &CorpusWarmer{
		refresher: refresher,
		interval:  interval,
		log:       log.With().Str("component", "corpus-warmer").Logger(),
	}
}

// Start begins the warm loop. It runs once immediately, then on every tick
// until ctx is cancelled.
func (w *CorpusWarmer) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("corpus warmer started")

	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("corpus warmer stopped")
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CorpusWarmer) warm(ctx context.Context) {
	count, err := w.refresher.Refresh(ctx)
	if err != nil {
		w.log.Warn().Err(err).Msg("corpus refresh failed")
		return
	}
	w.log.Debug().Int("faqs", count).Msg("corpus refreshed")
}
