package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/storage/redis/v3"
	"github.com/rs/zerolog/log"

	"gatbot/internal/models"
)

const corpusCacheKey = "faq_corpus"

// CachedFAQs wraps an FAQStore with a redis read-through cache of the full
// corpus. Cache failures are never surfaced: a broken cache degrades to the
// inner store.
type CachedFAQs struct {
	inner   FAQStore
	storage *redis.Storage
	ttl     time.Duration
}

// NewCachedFAQs creates a redis-backed corpus cache around inner.
func NewCachedFAQs(inner FAQStore, redisURL string, ttl time.Duration) *CachedFAQs {
	return &CachedFAQs{
		inner:   inner,
		storage: redis.New(redis.Config{URL: redisURL}),
		ttl:     ttl,
	}
}

// ReadAll returns the cached corpus when present, reading through to the
// inner store on a miss.
func (c *CachedFAQs) ReadAll(ctx context.Context) ([]models.FAQ, error) {
	if data, err := c.storage.Get(corpusCacheKey); err == nil && len(data) > 0 {
		var faqs []models.FAQ
		if err := json.Unmarshal(data, &faqs); err == nil {
			return faqs, nil
		}
		log.Warn().Msg("discarding undecodable cached faq corpus")
	}

	faqs, err := c.inner.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	c.fill(faqs)
	return faqs, nil
}

// ReplaceAll writes through to the inner store and invalidates the cache.
func (c *CachedFAQs) ReplaceAll(ctx context.Context, faqs []models.FAQ) error {
	if err := c.inner.ReplaceAll(ctx, faqs); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// Count returns the record count from the inner store.
func (c *CachedFAQs) Count(ctx context.Context) (int, error) {
	return c.inner.Count(ctx)
}

// Clear clears the inner store and invalidates the cache.
func (c *CachedFAQs) Clear(ctx context.Context) error {
	if err := c.inner.Clear(ctx); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// Refresh re-reads the corpus from the inner store and rewrites the cache
// entry, returning the corpus size. Used by the background warmer.
func (c *CachedFAQs) Refresh(ctx context.Context) (int, error) {
	faqs, err := c.inner.ReadAll(ctx)
	if err != nil {
		return 0, err
	}
	c.fill(faqs)
	return len(faqs), nil
}

// Close releases the redis connection.
func (c *CachedFAQs) Close() error {
	return c.storage.Close()
}

func (c *CachedFAQs) fill(faqs []models.FAQ) {
	data, err := json.Marshal(faqs)
	if err != nil {
		return
	}
	if err := c.storage.Set(corpusCacheKey, data, c.ttl); err != nil {
		log.Warn().Err(err).Msg("failed to cache faq corpus")
	}
}

func (c *CachedFAQs) invalidate() {
	if err := c.storage.Delete(corpusCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate faq corpus cache")
	}
}
