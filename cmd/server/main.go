package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"gatbot/internal/ai"
	"gatbot/internal/chat"
	"gatbot/internal/config"
	"gatbot/internal/jobs"
	"gatbot/internal/logging"
	"gatbot/internal/metrics"
	"gatbot/internal/server"
	"gatbot/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logging.Setup(cfg.Env)

	// Select the record stores: Postgres when configured and reachable,
	// in-memory substitute otherwise (degraded mode).
	var (
		faqStore     store.FAQStore
		contactStore store.ContactStore
		ping         func(ctx context.Context) error
	)

	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set; using in-memory store")
		faqStore, contactStore = memoryStores(cfg)
	} else {
		database, err := store.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed; using in-memory store")
			faqStore, contactStore = memoryStores(cfg)
		} else {
			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				log.Fatal().Err(err).Msg("failed to run migrations")
			}
			log.Info().Msg("connected to database, migrations completed")
			defer database.Close()
			faqStore, contactStore = database, database
			ping = database.Ping
		}
	}

	// Optional redis corpus cache
	var cached *store.CachedFAQs
	if cfg.RedisURL != "" {
		cached = store.NewCachedFAQs(faqStore, cfg.RedisURL, cfg.CacheTTL)
		faqStore = cached
		defer cached.Close()
		log.Info().Dur("ttl", cfg.CacheTTL).Msg("faq corpus cache enabled")
	}

	metrics.Init(faqStore)

	// Admin contact is resolved once at startup and immutable thereafter.
	adminName, adminEmail := cfg.AdminName, cfg.AdminEmail
	if contact, err := contactStore.Get(ctx); err == nil {
		adminName, adminEmail = contact.Name, contact.Email
	} else {
		log.Warn().Err(err).Msg("no stored admin contact; using configured defaults")
	}

	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set; AI responses will not work")
	}

	resolver := chat.NewResolver(chat.ResolverConfig{
		FAQs:       faqStore,
		AI:         ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel),
		Matcher:    chat.NewMatcher(cfg.MatchThreshold, cfg.MatchPrefixBonus),
		AdminName:  adminName,
		AdminEmail: adminEmail,
	})

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, server.Deps{
		FAQs:     faqStore,
		Contacts: contactStore,
		Resolver: resolver,
		Ping:     ping,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	// Background corpus warmer (only useful with the cache)
	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()
	if cached != nil {
		warmer := jobs.NewCorpusWarmer(cached, cfg.WarmInterval)
		go warmer.Start(jobCtx)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", cfg.ServerAddr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	cancelJobs()
	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}

// memoryStores builds the in-memory substitute stores. Development gets the
// seed corpus so the bot answers out of the box; production stays empty
// until reseeded.
func memoryStores(cfg *config.Config) (store.FAQStore, store.ContactStore) {
	if cfg.IsDev() {
		faqs := store.NewMemoryFAQs(store.SeedFAQs...)
		contacts := store.NewMemoryContacts()
		contacts.Replace(context.Background(), &store.SeedContact)
		log.Info().Int("faqs", len(store.SeedFAQs)).Msg("seeded in-memory store for development")
		return faqs, contacts
	}
	return store.NewMemoryFAQs(), store.NewMemoryContacts()
}
