// Command seed loads the built-in FAQ corpus and the admin contact into the
// configured database. It replaces any existing records and is safe to rerun.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"gatbot/internal/config"
	"gatbot/internal/logging"
	"gatbot/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logging.Setup(cfg.Env)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL must be set to seed the database")
	}

	database, err := store.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if err := database.ReplaceAll(ctx, store.SeedFAQs); err != nil {
		log.Fatal().Err(err).Msg("failed to seed faqs")
	}
	log.Info().Int("count", len(store.SeedFAQs)).Msg("seeded faq corpus")

	if err := database.Replace(ctx, &store.SeedContact); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin contact")
	}
	log.Info().Str("name", store.SeedContact.Name).Msg("seeded admin contact")
}
