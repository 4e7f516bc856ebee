package main

import (
	"fmt"
	"os"

	"github.com/Titoluwa/kofc-5264/internal/api"
	"github.com/Titoluwa/kofc-5264/internal/config"
	"github.com/Titoluwa/kofc-5264/internal/db"
	"github.com/Titoluwa/kofc-5264/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.IsProduction())
	if cfg.Server.JWTSecret == config.DevJWTSecret {
		log.Warn().Msg("jwtSecret not configured, using insecure development secret")
	}

	if err := db.Init(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	log.Info().Msg("database connected and migrated")

	if err := db.Seed(db.DB); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	r := api.SetupRouter(cfg, log)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
