package main

import (
	"database/sql"
	"net/http"
	"time"

	"kitty-catalog/internal/adapters/auth/jwtauth"
	"kitty-catalog/internal/adapters/storage/postgres"
	"kitty-catalog/internal/config"
	"kitty-catalog/internal/platform/logger"
	"kitty-catalog/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	tokens, err := jwtauth.NewService(cfg.JWTKey, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("init token service")
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		if err := postgres.Migrate(cfg.DBDSN); err != nil {
			log.Fatal().Err(err).Msg("run migrations")
		}
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("open database")
		}
		defer db.Close()
	} else {
		log.Warn().Msg("DB_DSN not set, using in-memory storage")
	}

	r := router.NewRouter(router.Options{
		Tokens: tokens,
		DB:     db,
		Logger: log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
