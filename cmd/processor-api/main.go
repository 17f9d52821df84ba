package main

import (
	"go-data-processor/internal/api"
	"go-data-processor/internal/config"
	"go-data-processor/internal/logger"
	"go-data-processor/internal/store"
	"go-data-processor/pkg/router"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalw("failed to open run registry", "error", err)
	}

	r := router.New()
	api.RegisterRoutes(r)

	log.Infow("🚀 Run history API listening", "addr", cfg.ListenAddr)
	if err := r.Start(cfg.ListenAddr); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
