package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/lovecontract/internal/api"
	"github.com/linskybing/lovecontract/internal/api/handlers"
	"github.com/linskybing/lovecontract/internal/api/routes"
	"github.com/linskybing/lovecontract/internal/application"
	"github.com/linskybing/lovecontract/internal/config"
	"github.com/linskybing/lovecontract/internal/config/db"
	"github.com/linskybing/lovecontract/internal/logger"
	"github.com/linskybing/lovecontract/internal/realtime"
	"github.com/linskybing/lovecontract/internal/repository"
)

// @title Relationship Contract API
// @version 1.0
// @description Create a relationship contract, sign it as both partners and celebrate.
// @BasePath /
func main() {
	// Load configuration from environment variables and .env file
	cfg := config.Load()
	log := logger.New(cfg)

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	repos := repository.NewRepositories(gdb)
	hub := realtime.NewHub(log)
	services := application.New(repos, hub, log)
	h := handlers.New(services, repos, hub, cfg)

	gin.SetMode(cfg.GinMode)
	router := routes.NewRouter(cfg, h, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.NewHttpServer(cfg, router, log).Run(ctx, hub.Close); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
