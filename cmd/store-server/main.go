package main

import (
	"context"
	"fmt"

	"github.com/siteforge-io/siteforge/internal/config"
	handler "github.com/siteforge-io/siteforge/internal/handler/http"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/server"
	"github.com/siteforge-io/siteforge/internal/service"
	"github.com/siteforge-io/siteforge/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("siteforge-store")
	cfg, err := config.GetStoreConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting storage")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repo := store.NewConfigRepository(db, log)
	svc := service.NewConfigService(repo, log)

	handlers := handler.NewHandler(svc, *cfg, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
