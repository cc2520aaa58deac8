package main

import (
	"context"
	"fmt"

	"github.com/siteforge-io/siteforge/internal/config"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/render"
	"github.com/siteforge-io/siteforge/internal/server"
	"github.com/siteforge-io/siteforge/internal/service"
	"github.com/siteforge-io/siteforge/internal/site"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
	"github.com/siteforge-io/siteforge/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("siteforge-site")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	slot := store.NewLocalSlot(cfg.Site.OverridePath)
	loader := siteconfig.NewLoader(siteconfig.LoaderConfig{
		BaseSource:     cfg.Site.BaseSource,
		RemoteEndpoint: cfg.Remote.Endpoint,
		Timeout:        cfg.Server.RequestTimeout,
	}, slot, log)

	holder := site.NewHolder(loader, log)
	if err = holder.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	handlers := site.NewHandler(holder, render.New(log), cfg.Site, log)

	var onShutdown []func()
	if cfg.Workers.RefreshInterval > 0 {
		job := service.NewRefreshJob(holder)
		job.Start(ctx, cfg.Workers.RefreshInterval)
		onShutdown = append(onShutdown, job.Stop)
	}

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log, onShutdown...)
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
