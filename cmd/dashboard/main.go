package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/siteforge-io/siteforge/internal/config"
	"github.com/siteforge-io/siteforge/internal/editor"
	"github.com/siteforge-io/siteforge/internal/gateway"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
	"github.com/siteforge-io/siteforge/internal/store"
	"github.com/siteforge-io/siteforge/internal/tui"
	"github.com/siteforge-io/siteforge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// The terminal belongs to the UI, so logs go to a file.
	log := logger.NewFileLogger("siteforge-dashboard")
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

	gw := gateway.New(slot, gateway.RemoteConfig{
		Endpoint: cfg.Remote.Endpoint,
		Token:    cfg.Remote.Token,
		Timeout:  cfg.Server.RequestTimeout,
	}, log)

	session := editor.NewSession(loader.Load(ctx), editLocale(cfg.Site.Lang), gw, log)

	ui, err := tui.New(session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dashboard")
	}

	if err = ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("dashboard exited with error")
		os.Exit(1)
	}
}

// editLocale maps the configured language onto a known edit locale,
// defaulting to English.
func editLocale(lang string) models.Locale {
	for _, l := range models.Locales() {
		if string(l) == lang {
			return l
		}
	}

	return models.LocaleEN
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
