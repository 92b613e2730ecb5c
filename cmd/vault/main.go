package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetVaultConfig()
	if err != nil {
		logger.NewFileLogger("vault", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("vault", cfg.App.LogFile)
	if err = run(cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("vault run error")
	}
}

func run(cfg *config.VaultConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer storages.Close()

	var fetcher adapter.FaviconFetcher
	if !cfg.Adapter.FaviconDisabled {
		fetcher = adapter.NewFaviconFetcher(cfg.Adapter, log)
	}

	services, err := service.NewServices(storages, fetcher, *cfg, log)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	app := client.NewApp(services.SessionService, buildInfo, os.Stdin, os.Stdout, log)
	return app.Run()
}
