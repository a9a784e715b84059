package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/push"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vault-sync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect local database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate local database")
	}

	vaultStore := store.NewVaultStore(db, log)
	settingsStore := store.NewSettingsStore(db, log)
	authStore := store.NewAuthStore(db, log)

	cryptoEngine := crypto.NewEngine(log)

	syncAdapter, err := adapter.NewHTTPSyncAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create sync adapter")
	}

	pushManager := push.NewManager(log)
	logoutManager := service.NewLogoutManager(vaultStore, settingsStore, authStore, cryptoEngine, syncAdapter, log)

	engine := service.NewVaultEngine(vaultStore, settingsStore, authStore, cryptoEngine, syncAdapter, pushManager, logoutManager, log)
	engine.Run(ctx)

	notificationSource, err := adapter.NewHTTPNotificationSource(cfg.Adapter, syncAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create notification source")
	}

	background := workers.NewWorkers(engine, notificationSource, pushManager, log)
	background.Start(ctx, cfg.Workers.SyncInterval)
	defer background.Stop()

	log.Info().Str("func", "main").Msg("vault sync client running")
	<-ctx.Done()
	log.Info().Str("func", "main").Msg("shutting down")
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
