package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"PairLens/internal/analyzer"
	"PairLens/internal/config"
	"PairLens/internal/provider"
	"PairLens/internal/recorder"
	"PairLens/internal/scheduler"
	"PairLens/internal/server"
	"PairLens/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("config validation")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Msg("PairLens starting")

	// Market data provider
	var prov provider.Provider
	switch cfg.Provider.Name {
	case "alphavantage":
		prov = provider.NewAlphaVantageProvider(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Proxy)
	case "mock":
		prov = &provider.MockProvider{}
	default:
		prov = provider.NewYahooProvider(cfg.Provider.BaseURL, cfg.Proxy)
	}
	log.Info().Str("provider", prov.Name()).Msg("market data source selected")

	// Audit recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	an := analyzer.New(prov, cfg.FetchTimeout(), log)

	// Maintenance scheduler
	sched := scheduler.New(rec, cfg.Database.RetentionDays, log)
	if err := sched.Register(cfg.Database.PruneCron); err != nil {
		log.Fatal().Err(err).Msg("register maintenance tasks")
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		ListenAddr: cfg.Server.ListenAddr,
		Analyzer:   an,
		Recorder:   rec,
		Log:        log,
	})
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	log.Info().Msg("PairLens is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	log.Info().Msg("PairLens stopped")
}
