// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-stash-journal/internal/config"
	"github.com/MKhiriev/go-stash-journal/internal/handler"
	"github.com/MKhiriev/go-stash-journal/internal/handler/http"
	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/metrics"
	"github.com/MKhiriev/go-stash-journal/internal/notifier"
	"github.com/MKhiriev/go-stash-journal/internal/server"
	"github.com/MKhiriev/go-stash-journal/internal/service"
	"github.com/MKhiriev/go-stash-journal/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-stash-server").Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLoggerWithLevel("go-stash-server", cfg.App.LogLevel, os.Stdout)
	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	feed, err := notifier.New(ctx, cfg.Notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating change feed")
	}
	defer feed.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, string(db.Dialect())),
	)
	m := metrics.New(registry)

	services, err := service.NewServices(store.NewStorages(db, log), feed, m, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log,
		http.WithMetrics(m, registry),
		http.WithDefaultLocation(cfg.App.Location()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
