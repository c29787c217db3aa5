// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/events"
	"github.com/MKhiriev/domain-marketplace/internal/handler"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/server"
	"github.com/MKhiriev/domain-marketplace/internal/service"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/internal/workers"
	"github.com/MKhiriev/domain-marketplace/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("marketplace-server")
	if err := run(build, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(build models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer closeWithLog(log, "storages", storages.Close)

	publisher := events.NewPublisher(cfg.Events, log)
	defer closeWithLog(log, "event publisher", publisher.Close)

	services, err := service.NewServices(storages, publisher, cfg, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	var health workers.HealthReporter
	if handlers.GRPC != nil {
		health = handlers.GRPC
	}
	bgWorkers := workers.NewWorkers(services.MaintenanceService, health, cfg.Workers, log)
	bgWorkers.Run(ctx)

	err = srv.RunServer(ctx)

	stop()
	bgWorkers.Wait()

	return err
}

func closeWithLog(log *logger.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Err(err).Str("resource", name).Msg("error closing resource")
	}
}
