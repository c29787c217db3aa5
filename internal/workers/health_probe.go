// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/service"
)

// healthProbe pings the database and forwards the result to the gRPC health
// service. The first probe runs immediately.
type healthProbe struct {
	maintenance service.MaintenanceService
	reporter    HealthReporter
	interval    time.Duration

	logger *logger.Logger
}

func newHealthProbe(maintenance service.MaintenanceService, reporter HealthReporter, interval time.Duration, logger *logger.Logger) *healthProbe {
	return &healthProbe{
		maintenance: maintenance,
		reporter:    reporter,
		interval:    interval,
		logger:      logger,
	}
}

func (p *healthProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.probe(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *healthProbe) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.maintenance.CheckHealth(probeCtx)
	if err != nil && ctx.Err() != nil {
		return
	}
	if err != nil {
		p.logger.Warn().Err(err).Str("worker", "health_probe").Msg("database health check failed")
	}
	p.reporter.SetServing(err == nil)
}
