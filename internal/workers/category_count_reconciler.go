// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/service"
)

// categoryCountReconciler periodically recomputes categories.domain_count
// from the domains table.
type categoryCountReconciler struct {
	maintenance service.MaintenanceService
	interval    time.Duration

	logger *logger.Logger
}

func newCategoryCountReconciler(maintenance service.MaintenanceService, interval time.Duration, logger *logger.Logger) *categoryCountReconciler {
	return &categoryCountReconciler{
		maintenance: maintenance,
		interval:    interval,
		logger:      logger,
	}
}

func (c *categoryCountReconciler) Run(ctx context.Context) {
	log := c.logger.With().Str("worker", "category_count_reconciler").Logger()
	log.Info().Dur("interval", c.interval).Msg("worker started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker stopped")
			return
		case <-ticker.C:
			fixed, err := c.maintenance.ReconcileCategoryCounts(log.WithContext(ctx))
			if err != nil {
				log.Err(err).Msg("reconciling category counters failed")
				continue
			}
			log.Debug().Int64("fixed", fixed).Msg("category counters reconciled")
		}
	}
}
