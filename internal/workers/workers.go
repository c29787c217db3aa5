// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/service"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the background workers of the server. The health probe
// is only created when a reporter is given, i.e. when gRPC is enabled.
func NewWorkers(maintenance service.MaintenanceService, health HealthReporter, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ReconcileInterval > 0 {
		w.workers = append(w.workers, newCategoryCountReconciler(maintenance, cfg.ReconcileInterval, logger))
	}
	if health != nil && cfg.HealthProbeInterval > 0 {
		w.workers = append(w.workers, newHealthProbe(maintenance, health, cfg.HealthProbeInterval, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker := worker
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until all started workers have returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
