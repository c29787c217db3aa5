// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/store"
)

type maintenanceService struct {
	categoryRepository store.CategoryRepository
	health             store.HealthChecker

	logger *logger.Logger
}

func NewMaintenanceService(categoryRepository store.CategoryRepository, health store.HealthChecker, logger *logger.Logger) MaintenanceService {
	return &maintenanceService{
		categoryRepository: categoryRepository,
		health:             health,
		logger:             logger,
	}
}

// ReconcileCategoryCounts recomputes category domain counters and returns
// how many were off.
func (m *maintenanceService) ReconcileCategoryCounts(ctx context.Context) (int64, error) {
	fixed, err := m.categoryRepository.ReconcileDomainCounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconciling category counters failed: %w", err)
	}

	if fixed > 0 {
		logger.FromContext(ctx).Warn().Int64("categories", fixed).Msg("category domain counters drifted and were corrected")
	}

	return fixed, nil
}

func (m *maintenanceService) CheckHealth(ctx context.Context) error {
	return m.health.CheckHealth(ctx)
}
