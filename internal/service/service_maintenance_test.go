// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_ReconcileCategoryCounts(t *testing.T) {
	categories := &mockCategoryRepo{}
	categories.reconcileFn = func(context.Context) (int64, error) { return 3, nil }

	svc := NewMaintenanceService(categories, &mockHealth{}, logger.Nop())
	fixed, err := svc.ReconcileCategoryCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), fixed)

	categories.reconcileFn = func(context.Context) (int64, error) { return 0, store.ErrPoolExhausted }
	_, err = svc.ReconcileCategoryCounts(context.Background())
	require.ErrorIs(t, err, store.ErrPoolExhausted)
}

func TestMaintenanceService_CheckHealth(t *testing.T) {
	health := &mockHealth{}
	svc := NewMaintenanceService(&mockCategoryRepo{}, health, logger.Nop())

	require.NoError(t, svc.CheckHealth(context.Background()))

	health.err = errors.New("connection refused")
	require.EqualError(t, svc.CheckHealth(context.Background()), "connection refused")
}
