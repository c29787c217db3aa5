// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the marketplace health over the standard
// grpc.health.v1.Health service.
package grpc

import (
	"sync/atomic"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the named service reported next to the overall ("") status.
const ServiceName = "marketplace.v1.Marketplace"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose statuses are flipped by the background
// database probe. A handler instance is created once at startup and shared
// by the gRPC server.
type Handler struct {
	health *health.Server

	// serving mirrors the last status pushed to health so that transitions
	// can be logged once.
	serving atomic.Bool

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both services start as NOT_SERVING and
// stay so until the first successful probe.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing reports the outcome of a health probe.
func (h *Handler) SetServing(serving bool) {
	if h.serving.Swap(serving) != serving {
		h.logger.Info().Bool("serving", serving).Msg("gRPC health status changed")
	}

	if serving {
		h.setStatus(healthpb.HealthCheckResponse_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
