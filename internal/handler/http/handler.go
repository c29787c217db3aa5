// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services

	// authLimiter throttles the unauthenticated credential endpoints per
	// client IP.
	authLimiter *ipRateLimiter
	trustProxy  bool

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		authLimiter:    newIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		trustProxy:     cfg.TrustProxy,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
