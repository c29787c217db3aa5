// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/events"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/models"
)

type Services struct {
	AuthService         AuthService
	GoogleAuthService   GoogleAuthService
	UserService         UserService
	DomainService       DomainService
	CategoryService     CategoryService
	AvailabilityService AvailabilityService
	MaintenanceService  MaintenanceService
	AppInfoService      AppInfoService
}

func NewServices(
	storages *store.Storages,
	publisher events.Publisher,
	cfg *config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.UserRepository, storages.RefreshTokens, publisher, cfg.App, logger)

	return &Services{
		AuthService: authService,
		GoogleAuthService: NewGoogleAuthService(
			storages.UserRepository,
			NewGoogleVerifier(cfg.App.GoogleClientID),
			authService,
			publisher,
			cfg.App,
			logger,
		),
		UserService:         NewUserService(storages.UserRepository, cfg.App, logger),
		DomainService:       NewDomainService(storages.DomainRepository, storages.CategoryRepository, publisher, logger),
		CategoryService:     NewCategoryService(storages.CategoryRepository, publisher, logger),
		AvailabilityService: NewAvailabilityService(storages.DomainRepository, cfg.Adapter, logger),
		MaintenanceService:  NewMaintenanceService(storages.CategoryRepository, storages.Health, logger),
		AppInfoService:      appInfoService,
	}, nil
}
