// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/domain-marketplace/internal/adapter"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/models"
)

var errNoDomains = errors.New("document contains no domains")

// SeedReport lists what a seeding run created and what already existed.
type SeedReport struct {
	Created []string
	Skipped []string
}

var _ Client = (*App)(nil)

type App struct {
	api    adapter.MarketplaceAPI
	logger *logger.Logger
}

func NewApp(api adapter.MarketplaceAPI, logger *logger.Logger) *App {
	return &App{api: api, logger: logger}
}

func (a *App) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	return a.api.Login(ctx, credentials)
}

func (a *App) Version(ctx context.Context) (string, error) {
	return a.api.Version(ctx)
}

func (a *App) SeedCategories(ctx context.Context) (SeedReport, error) {
	var report SeedReport

	for _, input := range DefaultCategories() {
		category, err := a.api.CreateCategory(ctx, input)
		switch {
		case errors.Is(err, adapter.ErrConflict):
			a.logger.Debug().Str("category", input.Title).Msg("category already exists")
			report.Skipped = append(report.Skipped, input.Title)
		case err != nil:
			return report, fmt.Errorf("seeding category %q: %w", input.Title, err)
		default:
			a.logger.Info().Int64("id", category.ID).Str("slug", category.Slug).Msg("category created")
			report.Created = append(report.Created, category.Title)
		}
	}

	return report, nil
}

func (a *App) SeedDomains(ctx context.Context, inputs []models.DomainInput) (SeedReport, error) {
	var report SeedReport

	for _, input := range inputs {
		domain, err := a.api.CreateDomain(ctx, input)
		switch {
		case errors.Is(err, adapter.ErrConflict):
			a.logger.Debug().Str("domain", input.Name).Msg("domain already exists")
			report.Skipped = append(report.Skipped, input.Name)
		case err != nil:
			return report, fmt.Errorf("seeding domain %q: %w", input.Name, err)
		default:
			a.logger.Info().Int64("id", domain.ID).Str("category", domain.CategoryName).Msg("domain created")
			report.Created = append(report.Created, domain.Name)
		}
	}

	return report, nil
}

func (a *App) ListDomains(ctx context.Context, filter models.DomainFilter) (models.DomainList, error) {
	return a.api.ListDomains(ctx, filter)
}

func (a *App) CheckAvailability(ctx context.Context, id int64) (models.DomainAvailability, error) {
	return a.api.CheckAvailability(ctx, id)
}

func (a *App) LoadDomains(r io.Reader) ([]models.DomainInput, error) {
	var document struct {
		Domains []models.DomainInput `json:"domains"`
	}

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("decoding domains document: %w", err)
	}
	if len(document.Domains) == 0 {
		return nil, errNoDomains
	}

	return document.Domains, nil
}
