// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/domain-marketplace/models"
)

// Client defines the operations marketctl commands run.
type Client interface {
	// Login authenticates and keeps the access token for later calls.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	Version(ctx context.Context) (string, error)

	// SeedCategories creates the default categories. Categories that already
	// exist are reported as skipped.
	SeedCategories(ctx context.Context) (SeedReport, error)

	// SeedDomains creates every domain in inputs. Domains that already exist
	// are reported as skipped.
	SeedDomains(ctx context.Context, inputs []models.DomainInput) (SeedReport, error)

	ListDomains(ctx context.Context, filter models.DomainFilter) (models.DomainList, error)

	CheckAvailability(ctx context.Context, id int64) (models.DomainAvailability, error)

	// LoadDomains reads a {"domains": [...]} document.
	LoadDomains(r io.Reader) ([]models.DomainInput, error)
}
