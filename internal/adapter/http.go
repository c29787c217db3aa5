// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/models"
)

// Register POSTs the user to /api/register. On success the bearer token is
// extracted from the Authorization response header and stored.
func (h *httpMarketplaceAPI) Register(ctx context.Context, user models.User) (models.UserSummary, error) {
	var summary models.UserSummary

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&summary).
		Post("/api/register")
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSummary{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return summary, nil
}

// Login POSTs the credentials to /api/login and stores the access token.
func (h *httpMarketplaceAPI) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&login).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.Token)
	return login, nil
}

func (h *httpMarketplaceAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpMarketplaceAPI) CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error) {
	var category models.Category

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&category).
		Post("/api/categories")
	if err != nil {
		return models.Category{}, fmt.Errorf("create category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (h *httpMarketplaceAPI) ListCategories(ctx context.Context, filter models.CategoryFilter) (models.CategoryList, error) {
	var list models.CategoryList

	req := h.request(ctx).SetResult(&list)
	if filter.IsActive != nil {
		req.SetQueryParam("is_active", strconv.FormatBool(*filter.IsActive))
	}
	setPage(req.QueryParam, filter.Page, filter.Limit)

	resp, err := req.Get("/api/categories")
	if err != nil {
		return models.CategoryList{}, fmt.Errorf("list categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CategoryList{}, err
	}

	return list, nil
}

func (h *httpMarketplaceAPI) CreateDomain(ctx context.Context, input models.DomainInput) (models.Domain, error) {
	var domain models.Domain

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&domain).
		Post("/api/domains")
	if err != nil {
		return models.Domain{}, fmt.Errorf("create domain request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Domain{}, err
	}

	return domain, nil
}

func (h *httpMarketplaceAPI) ListDomains(ctx context.Context, filter models.DomainFilter) (models.DomainList, error) {
	var list models.DomainList

	req := h.request(ctx).SetResult(&list)
	query := req.QueryParam
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}
	if filter.MinPrice != nil {
		query.Set("minPrice", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		query.Set("maxPrice", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.ListingType != nil {
		query.Set("listingType", string(*filter.ListingType))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Paginated {
		setPage(query, filter.Page, filter.Limit)
	}

	resp, err := req.Get("/api/domains")
	if err != nil {
		return models.DomainList{}, fmt.Errorf("list domains request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DomainList{}, err
	}

	return list, nil
}

func (h *httpMarketplaceAPI) CheckAvailability(ctx context.Context, id int64) (models.DomainAvailability, error) {
	var availability models.DomainAvailability

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&availability).
		Get("/api/domains/{id}/availability")
	if err != nil {
		return models.DomainAvailability{}, fmt.Errorf("availability request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DomainAvailability{}, err
	}

	return availability, nil
}

func setPage(query url.Values, page, limit int) {
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
}
