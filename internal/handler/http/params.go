// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

var userSortColumns = map[string]bool{
	"created_at":    true,
	"email":         true,
	"first_name":    true,
	"last_name":     true,
	"last_login_at": true,
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errInvalidJSON
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// queryInt returns the integer value of key. A missing, non-numeric or
// negative value yields 0.
func queryInt(q url.Values, key string) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// queryFloat returns nil for a missing, non-numeric or negative value. Zero
// is a valid bound.
func queryFloat(q url.Values, key string) *float64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return nil
	}
	return &f
}

func queryBool(q url.Values, key string) *bool {
	b, err := strconv.ParseBool(q.Get(key))
	if err != nil {
		return nil
	}
	return &b
}

// domainFilterFromQuery reads the domain list filters. Values that do not
// parse or name an unknown status or listing type are ignored. The list is
// paginated only when both page and limit are present; otherwise the whole
// filtered set is returned.
func domainFilterFromQuery(q url.Values) models.DomainFilter {
	filter := models.DomainFilter{
		MinPrice: queryFloat(q, "minPrice"),
		MaxPrice: queryFloat(q, "maxPrice"),
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("search")),
	}

	if status := models.DomainStatus(q.Get("status")); status.Valid() {
		filter.Status = &status
	}
	if listingType := models.ListingType(q.Get("listingType")); listingType.Valid() {
		filter.ListingType = &listingType
	}

	if q.Has("page") && q.Has("limit") {
		filter.Paginated = true
		filter.Page = queryInt(q, "page")
		filter.Limit = queryInt(q, "limit")
	}

	return filter
}

func userFilterFromQuery(q url.Values) models.UserFilter {
	filter := models.UserFilter{
		Page:       queryInt(q, "page"),
		Limit:      queryInt(q, "limit"),
		IsVerified: queryBool(q, "is_verified"),
		SortBy:     "created_at",
		Order:      "desc",
	}

	if role := models.UserRole(q.Get("role")); role.Valid() {
		filter.Role = &role
	}
	if sortBy := q.Get("sort_by"); userSortColumns[sortBy] {
		filter.SortBy = sortBy
	}
	if order := strings.ToLower(q.Get("order")); order == "asc" || order == "desc" {
		filter.Order = order
	}

	return filter
}

func categoryFilterFromQuery(q url.Values) models.CategoryFilter {
	return models.CategoryFilter{
		IsActive: queryBool(q, "is_active"),
		Page:     queryInt(q, "page"),
		Limit:    queryInt(q, "limit"),
	}
}
