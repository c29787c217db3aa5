// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListUsersQuery(t *testing.T) {
	verified := true
	tests := []struct {
		name         string
		filter       models.UserFilter
		wantContains []string
		wantArgs     []any
	}{
		{
			name:         "defaults",
			filter:       models.UserFilter{Page: 1, Limit: 10},
			wantContains: []string{"FROM users", "ORDER BY created_at DESC, id ASC", "LIMIT 10 OFFSET 0"},
		},
		{
			name:         "whitelisted sort ascending",
			filter:       models.UserFilter{Page: 3, Limit: 5, SortBy: "email", Order: "ASC"},
			wantContains: []string{"ORDER BY email ASC", "LIMIT 5 OFFSET 10"},
		},
		{
			name:         "unknown sort column falls back",
			filter:       models.UserFilter{Page: 1, Limit: 5, SortBy: "password_hash; DROP TABLE users", Order: "asc"},
			wantContains: []string{"ORDER BY created_at ASC"},
		},
		{
			name:         "verified filter",
			filter:       models.UserFilter{Page: 1, Limit: 5, IsVerified: &verified},
			wantContains: []string{"WHERE is_verified = $1"},
			wantArgs:     []any{true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListUsersQuery(context.Background(), tt.filter)
			require.NoError(t, err)
			for _, part := range tt.wantContains {
				assert.Contains(t, query, part)
			}
			assert.NotContains(t, query, "DROP TABLE")
			if tt.wantArgs != nil {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildUpdateUserQuery(t *testing.T) {
	hash := "new-hash"
	role := models.RoleModerator

	query, args, err := buildUpdateUserQuery(context.Background(), 5, models.UserUpdate{
		PasswordHash: &hash,
		Role:         &role,
		Password:     ptr("plaintext"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE users SET updated_at = NOW()"))
	assert.Contains(t, query, "password_hash = $1")
	assert.Contains(t, query, "role = $2")
	assert.Contains(t, query, "WHERE id = $3")
	assert.Contains(t, query, "RETURNING id, first_name")
	assert.NotContains(t, query, "password =")
	assert.Equal(t, []any{"new-hash", models.RoleModerator, int64(5)}, args)
}

func Test_buildListCategoriesQuery(t *testing.T) {
	query, args, err := buildListCategoriesQuery(context.Background(), models.CategoryFilter{Page: 0, Limit: 20})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM categories")
	assert.Contains(t, query, "ORDER BY sort_order ASC, title ASC")
	assert.Contains(t, query, "LIMIT 20 OFFSET 0")
	assert.Empty(t, args)
}

func Test_buildUpdateCategoryQuery(t *testing.T) {
	keywords := models.StringList{"a"}
	query, args, err := buildUpdateCategoryQuery(context.Background(), 2, models.CategoryUpdate{
		Keywords: &keywords,
		IsActive: ptr(false),
	})
	require.NoError(t, err)

	assert.Contains(t, query, "keywords = $1, is_active = $2 WHERE id = $3")
	assert.Len(t, args, 3)
}

func Test_buildListDomainsQuery(t *testing.T) {
	status := models.StatusAvailable
	listing := models.ListingPremium

	tests := []struct {
		name            string
		filter          models.DomainFilter
		wantContains    []string
		wantNotContains []string
		wantArgs        []any
	}{
		{
			name:            "no filters, not paginated",
			filter:          models.DomainFilter{},
			wantContains:    []string{"FROM domains", "ORDER BY created_at DESC, id DESC"},
			wantNotContains: []string{"WHERE", "LIMIT", "OFFSET"},
		},
		{
			name:         "paginated",
			filter:       models.DomainFilter{Paginated: true, Page: 3, Limit: 12},
			wantContains: []string{"LIMIT 12 OFFSET 24"},
		},
		{
			name: "price range and status",
			filter: models.DomainFilter{
				Status:   &status,
				MinPrice: ptr(100.0),
				MaxPrice: ptr(500.0),
			},
			wantContains: []string{"status = $1", "price >= $2", "price <= $3"},
			wantArgs:     []any{models.StatusAvailable, 100.0, 500.0},
		},
		{
			name:            "unresolved category name is not a filter",
			filter:          models.DomainFilter{Category: "Tech Domains"},
			wantContains:    []string{"FROM domains"},
			wantNotContains: []string{"WHERE", "categories"},
		},
		{
			name:         "listing type and category id",
			filter:       models.DomainFilter{ListingType: &listing, CategoryID: ptr(int64(4))},
			wantContains: []string{"listing_type = $1", "category_id = $2"},
			wantArgs:     []any{models.ListingPremium, int64(4)},
		},
		{
			name:         "search escapes wildcards",
			filter:       models.DomainFilter{Search: "50%_off"},
			wantContains: []string{"name ILIKE $1", "description ILIKE $2", "tags::text ILIKE $3"},
			wantArgs:     []any{`%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListDomainsQuery(context.Background(), tt.filter)
			require.NoError(t, err)
			for _, part := range tt.wantContains {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.wantNotContains {
				assert.NotContains(t, query, part)
			}
			if tt.wantArgs != nil {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildCountDomainsQuery_IgnoresPagination(t *testing.T) {
	query, _, err := buildCountDomainsQuery(context.Background(), models.DomainFilter{Paginated: true, Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM domains", query)
}

func Test_buildSearchDomainsQuery(t *testing.T) {
	query, args, err := buildSearchDomainsQuery(context.Background(), "crypto", 20)
	require.NoError(t, err)

	assert.Contains(t, query, "category_name ILIKE $3")
	assert.Contains(t, query, "tags @> jsonb_build_array($4::text)")
	assert.Contains(t, query, "LIMIT 20")
	assert.Equal(t, []any{"%crypto%", "%crypto%", "%crypto%", "crypto"}, args)
}

func Test_buildUpdateDomainQuery(t *testing.T) {
	t.Run("plain update", func(t *testing.T) {
		query, args, err := buildUpdateDomainQuery(context.Background(), 9, models.DomainUpdate{Price: ptr(42.5)})
		require.NoError(t, err)

		assert.Contains(t, query, "SET updated_at = NOW(), price = $1 WHERE id = $2 RETURNING")
		assert.NotContains(t, query, "status =")
		assert.Equal(t, []any{42.5, int64(9)}, args)
	})

	t.Run("guarded status change", func(t *testing.T) {
		next := models.StatusTaken
		expected := models.StatusReserved
		query, args, err := buildUpdateDomainQuery(context.Background(), 9, models.DomainUpdate{
			Status:         &next,
			ExpectedStatus: &expected,
		})
		require.NoError(t, err)

		assert.Contains(t, query, "status = $1 WHERE id = $2 AND status = $3")
		assert.Equal(t, []any{models.StatusTaken, int64(9), models.StatusReserved}, args)
	})
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func Test_pageOffset(t *testing.T) {
	assert.Equal(t, 0, pageOffset(0, 10))
	assert.Equal(t, 0, pageOffset(1, 10))
	assert.Equal(t, 20, pageOffset(3, 10))
}
