// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/internal/validators"
	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = prev })
}

func TestCategoryService_CreateCategory_Slug(t *testing.T) {
	fixClock(t, time.UnixMilli(1700000000000))

	tests := []struct {
		name     string
		input    models.CategoryInput
		taken    map[string]bool
		wantSlug string
	}{
		{
			name:     "slug from title",
			input:    models.CategoryInput{Title: "  Tech & Gadgets "},
			wantSlug: "tech-gadgets",
		},
		{
			name:     "explicit slug",
			input:    models.CategoryInput{Title: "Tech", Slug: "technology"},
			wantSlug: "technology",
		},
		{
			name:     "taken slug gets a suffix",
			input:    models.CategoryInput{Title: "Tech"},
			taken:    map[string]bool{"tech": true},
			wantSlug: "tech-1700000000000",
		},
		{
			name:     "taken explicit slug falls back to the title",
			input:    models.CategoryInput{Title: "Tech", Slug: "gadgets"},
			taken:    map[string]bool{"gadgets": true},
			wantSlug: "tech-1700000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := &mockCategoryRepo{}
			categories.slugExistsFn = func(_ context.Context, slug string) (bool, error) {
				return tt.taken[slug], nil
			}
			var stored models.Category
			categories.createFn = func(_ context.Context, c models.Category) (models.Category, error) {
				stored = c
				c.ID = 1
				return c, nil
			}

			svc := NewCategoryService(categories, &recordingPublisher{}, logger.Nop())
			created, err := svc.CreateCategory(context.Background(), tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSlug, created.Slug)
			assert.True(t, stored.IsActive)
			assert.NotNil(t, stored.Keywords)
		})
	}
}

func TestCategoryService_CreateCategory_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     models.CategoryInput
		createErr error
		wantErr   error
	}{
		{name: "title too short", input: models.CategoryInput{Title: " a "}, wantErr: validators.ErrInvalidCategoryTitle},
		{name: "title without slug characters", input: models.CategoryInput{Title: "!!!"}, wantErr: ErrInvalidInput},
		{name: "bad icon", input: models.CategoryInput{Title: "Tech", IconURL: ptr("ftp://x")}, wantErr: validators.ErrInvalidIconURL},
		{name: "duplicate title", input: models.CategoryInput{Title: "Tech"}, createErr: store.ErrCategoryTitleExists, wantErr: store.ErrCategoryTitleExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := &mockCategoryRepo{}
			categories.createFn = func(_ context.Context, c models.Category) (models.Category, error) {
				return models.Category{}, tt.createErr
			}

			svc := NewCategoryService(categories, nil, logger.Nop())
			_, err := svc.CreateCategory(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryService_CreateCategory_Inactive(t *testing.T) {
	categories := &mockCategoryRepo{}
	svc := NewCategoryService(categories, nil, logger.Nop())

	created, err := svc.CreateCategory(context.Background(), models.CategoryInput{
		Title:     "Archive",
		IsActive:  ptr(false),
		SortOrder: ptr(4),
	})
	require.NoError(t, err)
	assert.False(t, created.IsActive)
	assert.Equal(t, 4, created.SortOrder)
}

func TestCategoryService_UpdateCategory_RegeneratesSlug(t *testing.T) {
	fixClock(t, time.UnixMilli(42))

	tests := []struct {
		name     string
		upd      models.CategoryUpdate
		taken    bool
		wantSlug *string
	}{
		{name: "new title", upd: models.CategoryUpdate{Title: ptr("Finance")}, wantSlug: ptr("finance")},
		{name: "new title with taken slug", upd: models.CategoryUpdate{Title: ptr("Finance")}, taken: true, wantSlug: ptr("finance-42")},
		{name: "explicit slug wins", upd: models.CategoryUpdate{Title: ptr("Finance"), Slug: ptr("money")}, wantSlug: ptr("money")},
		{name: "same title", upd: models.CategoryUpdate{Title: ptr("Tech")}},
		{name: "title only changes case", upd: models.CategoryUpdate{Title: ptr("TECH")}, taken: true, wantSlug: ptr("tech")},
		{name: "no title", upd: models.CategoryUpdate{SortOrder: ptr(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := &mockCategoryRepo{}
			categories.getByIDFn = func(_ context.Context, id int64) (models.Category, error) {
				return models.Category{ID: id, Title: "Tech", Slug: "tech"}, nil
			}
			categories.slugExistsFn = func(context.Context, string) (bool, error) {
				return tt.taken, nil
			}
			var stored models.CategoryUpdate
			categories.updateFn = func(_ context.Context, id int64, upd models.CategoryUpdate) (models.Category, error) {
				stored = upd
				return models.Category{ID: id}, nil
			}

			svc := NewCategoryService(categories, nil, logger.Nop())
			_, err := svc.UpdateCategory(context.Background(), 3, tt.upd)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSlug, stored.Slug)
		})
	}
}

func TestCategoryService_UpdateCategory_Errors(t *testing.T) {
	categories := &mockCategoryRepo{}
	categories.getByIDFn = func(context.Context, int64) (models.Category, error) {
		return models.Category{}, store.ErrCategoryNotFound
	}
	svc := NewCategoryService(categories, nil, logger.Nop())

	_, err := svc.UpdateCategory(context.Background(), 3, models.CategoryUpdate{})
	require.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	_, err = svc.UpdateCategory(context.Background(), 3, models.CategoryUpdate{SortOrder: ptr(1)})
	require.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		deleteErr error
		count     int
		wantErr   error
	}{
		{name: "empty category", count: 0},
		{name: "forced with domains", force: true, count: 3},
		{name: "has domains", deleteErr: store.ErrCategoryHasDomains, wantErr: ErrHasDependents},
		{name: "not found", deleteErr: store.ErrCategoryNotFound, wantErr: store.ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := &mockCategoryRepo{}
			categories.deleteFn = func(_ context.Context, id int64, force bool) (models.Category, int, error) {
				assert.Equal(t, tt.force, force)
				if tt.deleteErr != nil {
					return models.Category{}, 0, tt.deleteErr
				}
				return models.Category{ID: id, Title: "Tech"}, tt.count, nil
			}
			publisher := &recordingPublisher{}

			svc := NewCategoryService(categories, publisher, logger.Nop())
			got, err := svc.DeleteCategory(context.Background(), 7, tt.force)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, publisher.events)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), got.Category.ID)
			assert.Equal(t, tt.count, got.DeletedDomainCount)
			require.Len(t, publisher.events, 1)
			assert.Equal(t, models.EventCategoryDeleted, publisher.events[0].Type)
		})
	}
}

func TestCategoryService_ListCategories(t *testing.T) {
	categories := &mockCategoryRepo{}
	categories.listFn = func(_ context.Context, filter models.CategoryFilter) ([]models.Category, int, error) {
		assert.Equal(t, 2, filter.Page)
		assert.Equal(t, 20, filter.Limit)
		return nil, 21, nil
	}

	svc := NewCategoryService(categories, nil, logger.Nop())
	list, err := svc.ListCategories(context.Background(), models.CategoryFilter{Page: 2})
	require.NoError(t, err)
	assert.NotNil(t, list.Categories)
	assert.Equal(t, 2, list.TotalPages)
}

func TestCategoryService_GetCategoryBySlug(t *testing.T) {
	categories := &mockCategoryRepo{}
	categories.getBySlugFn = func(_ context.Context, slug string) (models.Category, error) {
		assert.Equal(t, "tech", slug)
		return models.Category{Slug: slug}, nil
	}

	svc := NewCategoryService(categories, nil, logger.Nop())
	_, err := svc.GetCategoryBySlug(context.Background(), " TECH ")
	require.NoError(t, err)
}
