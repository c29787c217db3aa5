// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryRow(c models.Category) []driver.Value {
	return []driver.Value{
		c.ID, c.Title, c.Slug, strValue(c.Description), strValue(c.IconURL),
		int64(c.DomainCount), strValue(c.MetaTitle), strValue(c.MetaDescription),
		[]byte(`["premium","short"]`), c.IsActive, int64(c.SortOrder), testNow, testNow,
	}
}

func sampleCategory() models.Category {
	return models.Category{
		ID:          3,
		Title:       "Tech Domains",
		Slug:        "tech-domains",
		DomainCount: 2,
		IsActive:    true,
	}
}

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return &categoryRepository{db: db, logger: logger.Nop()}, mock
}

func TestCategoryRepository_CreateCategory(t *testing.T) {
	category := sampleCategory()
	category.Keywords = models.StringList{"premium", "short"}

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate title", err: pgError(pgerrcode.UniqueViolation, constraintCategoriesTitle), wantErr: ErrCategoryTitleExists},
		{name: "duplicate slug", err: pgError(pgerrcode.UniqueViolation, constraintCategoriesSlug), wantErr: ErrCategorySlugExists},
		{name: "unknown unique", err: pgError(pgerrcode.UniqueViolation, "other_key"), wantErr: ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCategoryRepo(t)
			exp := mock.ExpectQuery("INSERT INTO categories").
				WithArgs("Tech Domains", "tech-domains", nil, nil, nil, nil,
					models.StringList{"premium", "short"}, true, 0)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(categoryRow(category)...))
			}

			got, err := repo.CreateCategory(context.Background(), category)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "tech-domains", got.Slug)
			assert.Equal(t, models.StringList{"premium", "short"}, got.Keywords)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_Lookups(t *testing.T) {
	t.Run("by slug", func(t *testing.T) {
		repo, mock := newTestCategoryRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE slug = $1")).
			WithArgs("tech-domains").
			WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(categoryRow(sampleCategory())...))

		got, err := repo.GetCategoryBySlug(context.Background(), "tech-domains")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, 2, got.DomainCount)
	})

	t.Run("by title or slug", func(t *testing.T) {
		repo, mock := newTestCategoryRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(title) = LOWER($1) OR slug = $1")).
			WithArgs("Tech Domains").
			WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(categoryRow(sampleCategory())...))

		got, err := repo.GetCategoryByTitleOrSlug(context.Background(), "Tech Domains")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown title or slug", func(t *testing.T) {
		repo, mock := newTestCategoryRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(title) = LOWER($1) OR slug = $1")).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(categoryColumns))

		_, err := repo.GetCategoryByTitleOrSlug(context.Background(), "nope")
		require.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("by id not found", func(t *testing.T) {
		repo, mock := newTestCategoryRepo(t)
		mock.ExpectQuery("FROM categories").WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(categoryColumns))

		_, err := repo.GetCategoryByID(context.Background(), 404)
		require.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("slug exists", func(t *testing.T) {
		repo, mock := newTestCategoryRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM categories")).
			WithArgs("tech").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.CategorySlugExists(context.Background(), "tech")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestCategoryRepository_ListCategories(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories WHERE is_active = $1")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY sort_order ASC, title ASC LIMIT 10 OFFSET 10")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(categoryRow(sampleCategory())...))

	categories, total, err := repo.ListCategories(context.Background(), models.CategoryFilter{
		IsActive: ptr(true),
		Page:     2,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, total)
	assert.Len(t, categories, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// UpdateCategory
// ─────────────────────────────────────────────

func TestCategoryRepository_UpdateCategory_RenamesDomains(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	renamed := sampleCategory()
	renamed.Title = "Technology"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE categories SET updated_at = NOW(), title = $1 WHERE id = $2")).
		WithArgs("Technology", int64(3)).
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(categoryRow(renamed)...))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE domains\n\t\tSET category_name = $2")).
		WithArgs(int64(3), "Technology").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	got, err := repo.UpdateCategory(context.Background(), 3, models.CategoryUpdate{Title: ptr("Technology")})
	require.NoError(t, err)
	assert.Equal(t, "Technology", got.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_UpdateCategory_WithoutTitle(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE categories").
		WithArgs(5, int64(3)).
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(categoryRow(sampleCategory())...))
	mock.ExpectCommit()

	_, err := repo.UpdateCategory(context.Background(), 3, models.CategoryUpdate{SortOrder: ptr(5)})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_UpdateCategory_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCategoryRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE categories").WillReturnRows(sqlmock.NewRows(categoryColumns))
		mock.ExpectRollback()

		_, err := repo.UpdateCategory(context.Background(), 3, models.CategoryUpdate{Title: ptr("X1")})
		require.ErrorIs(t, err, ErrCategoryNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate title", func(t *testing.T) {
		repo, mock := newTestCategoryRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE categories").
			WillReturnError(pgError(pgerrcode.UniqueViolation, constraintCategoriesTitle))
		mock.ExpectRollback()

		_, err := repo.UpdateCategory(context.Background(), 3, models.CategoryUpdate{Title: ptr("Taken")})
		require.ErrorIs(t, err, ErrCategoryTitleExists)
	})
}

// ─────────────────────────────────────────────
// DeleteCategory
// ─────────────────────────────────────────────

func TestCategoryRepository_DeleteCategory(t *testing.T) {
	tests := []struct {
		name        string
		force       bool
		count       int
		setupDelete func(mock sqlmock.Sqlmock)
		commit      bool
		wantErr     error
		wantDeleted int
	}{
		{
			name:  "empty category",
			count: 0,
			setupDelete: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")).
					WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
			},
			commit: true,
		},
		{
			name:    "has domains without force",
			count:   2,
			wantErr: ErrCategoryHasDomains,
		},
		{
			name:  "has domains with force",
			force: true,
			count: 2,
			setupDelete: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM domains WHERE category_id = $1")).
					WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")).
					WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
			},
			commit:      true,
			wantDeleted: 2,
		},
		{
			name:  "domain attached concurrently",
			count: 0,
			setupDelete: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")).
					WillReturnError(pgError(pgerrcode.ForeignKeyViolation, constraintDomainsCategory))
			},
			wantErr: ErrCategoryHasDomains,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCategoryRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).WithArgs(int64(3)).
				WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(categoryRow(sampleCategory())...))
			mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM domains WHERE category_id = $1")).
				WithArgs(int64(3)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))
			if tt.setupDelete != nil {
				tt.setupDelete(mock)
			}
			if tt.commit {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			deleted, n, err := repo.DeleteCategory(context.Background(), 3, tt.force)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Tech Domains", deleted.Title)
				assert.Equal(t, tt.wantDeleted, n)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_DeleteCategory_NotFound(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows(categoryColumns))
	mock.ExpectRollback()

	_, _, err := repo.DeleteCategory(context.Background(), 3, true)
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryRepository_DeleteCategory_ReportsDependentCount(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(categoryRow(sampleCategory())...))
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectRollback()

	_, n, err := repo.DeleteCategory(context.Background(), 3, false)
	require.ErrorIs(t, err, ErrCategoryHasDomains)
	assert.Equal(t, 4, n)
}

func TestCategoryRepository_ReconcileDomainCounts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newTestCategoryRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("LEFT JOIN domains d ON d.category_id = cat.id")).
			WillReturnResult(sqlmock.NewResult(0, 2))

		n, err := repo.ReconcileDomainCounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("error", func(t *testing.T) {
		repo, mock := newTestCategoryRepo(t)
		mock.ExpectExec("UPDATE categories c").WillReturnError(errors.New("boom"))

		_, err := repo.ReconcileDomainCounts(context.Background())
		require.ErrorIs(t, err, ErrExecutingQuery)
	})
}
