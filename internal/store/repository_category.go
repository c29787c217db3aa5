// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/models"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository]. Multi-statement operations run in a transaction on a
// single acquired connection.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	var created models.Category
	err := r.db.withConn(ctx, func(q querier) error {
		var scanErr error
		created, scanErr = scanCategory(q.QueryRowContext(ctx, createCategory,
			category.Title,
			category.Slug,
			category.Description,
			category.IconURL,
			category.MetaTitle,
			category.MetaDescription,
			category.Keywords,
			category.IsActive,
			category.SortOrder,
		))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Str("title", category.Title).Msg("error inserting category")
		return models.Category{}, dbError(err, nil, ErrExecutingQuery)
	}

	return created, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id int64) (models.Category, error) {
	return r.getOne(ctx, "*categoryRepository.GetCategoryByID", getCategoryByID, id)
}

func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	return r.getOne(ctx, "*categoryRepository.GetCategoryBySlug", getCategoryBySlug, slug)
}

// GetCategoryByTitleOrSlug finds a category whose title matches term
// case-insensitively or whose slug equals term. A slug match wins.
func (r *categoryRepository) GetCategoryByTitleOrSlug(ctx context.Context, term string) (models.Category, error) {
	return r.getOne(ctx, "*categoryRepository.GetCategoryByTitleOrSlug", getCategoryByTitleOrSlug, term)
}

func (r *categoryRepository) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.withConn(ctx, func(q querier) error {
		return q.QueryRowContext(ctx, categorySlugExists, slug).Scan(&exists)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.CategorySlugExists").Msg("error checking slug")
		return false, dbError(err, nil, ErrExecutingQuery)
	}

	return exists, nil
}

// ListCategories returns one page of categories together with the total
// number of categories matching filter.
func (r *categoryRepository) ListCategories(ctx context.Context, filter models.CategoryFilter) ([]models.Category, int, error) {
	log := logger.FromContext(ctx)

	listQuery, listArgs, err := buildListCategoriesQuery(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	countQuery, countArgs, err := buildCountCategoriesQuery(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var (
		categories []models.Category
		total      int
	)
	err = r.db.withConn(ctx, func(q querier) error {
		if scanErr := q.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); scanErr != nil {
			return scanErr
		}

		rows, queryErr := q.QueryContext(ctx, listQuery, listArgs...)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		categories, collectErr = collect(rows, scanCategory)
		return collectErr
	})
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error listing categories")
		return nil, 0, dbError(err, nil, ErrExecutingQuery)
	}

	return categories, total, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id int64, upd models.CategoryUpdate) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCategoryQuery(ctx, id, upd)
	if err != nil {
		return models.Category{}, err
	}

	var updated models.Category
	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		var scanErr error
		updated, scanErr = scanCategory(tx.QueryRowContext(ctx, query, args...))
		if scanErr != nil {
			return scanErr
		}

		if upd.Title != nil {
			if _, execErr := tx.ExecContext(ctx, renameCategoryDomains, id, updated.Title); execErr != nil {
				return execErr
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Int64("category_id", id).Msg("error updating category")
		}
		return models.Category{}, dbError(err, ErrCategoryNotFound, ErrExecutingQuery)
	}

	return updated, nil
}

// DeleteCategory locks the category row, counts its domains and deletes
// them together with the category in one transaction.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64, force bool) (models.Category, int, error) {
	log := logger.FromContext(ctx)

	var (
		deleted     models.Category
		domainCount int
	)
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var txErr error
		deleted, txErr = scanCategory(tx.QueryRowContext(ctx, lockCategoryByID, id))
		if txErr != nil {
			return txErr
		}

		if txErr = tx.QueryRowContext(ctx, countCategoryDomains, id).Scan(&domainCount); txErr != nil {
			return txErr
		}
		if domainCount > 0 && !force {
			return ErrCategoryHasDomains
		}

		if domainCount > 0 {
			res, execErr := tx.ExecContext(ctx, deleteCategoryDomains, id)
			if execErr != nil {
				return execErr
			}
			affected, execErr := res.RowsAffected()
			if execErr != nil {
				return execErr
			}
			domainCount = int(affected)
		}

		_, txErr = tx.ExecContext(ctx, deleteCategory, id)
		return txErr
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCategoryHasDomains):
			return models.Category{}, domainCount, err
		case isForeignKeyViolation(err):
			// a domain was attached between the count and the delete
			return models.Category{}, 0, ErrCategoryHasDomains
		case !errors.Is(err, sql.ErrNoRows):
			log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Int64("category_id", id).Msg("error deleting category")
		}
		return models.Category{}, 0, dbError(err, ErrCategoryNotFound, ErrExecutingQuery)
	}

	log.Info().Str("func", "*categoryRepository.DeleteCategory").
		Int64("category_id", id).
		Int("deleted_domains", domainCount).
		Msg("category deleted")

	return deleted, domainCount, nil
}

func (r *categoryRepository) ReconcileDomainCounts(ctx context.Context) (int64, error) {
	var corrected int64
	err := r.db.withConn(ctx, func(q querier) error {
		res, execErr := q.ExecContext(ctx, reconcileCategoryDomainCounts)
		if execErr != nil {
			return execErr
		}
		corrected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.ReconcileDomainCounts").Msg("error reconciling domain counts")
		return 0, dbError(err, nil, ErrExecutingQuery)
	}

	return corrected, nil
}

func (r *categoryRepository) getOne(ctx context.Context, funcName, query string, args ...any) (models.Category, error) {
	var category models.Category
	err := r.db.withConn(ctx, func(q querier) error {
		var scanErr error
		category, scanErr = scanCategory(q.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying category")
		}
		return models.Category{}, dbError(err, ErrCategoryNotFound, ErrExecutingQuery)
	}

	return category, nil
}
