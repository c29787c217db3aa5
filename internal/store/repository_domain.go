// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/models"
)

// domainRepository is the PostgreSQL-backed implementation of
// [DomainRepository]. Writes that touch a category counter run in one
// transaction together with the domain row change.
type domainRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewDomainRepository constructs a [DomainRepository] backed by db.
func NewDomainRepository(db *DB, logger *logger.Logger) DomainRepository {
	logger.Debug().Msg("creating domain repository")
	return &domainRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// CreateDomainWithCategory runs, in one transaction:
//  1. category resolution by id, or by title with find-or-create;
//  2. the domain insert;
//  3. the category counter increment.
//
// input must already carry its derived name, slug, extension and full domain.
func (r *domainRepository) CreateDomainWithCategory(ctx context.Context, input models.DomainInput) (models.Domain, error) {
	log := logger.FromContext(ctx)

	var created models.Domain
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		category, txErr := r.resolveCategory(ctx, tx, input)
		if txErr != nil {
			return txErr
		}

		created, txErr = scanDomain(tx.QueryRowContext(ctx, insertDomain,
			input.Name,
			input.FullDomain,
			input.Slug,
			input.Extension,
			input.Price,
			input.Status,
			input.ListingType,
			category.ID,
			category.Title,
			input.OwnerID,
			input.Description,
			input.SEOTitle,
			input.SEODescription,
			input.Tags,
			input.Images,
			input.TrafficStats,
			input.AuthorityScores,
			input.Marketing,
		))
		if txErr != nil {
			return txErr
		}

		_, txErr = tx.ExecContext(ctx, incrementCategoryDomainCount, category.ID)
		return txErr
	})
	if err != nil {
		log.Err(err).Str("func", "*domainRepository.CreateDomainWithCategory").Str("name", input.Name).Msg("error creating domain")
		return models.Domain{}, dbError(err, ErrCategoryNotFound, ErrExecutingQuery)
	}

	return created, nil
}

// resolveCategory finds the category referenced by input. A category named
// by title that does not exist yet is created with a slug derived from the
// title, suffixed with the current unix milliseconds on collision.
func (r *domainRepository) resolveCategory(ctx context.Context, tx *sql.Tx, input models.DomainInput) (models.Category, error) {
	if input.CategoryID != nil {
		category, err := scanCategory(tx.QueryRowContext(ctx, getCategoryByID, *input.CategoryID))
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		return category, err
	}

	title := input.CategoryName
	if title == "" {
		title = models.DefaultCategoryTitle
	}

	category, err := scanCategory(tx.QueryRowContext(ctx, getCategoryByTitle, title))
	if err == nil || !errors.Is(err, sql.ErrNoRows) {
		return category, err
	}

	slug := utils.Slugify(title)
	var taken bool
	if err = tx.QueryRowContext(ctx, categorySlugExists, slug).Scan(&taken); err != nil {
		return models.Category{}, err
	}
	if taken {
		slug = fmt.Sprintf("%s-%d", slug, r.now().UnixMilli())
	}

	if _, err = tx.ExecContext(ctx, insertCategoryIfAbsent, title, slug); err != nil {
		return models.Category{}, err
	}

	return scanCategory(tx.QueryRowContext(ctx, getCategoryByTitle, title))
}

func (r *domainRepository) GetDomainByID(ctx context.Context, id int64) (models.Domain, error) {
	return r.getOne(ctx, "*domainRepository.GetDomainByID", getDomainByID, id)
}

func (r *domainRepository) ViewDomain(ctx context.Context, id int64) (models.Domain, error) {
	return r.getOne(ctx, "*domainRepository.ViewDomain", incrementDomainViewCount, id)
}

func (r *domainRepository) RecordInquiry(ctx context.Context, id int64) (models.Domain, error) {
	return r.getOne(ctx, "*domainRepository.RecordInquiry", incrementDomainInquiryCount, id)
}

func (r *domainRepository) DomainSlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.withConn(ctx, func(q querier) error {
		return q.QueryRowContext(ctx, domainSlugExists, slug).Scan(&exists)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*domainRepository.DomainSlugExists").Msg("error checking slug")
		return false, dbError(err, nil, ErrExecutingQuery)
	}

	return exists, nil
}

// ListDomains returns the domains matching filter together with their total
// count. The count ignores pagination.
func (r *domainRepository) ListDomains(ctx context.Context, filter models.DomainFilter) ([]models.Domain, int, error) {
	log := logger.FromContext(ctx)

	listQuery, listArgs, err := buildListDomainsQuery(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	countQuery, countArgs, err := buildCountDomainsQuery(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var (
		domains []models.Domain
		total   int
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
		domains, collectErr = collect(rows, scanDomain)
		return collectErr
	})
	if err != nil {
		log.Err(err).Str("func", "*domainRepository.ListDomains").Msg("error listing domains")
		return nil, 0, dbError(err, nil, ErrExecutingQuery)
	}

	return domains, total, nil
}

func (r *domainRepository) SearchDomains(ctx context.Context, term string, limit int) ([]models.Domain, error) {
	query, args, err := buildSearchDomainsQuery(ctx, term, limit)
	if err != nil {
		return nil, err
	}

	return r.getMany(ctx, "*domainRepository.SearchDomains", query, args...)
}

func (r *domainRepository) RecommendDomains(ctx context.Context, categoryID, excludeID int64, limit int) ([]models.Domain, error) {
	return r.getMany(ctx, "*domainRepository.RecommendDomains", recommendDomains, categoryID, excludeID, limit)
}

// UpdateDomain locks the domain row and applies upd. Moving the domain to
// another category refreshes its category name and shifts one unit between
// the two counters.
func (r *domainRepository) UpdateDomain(ctx context.Context, id int64, upd models.DomainUpdate) (models.Domain, error) {
	log := logger.FromContext(ctx)

	var updated models.Domain
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		current, txErr := scanDomain(tx.QueryRowContext(ctx, lockDomainByID, id))
		if errors.Is(txErr, sql.ErrNoRows) {
			return ErrDomainNotFound
		}
		if txErr != nil {
			return txErr
		}

		if upd.ExpectedStatus != nil && current.Status != *upd.ExpectedStatus {
			return ErrStatusConflict
		}

		moved := upd.CategoryID != nil && *upd.CategoryID != current.CategoryID
		if moved {
			target, catErr := scanCategory(tx.QueryRowContext(ctx, getCategoryByID, *upd.CategoryID))
			if errors.Is(catErr, sql.ErrNoRows) {
				return ErrCategoryNotFound
			}
			if catErr != nil {
				return catErr
			}
			upd.CategoryName = &target.Title
		}

		query, args, txErr := buildUpdateDomainQuery(ctx, id, upd)
		if txErr != nil {
			return txErr
		}
		updated, txErr = scanDomain(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(txErr, sql.ErrNoRows) {
			return ErrStatusConflict
		}
		if txErr != nil {
			return txErr
		}

		if moved {
			if _, txErr = tx.ExecContext(ctx, decrementCategoryDomainCount, current.CategoryID); txErr != nil {
				return txErr
			}
			if _, txErr = tx.ExecContext(ctx, incrementCategoryDomainCount, updated.CategoryID); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*domainRepository.UpdateDomain").Int64("domain_id", id).Msg("error updating domain")
		return models.Domain{}, dbError(err, ErrDomainNotFound, ErrExecutingQuery)
	}

	return updated, nil
}

func (r *domainRepository) DeleteDomain(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var categoryID int64
		if txErr := tx.QueryRowContext(ctx, deleteDomain, id).Scan(&categoryID); txErr != nil {
			return txErr
		}

		_, txErr := tx.ExecContext(ctx, decrementCategoryDomainCount, categoryID)
		return txErr
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*domainRepository.DeleteDomain").Int64("domain_id", id).Msg("error deleting domain")
		}
		return dbError(err, ErrDomainNotFound, ErrExecutingQuery)
	}

	return nil
}

func (r *domainRepository) getOne(ctx context.Context, funcName, query string, args ...any) (models.Domain, error) {
	var domain models.Domain
	err := r.db.withConn(ctx, func(q querier) error {
		var scanErr error
		domain, scanErr = scanDomain(q.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying domain")
		}
		return models.Domain{}, dbError(err, ErrDomainNotFound, ErrExecutingQuery)
	}

	return domain, nil
}

func (r *domainRepository) getMany(ctx context.Context, funcName, query string, args ...any) ([]models.Domain, error) {
	var domains []models.Domain
	err := r.db.withConn(ctx, func(q querier) error {
		rows, queryErr := q.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		domains, collectErr = collect(rows, scanDomain)
		return collectErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying domains")
		return nil, dbError(err, nil, ErrExecutingQuery)
	}

	return domains, nil
}
