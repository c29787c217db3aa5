// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/domain-marketplace/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{
		"id", "first_name", "last_name", "email", "password_hash", "phone", "role",
		"is_verified", "google_id", "avatar_url", "auth_type", "last_login_at",
		"created_at", "updated_at",
	}
	categoryColumns = []string{
		"id", "title", "slug", "description", "icon_url", "domain_count",
		"meta_title", "meta_description", "keywords", "is_active", "sort_order",
		"created_at", "updated_at",
	}
	domainColumns = []string{
		"id", "name", "full_domain", "slug", "extension", "price", "status",
		"listing_type", "category_id", "category_name", "owner_id", "description",
		"seo_title", "seo_description", "tags", "images", "traffic_stats",
		"authority_scores", "marketing", "view_count", "inquiry_count",
		"created_at", "updated_at",
	}
)

// users
const (
	createUser = `INSERT INTO users (
			first_name, last_name, email, password_hash, phone, role,
			is_verified, google_id, avatar_url, auth_type, last_login_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, first_name, last_name, email, password_hash, phone, role,
			is_verified, google_id, avatar_url, auth_type, last_login_at,
			created_at, updated_at;`

	getUserByID = `SELECT id, first_name, last_name, email, password_hash, phone, role,
			is_verified, google_id, avatar_url, auth_type, last_login_at,
			created_at, updated_at
		FROM users
		WHERE id = $1;`

	getUserByEmail = `SELECT id, first_name, last_name, email, password_hash, phone, role,
			is_verified, google_id, avatar_url, auth_type, last_login_at,
			created_at, updated_at
		FROM users
		WHERE email = $1;`

	// a google_id match wins over an email match
	findUserByGoogleIDOrEmail = `SELECT id, first_name, last_name, email, password_hash, phone, role,
			is_verified, google_id, avatar_url, auth_type, last_login_at,
			created_at, updated_at
		FROM users
		WHERE google_id = $1 OR email = $2
		ORDER BY CASE WHEN google_id = $1 THEN 0 ELSE 1 END
		LIMIT 1;`

	linkGoogleAccount = `UPDATE users
		SET google_id     = $2,
			first_name    = COALESCE(NULLIF($3, ''), first_name),
			last_name     = COALESCE(NULLIF($4, ''), last_name),
			avatar_url    = COALESCE(NULLIF($5, ''), avatar_url),
			is_verified   = TRUE,
			last_login_at = NOW(),
			updated_at    = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, password_hash, phone, role,
			is_verified, google_id, avatar_url, auth_type, last_login_at,
			created_at, updated_at;`

	touchUserLastLogin = `UPDATE users SET last_login_at = NOW() WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

// categories
const (
	createCategory = `INSERT INTO categories (
			title, slug, description, icon_url, meta_title, meta_description,
			keywords, is_active, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, title, slug, description, icon_url, domain_count,
			meta_title, meta_description, keywords, is_active, sort_order,
			created_at, updated_at;`

	getCategoryByID = `SELECT id, title, slug, description, icon_url, domain_count,
			meta_title, meta_description, keywords, is_active, sort_order,
			created_at, updated_at
		FROM categories
		WHERE id = $1;`

	getCategoryBySlug = `SELECT id, title, slug, description, icon_url, domain_count,
			meta_title, meta_description, keywords, is_active, sort_order,
			created_at, updated_at
		FROM categories
		WHERE slug = $1;`

	getCategoryByTitle = `SELECT id, title, slug, description, icon_url, domain_count,
			meta_title, meta_description, keywords, is_active, sort_order,
			created_at, updated_at
		FROM categories
		WHERE title = $1;`

	getCategoryByTitleOrSlug = `SELECT id, title, slug, description, icon_url, domain_count,
			meta_title, meta_description, keywords, is_active, sort_order,
			created_at, updated_at
		FROM categories
		WHERE LOWER(title) = LOWER($1) OR slug = $1
		ORDER BY (slug = $1) DESC, id
		LIMIT 1;`

	lockCategoryByID = `SELECT id, title, slug, description, icon_url, domain_count,
			meta_title, meta_description, keywords, is_active, sort_order,
			created_at, updated_at
		FROM categories
		WHERE id = $1
		FOR UPDATE;`

	categorySlugExists = `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1);`

	insertCategoryIfAbsent = `INSERT INTO categories (title, slug)
		VALUES ($1, $2)
		ON CONFLICT (title) DO NOTHING;`

	countCategoryDomains = `SELECT COUNT(*) FROM domains WHERE category_id = $1;`

	deleteCategoryDomains = `DELETE FROM domains WHERE category_id = $1;`

	deleteCategory = `DELETE FROM categories WHERE id = $1;`

	incrementCategoryDomainCount = `UPDATE categories
		SET domain_count = domain_count + 1, updated_at = NOW()
		WHERE id = $1;`

	decrementCategoryDomainCount = `UPDATE categories
		SET domain_count = GREATEST(domain_count - 1, 0), updated_at = NOW()
		WHERE id = $1;`

	renameCategoryDomains = `UPDATE domains
		SET category_name = $2, updated_at = NOW()
		WHERE category_id = $1;`

	reconcileCategoryDomainCounts = `UPDATE categories c
		SET domain_count = actual.cnt, updated_at = NOW()
		FROM (
			SELECT cat.id, COUNT(d.id) AS cnt
			FROM categories cat
			LEFT JOIN domains d ON d.category_id = cat.id
			GROUP BY cat.id
		) actual
		WHERE c.id = actual.id AND c.domain_count <> actual.cnt;`
)

// domains
const (
	insertDomain = `INSERT INTO domains (
			name, full_domain, slug, extension, price, status, listing_type,
			category_id, category_name, owner_id, description, seo_title,
			seo_description, tags, images, traffic_stats, authority_scores, marketing
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, name, full_domain, slug, extension, price, status,
			listing_type, category_id, category_name, owner_id, description,
			seo_title, seo_description, tags, images, traffic_stats,
			authority_scores, marketing, view_count, inquiry_count,
			created_at, updated_at;`

	getDomainByID = `SELECT id, name, full_domain, slug, extension, price, status,
			listing_type, category_id, category_name, owner_id, description,
			seo_title, seo_description, tags, images, traffic_stats,
			authority_scores, marketing, view_count, inquiry_count,
			created_at, updated_at
		FROM domains
		WHERE id = $1;`

	lockDomainByID = `SELECT id, name, full_domain, slug, extension, price, status,
			listing_type, category_id, category_name, owner_id, description,
			seo_title, seo_description, tags, images, traffic_stats,
			authority_scores, marketing, view_count, inquiry_count,
			created_at, updated_at
		FROM domains
		WHERE id = $1
		FOR UPDATE;`

	incrementDomainViewCount = `UPDATE domains
		SET view_count = view_count + 1
		WHERE id = $1
		RETURNING id, name, full_domain, slug, extension, price, status,
			listing_type, category_id, category_name, owner_id, description,
			seo_title, seo_description, tags, images, traffic_stats,
			authority_scores, marketing, view_count, inquiry_count,
			created_at, updated_at;`

	incrementDomainInquiryCount = `UPDATE domains
		SET inquiry_count = inquiry_count + 1
		WHERE id = $1
		RETURNING id, name, full_domain, slug, extension, price, status,
			listing_type, category_id, category_name, owner_id, description,
			seo_title, seo_description, tags, images, traffic_stats,
			authority_scores, marketing, view_count, inquiry_count,
			created_at, updated_at;`

	domainSlugExists = `SELECT EXISTS (SELECT 1 FROM domains WHERE slug = $1);`

	deleteDomain = `DELETE FROM domains WHERE id = $1 RETURNING category_id;`

	recommendDomains = `SELECT id, name, full_domain, slug, extension, price, status,
			listing_type, category_id, category_name, owner_id, description,
			seo_title, seo_description, tags, images, traffic_stats,
			authority_scores, marketing, view_count, inquiry_count,
			created_at, updated_at
		FROM domains
		WHERE category_id = $1 AND status = 'available' AND id <> $2
		ORDER BY created_at DESC
		LIMIT $3;`
)

// userSortColumns whitelists the columns a user listing may be ordered by.
var userSortColumns = map[string]struct{}{
	"created_at":    {},
	"email":         {},
	"first_name":    {},
	"last_name":     {},
	"last_login_at": {},
}

// applyUserFilter adds the WHERE clauses of filter to builder.
func applyUserFilter(builder sq.SelectBuilder, filter models.UserFilter) sq.SelectBuilder {
	if filter.Role != nil {
		builder = builder.Where(sq.Eq{"role": *filter.Role})
	}
	if filter.IsVerified != nil {
		builder = builder.Where(sq.Eq{"is_verified": *filter.IsVerified})
	}
	return builder
}

// buildListUsersQuery returns one page of users matching filter. Unknown sort
// columns fall back to created_at and unknown orders to DESC.
func buildListUsersQuery(ctx context.Context, filter models.UserFilter) (string, []any, error) {
	sortBy := filter.SortBy
	if _, ok := userSortColumns[sortBy]; !ok {
		sortBy = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		order = "ASC"
	}

	builder := applyUserFilter(psql.Select(userColumns...).From("users"), filter).
		OrderBy(fmt.Sprintf("%s %s", sortBy, order), "id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(pageOffset(filter.Page, filter.Limit)))

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountUsersQuery(ctx context.Context, filter models.UserFilter) (string, []any, error) {
	query, args, err := applyUserFilter(psql.Select("COUNT(*)").From("users"), filter).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateUserQuery builds a partial UPDATE touching only the non-nil
// fields of upd.
func buildUpdateUserQuery(ctx context.Context, id int64, upd models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	if upd.FirstName != nil {
		builder = builder.Set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		builder = builder.Set("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
	}
	if upd.PasswordHash != nil {
		builder = builder.Set("password_hash", *upd.PasswordHash)
	}
	if upd.Phone != nil {
		builder = builder.Set("phone", *upd.Phone)
	}
	if upd.AvatarURL != nil {
		builder = builder.Set("avatar_url", *upd.AvatarURL)
	}
	if upd.Role != nil {
		builder = builder.Set("role", *upd.Role)
	}
	if upd.IsVerified != nil {
		builder = builder.Set("is_verified", *upd.IsVerified)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func applyCategoryFilter(builder sq.SelectBuilder, filter models.CategoryFilter) sq.SelectBuilder {
	if filter.IsActive != nil {
		builder = builder.Where(sq.Eq{"is_active": *filter.IsActive})
	}
	return builder
}

// buildListCategoriesQuery returns one page of categories ordered by
// sort_order, then title.
func buildListCategoriesQuery(ctx context.Context, filter models.CategoryFilter) (string, []any, error) {
	query, args, err := applyCategoryFilter(psql.Select(categoryColumns...).From("categories"), filter).
		OrderBy("sort_order ASC", "title ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(pageOffset(filter.Page, filter.Limit))).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountCategoriesQuery(ctx context.Context, filter models.CategoryFilter) (string, []any, error) {
	query, args, err := applyCategoryFilter(psql.Select("COUNT(*)").From("categories"), filter).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateCategoryQuery builds a partial UPDATE touching only the non-nil
// fields of upd.
func buildUpdateCategoryQuery(ctx context.Context, id int64, upd models.CategoryUpdate) (string, []any, error) {
	builder := psql.Update("categories").Set("updated_at", sq.Expr("NOW()"))

	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
	}
	if upd.Slug != nil {
		builder = builder.Set("slug", *upd.Slug)
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
	}
	if upd.IconURL != nil {
		builder = builder.Set("icon_url", *upd.IconURL)
	}
	if upd.MetaTitle != nil {
		builder = builder.Set("meta_title", *upd.MetaTitle)
	}
	if upd.MetaDescription != nil {
		builder = builder.Set("meta_description", *upd.MetaDescription)
	}
	if upd.Keywords != nil {
		builder = builder.Set("keywords", *upd.Keywords)
	}
	if upd.IsActive != nil {
		builder = builder.Set("is_active", *upd.IsActive)
	}
	if upd.SortOrder != nil {
		builder = builder.Set("sort_order", *upd.SortOrder)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(categoryColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// applyDomainFilter adds the WHERE clauses of filter to builder. The
// category is filtered by id only; resolving a title or slug is left to the
// caller.
func applyDomainFilter(builder sq.SelectBuilder, filter models.DomainFilter) sq.SelectBuilder {
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.MinPrice != nil {
		builder = builder.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		builder = builder.Where(sq.LtOrEq{"price": *filter.MaxPrice})
	}
	if filter.ListingType != nil {
		builder = builder.Where(sq.Eq{"listing_type": *filter.ListingType})
	}
	if filter.CategoryID != nil {
		builder = builder.Where(sq.Eq{"category_id": *filter.CategoryID})
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
			sq.Expr("tags::text ILIKE ?", pattern),
		})
	}
	return builder
}

// buildListDomainsQuery returns the domains matching filter, newest first.
// LIMIT and OFFSET are only applied to paginated filters.
func buildListDomainsQuery(ctx context.Context, filter models.DomainFilter) (string, []any, error) {
	builder := applyDomainFilter(psql.Select(domainColumns...).From("domains"), filter).
		OrderBy("created_at DESC", "id DESC")

	if filter.Paginated {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset()))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountDomainsQuery(ctx context.Context, filter models.DomainFilter) (string, []any, error) {
	query, args, err := applyDomainFilter(psql.Select("COUNT(*)").From("domains"), filter).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSearchDomainsQuery matches the term case-insensitively against name,
// description and category name, or exactly against a tag.
func buildSearchDomainsQuery(ctx context.Context, term string, limit int) (string, []any, error) {
	pattern := "%" + escapeLike(term) + "%"

	query, args, err := psql.Select(domainColumns...).
		From("domains").
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"category_name": pattern},
			sq.Expr("tags @> jsonb_build_array(?::text)", term),
		}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateDomainQuery builds a partial UPDATE touching only the non-nil
// fields of upd. When upd.ExpectedStatus is set the row is only updated if
// its status still equals it.
func buildUpdateDomainQuery(ctx context.Context, id int64, upd models.DomainUpdate) (string, []any, error) {
	builder := psql.Update("domains").Set("updated_at", sq.Expr("NOW()"))

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.FullDomain != nil {
		builder = builder.Set("full_domain", *upd.FullDomain)
	}
	if upd.Slug != nil {
		builder = builder.Set("slug", *upd.Slug)
	}
	if upd.Extension != nil {
		builder = builder.Set("extension", *upd.Extension)
	}
	if upd.Price != nil {
		builder = builder.Set("price", *upd.Price)
	}
	if upd.Status != nil {
		builder = builder.Set("status", *upd.Status)
	}
	if upd.ListingType != nil {
		builder = builder.Set("listing_type", *upd.ListingType)
	}
	if upd.CategoryID != nil {
		builder = builder.Set("category_id", *upd.CategoryID)
	}
	if upd.CategoryName != nil {
		builder = builder.Set("category_name", *upd.CategoryName)
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
	}
	if upd.SEOTitle != nil {
		builder = builder.Set("seo_title", *upd.SEOTitle)
	}
	if upd.SEODescription != nil {
		builder = builder.Set("seo_description", *upd.SEODescription)
	}
	if upd.Tags != nil {
		builder = builder.Set("tags", *upd.Tags)
	}
	if upd.Images != nil {
		builder = builder.Set("images", *upd.Images)
	}
	if upd.TrafficStats != nil {
		builder = builder.Set("traffic_stats", *upd.TrafficStats)
	}
	if upd.AuthorityScores != nil {
		builder = builder.Set("authority_scores", *upd.AuthorityScores)
	}
	if upd.Marketing != nil {
		builder = builder.Set("marketing", *upd.Marketing)
	}
	if upd.ViewCount != nil {
		builder = builder.Set("view_count", *upd.ViewCount)
	}
	if upd.InquiryCount != nil {
		builder = builder.Set("inquiry_count", *upd.InquiryCount)
	}

	builder = builder.Where(sq.Eq{"id": id})
	if upd.ExpectedStatus != nil {
		builder = builder.Where(sq.Eq{"status": *upd.ExpectedStatus})
	}

	query, args, err := builder.
		Suffix("RETURNING " + strings.Join(domainColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// escapeLike escapes the LIKE wildcards in s so that it matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func pageOffset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
