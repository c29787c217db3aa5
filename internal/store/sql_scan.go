// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/domain-marketplace/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user        models.User
		lastLoginAt sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.IsVerified,
		&user.GoogleID,
		&user.AvatarURL,
		&user.AuthType,
		&lastLoginAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	if lastLoginAt.Valid {
		user.LastLoginAt = &lastLoginAt.Time
	}

	return user, nil
}

func scanCategory(row rowScanner) (models.Category, error) {
	var category models.Category

	err := row.Scan(
		&category.ID,
		&category.Title,
		&category.Slug,
		&category.Description,
		&category.IconURL,
		&category.DomainCount,
		&category.MetaTitle,
		&category.MetaDescription,
		&category.Keywords,
		&category.IsActive,
		&category.SortOrder,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func scanDomain(row rowScanner) (models.Domain, error) {
	var domain models.Domain

	err := row.Scan(
		&domain.ID,
		&domain.Name,
		&domain.FullDomain,
		&domain.Slug,
		&domain.Extension,
		&domain.Price,
		&domain.Status,
		&domain.ListingType,
		&domain.CategoryID,
		&domain.CategoryName,
		&domain.OwnerID,
		&domain.Description,
		&domain.SEOTitle,
		&domain.SEODescription,
		&domain.Tags,
		&domain.Images,
		&domain.TrafficStats,
		&domain.AuthorityScores,
		&domain.Marketing,
		&domain.ViewCount,
		&domain.InquiryCount,
		&domain.CreatedAt,
		&domain.UpdatedAt,
	)
	if err != nil {
		return models.Domain{}, err
	}

	return domain, nil
}

// collect scans every row of rows with scan and closes rows.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0, 20)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
