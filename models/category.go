// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultCategoryTitle is the category a domain falls into when none is given.
const DefaultCategoryTitle = "Uncategorized Domains"

// Category is a classification bucket for domains.
//
// DomainCount is a denormalized counter owned by the category. It is kept in
// step with the domains table by the store and never goes below zero.
type Category struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     *string    `json:"description,omitempty"`
	IconURL         *string    `json:"icon,omitempty"`
	DomainCount     int        `json:"domain_count"`
	MetaTitle       *string    `json:"meta_title,omitempty"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	Keywords        StringList `json:"keywords"`
	IsActive        bool       `json:"is_active"`
	SortOrder       int        `json:"sort_order"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// CategoryInput is the body of a category creation request.
type CategoryInput struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug,omitempty"`
	Description     *string    `json:"description,omitempty"`
	IconURL         *string    `json:"icon,omitempty"`
	MetaTitle       *string    `json:"meta_title,omitempty"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	Keywords        StringList `json:"keywords,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
	SortOrder       *int       `json:"sort_order,omitempty"`
}

// CategoryUpdate is a partial update of a category. Nil fields are left
// untouched.
type CategoryUpdate struct {
	Title           *string     `json:"title,omitempty"`
	Slug            *string     `json:"slug,omitempty"`
	Description     *string     `json:"description,omitempty"`
	IconURL         *string     `json:"icon,omitempty"`
	MetaTitle       *string     `json:"meta_title,omitempty"`
	MetaDescription *string     `json:"meta_description,omitempty"`
	Keywords        *StringList `json:"keywords,omitempty"`
	IsActive        *bool       `json:"is_active,omitempty"`
	SortOrder       *int        `json:"sort_order,omitempty"`
}

// IsEmpty reports whether the update carries no changes.
func (u CategoryUpdate) IsEmpty() bool {
	return u.Title == nil && u.Slug == nil && u.Description == nil &&
		u.IconURL == nil && u.MetaTitle == nil && u.MetaDescription == nil &&
		u.Keywords == nil && u.IsActive == nil && u.SortOrder == nil
}

// CategoryFilter holds the listing criteria for categories.
type CategoryFilter struct {
	IsActive *bool
	Page     int
	Limit    int
}

// CategoryList is a page of categories.
type CategoryList struct {
	Categories []Category `json:"categories"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

// CategoryDeletion reports the outcome of a category deletion.
type CategoryDeletion struct {
	Category           Category `json:"deleted_category"`
	DeletedDomainCount int      `json:"deleted_domain_count"`
}
