// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DomainStatus is the sale status of a listing.
type DomainStatus string

const (
	StatusAvailable DomainStatus = "available"
	StatusTaken     DomainStatus = "taken"
	StatusReserved  DomainStatus = "reserved"
	StatusPending   DomainStatus = "pending"
)

// Valid reports whether s is one of the known statuses.
func (s DomainStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusTaken, StatusReserved, StatusPending:
		return true
	}
	return false
}

// ListingType is the promotion tier of a listing.
type ListingType string

const (
	ListingRegular  ListingType = "regular"
	ListingPremium  ListingType = "premium"
	ListingFeatured ListingType = "featured"
)

// Valid reports whether t is one of the known listing types.
func (t ListingType) Valid() bool {
	switch t {
	case ListingRegular, ListingPremium, ListingFeatured:
		return true
	}
	return false
}

// Domain is a domain name offered for sale.
//
// CategoryName mirrors the title of the referenced category so that listings
// can be rendered and searched without a join.
type Domain struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	FullDomain      string       `json:"full_domain"`
	Slug            string       `json:"slug"`
	Extension       string       `json:"extension"`
	Price           float64      `json:"price"`
	Status          DomainStatus `json:"status"`
	ListingType     ListingType  `json:"listing_type"`
	CategoryID      int64        `json:"category_id"`
	CategoryName    string       `json:"category_name"`
	OwnerID         *int64       `json:"owner_id,omitempty"`
	Description     *string      `json:"description,omitempty"`
	SEOTitle        *string      `json:"seo_title,omitempty"`
	SEODescription  *string      `json:"seo_description,omitempty"`
	Tags            StringList   `json:"tags"`
	Images          JSONObject   `json:"images"`
	TrafficStats    JSONObject   `json:"traffic_stats"`
	AuthorityScores JSONObject   `json:"authority_scores"`
	Marketing       JSONObject   `json:"marketing"`
	ViewCount       int64        `json:"view_count"`
	InquiryCount    int64        `json:"inquiry_count"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Domain model.
func (d Domain) TableName() string {
	return "domains"
}

// DomainInput is the body of a domain creation request. Category is resolved
// by CategoryID when set, otherwise by CategoryName.
type DomainInput struct {
	Name            string       `json:"name"`
	FullDomain      string       `json:"full_domain,omitempty"`
	Slug            string       `json:"slug,omitempty"`
	Extension       string       `json:"extension,omitempty"`
	Price           float64      `json:"price"`
	Status          DomainStatus `json:"status,omitempty"`
	ListingType     ListingType  `json:"listing_type,omitempty"`
	CategoryID      *int64       `json:"category_id,omitempty"`
	CategoryName    string       `json:"category_name,omitempty"`
	Description     *string      `json:"description,omitempty"`
	SEOTitle        *string      `json:"seo_title,omitempty"`
	SEODescription  *string      `json:"seo_description,omitempty"`
	Tags            StringList   `json:"tags,omitempty"`
	Images          JSONObject   `json:"images,omitempty"`
	TrafficStats    JSONObject   `json:"traffic_stats,omitempty"`
	AuthorityScores JSONObject   `json:"authority_scores,omitempty"`
	Marketing       JSONObject   `json:"marketing,omitempty"`

	// OwnerID is taken from the authenticated caller, never from the body.
	OwnerID *int64 `json:"-"`
}

// DomainUpdate is a partial update of a domain. Nil fields are left untouched.
type DomainUpdate struct {
	Name            *string       `json:"name,omitempty"`
	FullDomain      *string       `json:"full_domain,omitempty"`
	Slug            *string       `json:"slug,omitempty"`
	Extension       *string       `json:"extension,omitempty"`
	Price           *float64      `json:"price,omitempty"`
	Status          *DomainStatus `json:"status,omitempty"`
	ListingType     *ListingType  `json:"listing_type,omitempty"`
	CategoryID      *int64        `json:"category_id,omitempty"`
	Description     *string       `json:"description,omitempty"`
	SEOTitle        *string       `json:"seo_title,omitempty"`
	SEODescription  *string       `json:"seo_description,omitempty"`
	Tags            *StringList   `json:"tags,omitempty"`
	Images          *JSONObject   `json:"images,omitempty"`
	TrafficStats    *JSONObject   `json:"traffic_stats,omitempty"`
	AuthorityScores *JSONObject   `json:"authority_scores,omitempty"`
	Marketing       *JSONObject   `json:"marketing,omitempty"`
	ViewCount       *int64        `json:"view_count,omitempty"`
	InquiryCount    *int64        `json:"inquiry_count,omitempty"`

	// CategoryName is set by the service when CategoryID changes.
	CategoryName   *string       `json:"-"`
	// ExpectedStatus guards a status change against concurrent writers.
	ExpectedStatus *DomainStatus `json:"-"`
}

// IsEmpty reports whether the update carries no changes.
func (u DomainUpdate) IsEmpty() bool {
	return u.Name == nil && u.FullDomain == nil && u.Slug == nil &&
		u.Extension == nil && u.Price == nil && u.Status == nil &&
		u.ListingType == nil && u.CategoryID == nil && u.Description == nil &&
		u.SEOTitle == nil && u.SEODescription == nil && u.Tags == nil &&
		u.Images == nil && u.TrafficStats == nil && u.AuthorityScores == nil &&
		u.Marketing == nil && u.ViewCount == nil && u.InquiryCount == nil
}

// DomainFilter holds the listing criteria for domains. Pagination is applied
// only when Paginated is set; otherwise the full filtered set is returned.
type DomainFilter struct {
	Status      *DomainStatus
	MinPrice    *float64
	MaxPrice    *float64
	Category    string
	CategoryID  *int64
	ListingType *ListingType
	Search      string

	Paginated bool
	Page      int
	Limit     int
}

// Offset returns the row offset of the requested page.
func (f DomainFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// DomainList is the result of a domain listing. Page, Limit and TotalPages
// are only set for paginated requests; TotalPages is then always present,
// even when it is zero.
type DomainList struct {
	Domains    []Domain `json:"domains"`
	Total      int      `json:"total"`
	Page       int      `json:"page,omitempty"`
	Limit      int      `json:"limit,omitempty"`
	TotalPages *int     `json:"totalPages,omitempty"`
}

// Paginated reports whether the list was cut into pages.
func (l DomainList) Paginated() bool {
	return l.TotalPages != nil
}

// DomainAvailability is the result of a registry lookup for a domain name.
type DomainAvailability struct {
	Domain    string       `json:"domain"`
	Status    DomainStatus `json:"status"`
	CheckedAt time.Time    `json:"checked_at"`
}
