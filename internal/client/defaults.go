// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/domain-marketplace/models"

// DefaultCategoryName is the category the default example domain lands in.
const DefaultCategoryName = "Default Domains"

// DefaultDomain is the listing created by "marketctl seed domains" when no
// file is given.
func DefaultDomain() models.DomainInput {
	return models.DomainInput{
		Name:         "example-domain.com",
		FullDomain:   "example-domain.com",
		Price:        1000,
		Status:       models.StatusAvailable,
		ListingType:  models.ListingRegular,
		CategoryName: DefaultCategoryName,
	}
}

// DefaultCategories returns the starter catalogue.
func DefaultCategories() []models.CategoryInput {
	return []models.CategoryInput{
		newCategory("Technology", "Domains related to technology, innovation, and digital solutions",
			"https://example.com/icons/technology.svg", 1, "tech", "innovation", "digital", "software"),
		newCategory("Finance", "Domains for financial services, fintech, and investment platforms",
			"https://example.com/icons/finance.svg", 2, "finance", "investment", "banking", "money"),
		newCategory("Healthcare", "Domains for medical services, health tech, and wellness platforms",
			"https://example.com/icons/healthcare.svg", 3, "health", "medical", "wellness", "technology"),
		newCategory("E-commerce", "Domains for online retail, marketplaces, and shopping platforms",
			"https://example.com/icons/ecommerce.svg", 4, "shopping", "retail", "online", "marketplace"),
		newCategory("Education", "Domains for online learning, educational platforms, and training",
			"https://example.com/icons/education.svg", 5, "learning", "education", "training", "online courses"),
	}
}

func newCategory(title, description, icon string, sortOrder int, keywords ...string) models.CategoryInput {
	return models.CategoryInput{
		Title:       title,
		Description: &description,
		IconURL:     &icon,
		Keywords:    models.StringList(keywords),
		SortOrder:   &sortOrder,
	}
}
