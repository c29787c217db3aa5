// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/domain-marketplace/models"
)

// Field names accepted by [CategoryValidator].
const (
	FieldTitle           = "title"
	FieldSlug            = "slug"
	FieldIcon            = "icon"
	FieldMetaTitle       = "meta_title"
	FieldMetaDescription = "meta_description"
	FieldSortOrder       = "sort_order"
)

const (
	minTitleLen           = 2
	maxTitleLen           = 100
	maxMetaTitleLen       = 60
	maxMetaDescriptionLen = 160
)

var categorySlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// CategoryValidator validates category creation and update requests.
type CategoryValidator struct{}

// NewCategoryValidator constructs a [CategoryValidator].
func NewCategoryValidator() Validator {
	return &CategoryValidator{}
}

func (v *CategoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CategoryInput:
		return v.validateInput(value, fields...)
	case *models.CategoryInput:
		return v.validateInput(*value, fields...)

	case models.CategoryUpdate:
		return v.validateUpdate(value, fields...)
	case *models.CategoryUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CategoryValidator) validateInput(in models.CategoryInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldSlug, FieldIcon, FieldMetaTitle, FieldMetaDescription, FieldSortOrder}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = checkTitle(in.Title)
		case FieldSlug:
			if in.Slug != "" {
				err = checkCategorySlug(in.Slug)
			}
		case FieldIcon:
			err = checkOptional(in.IconURL, checkIconURL)
		case FieldMetaTitle:
			err = checkOptional(in.MetaTitle, maxLen(maxMetaTitleLen, ErrMetaTitleTooLong))
		case FieldMetaDescription:
			err = checkOptional(in.MetaDescription, maxLen(maxMetaDescriptionLen, ErrMetaDescriptionTooLong))
		case FieldSortOrder:
			if in.SortOrder != nil && *in.SortOrder < 0 {
				err = ErrInvalidSortOrder
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *CategoryValidator) validateUpdate(upd models.CategoryUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldTitle, FieldSlug, FieldIcon, FieldMetaTitle, FieldMetaDescription, FieldSortOrder}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldNotEmpty:
			if upd.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldTitle:
			err = checkOptional(upd.Title, checkTitle)
		case FieldSlug:
			err = checkOptional(upd.Slug, checkCategorySlug)
		case FieldIcon:
			err = checkOptional(upd.IconURL, checkIconURL)
		case FieldMetaTitle:
			err = checkOptional(upd.MetaTitle, maxLen(maxMetaTitleLen, ErrMetaTitleTooLong))
		case FieldMetaDescription:
			err = checkOptional(upd.MetaDescription, maxLen(maxMetaDescriptionLen, ErrMetaDescriptionTooLong))
		case FieldSortOrder:
			if upd.SortOrder != nil && *upd.SortOrder < 0 {
				err = ErrInvalidSortOrder
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func checkTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n < minTitleLen || n > maxTitleLen {
		return ErrInvalidCategoryTitle
	}
	return nil
}

func checkCategorySlug(slug string) error {
	if !categorySlugPattern.MatchString(slug) {
		return ErrInvalidCategorySlug
	}
	return nil
}

// checkIconURL accepts only absolute http and https URLs. An empty string
// clears the icon and is allowed.
func checkIconURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidIconURL
	}
	return nil
}

func maxLen(limit int, errTooLong error) func(string) error {
	return func(s string) error {
		if utf8.RuneCountInString(s) > limit {
			return errTooLong
		}
		return nil
	}
}

func checkOptional(value *string, check func(string) error) error {
	if value == nil {
		return nil
	}
	return check(*value)
}
