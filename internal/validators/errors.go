// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error returned from a [Validator], so
// callers can match the whole family with errors.Is.
var ErrValidation = errors.New("validation error")

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

var (
	ErrUnsupportedType  = validationError("unsupported type for validation")
	ErrUnknownField     = validationError("unknown field for validation")
	ErrNoFieldsToUpdate = validationError("at least one field must be provided for update")

	ErrInvalidFirstName = validationError("first_name must be 1-50 characters")
	ErrInvalidLastName  = validationError("last_name must be 1-50 characters")
	ErrInvalidEmail     = validationError("email is invalid")
	ErrPasswordTooShort = validationError("password must be at least 8 characters")
	ErrInvalidPhone     = validationError("phone is invalid")
	ErrInvalidRole      = validationError("role must be one of user, admin, moderator")
	ErrEmptyCredentials = validationError("email and password are required")

	ErrInvalidCategoryTitle   = validationError("title must be 2-100 characters")
	ErrInvalidCategorySlug    = validationError("slug must contain only lowercase letters, numbers and hyphens")
	ErrInvalidIconURL         = validationError("icon must be an absolute http(s) URL")
	ErrMetaTitleTooLong       = validationError("meta_title must be 60 characters or less")
	ErrMetaDescriptionTooLong = validationError("meta_description must be 160 characters or less")
	ErrInvalidSortOrder       = validationError("sort_order must be non-negative")

	ErrInvalidDomainName  = validationError("name is not a valid domain name")
	ErrInvalidPrice       = validationError("price must be non-negative")
	ErrInvalidStatus      = validationError("status must be one of available, taken, reserved, pending")
	ErrInvalidListingType = validationError("listing_type must be one of regular, premium, featured")
	ErrInvalidCategoryID  = validationError("category_id must be positive")
	ErrInvalidCounter     = validationError("counters must be non-negative")
)
