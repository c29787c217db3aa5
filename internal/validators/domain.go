// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/domain-marketplace/models"
)

// Field names accepted by [DomainValidator].
const (
	FieldName        = "name"
	FieldPrice       = "price"
	FieldStatus      = "status"
	FieldListingType = "listing_type"
	FieldCategoryID  = "category_id"
	FieldCounters    = "counters"
)

// domainNamePattern accepts a single registrable label followed by a TLD of at
// least two letters, e.g. "example.com".
var domainNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{1,61}[a-zA-Z0-9]\.[a-zA-Z]{2,}$`)

// DomainValidator validates listing creation and patch requests.
type DomainValidator struct{}

// NewDomainValidator constructs a [DomainValidator].
func NewDomainValidator() Validator {
	return &DomainValidator{}
}

func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DomainInput:
		return v.validateInput(value, fields...)
	case *models.DomainInput:
		return v.validateInput(*value, fields...)

	case models.DomainUpdate:
		return v.validateUpdate(value, fields...)
	case *models.DomainUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateInput expects the name already normalized by the caller (a bare
// label has ".com" appended before validation).
func (v *DomainValidator) validateInput(in models.DomainInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPrice, FieldStatus, FieldListingType, FieldCategoryID}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = CheckDomainName(in.Name)
		case FieldPrice:
			err = checkPrice(in.Price)
		case FieldStatus:
			if in.Status != "" && !in.Status.Valid() {
				err = ErrInvalidStatus
			}
		case FieldListingType:
			if in.ListingType != "" && !in.ListingType.Valid() {
				err = ErrInvalidListingType
			}
		case FieldCategoryID:
			if in.CategoryID != nil && *in.CategoryID <= 0 {
				err = ErrInvalidCategoryID
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

func (v *DomainValidator) validateUpdate(upd models.DomainUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldName, FieldPrice, FieldStatus, FieldListingType, FieldCategoryID, FieldCounters}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldNotEmpty:
			if upd.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldName:
			if upd.Name != nil {
				err = CheckDomainName(*upd.Name)
			}
		case FieldPrice:
			if upd.Price != nil {
				err = checkPrice(*upd.Price)
			}
		case FieldStatus:
			if upd.Status != nil && !upd.Status.Valid() {
				err = ErrInvalidStatus
			}
		case FieldListingType:
			if upd.ListingType != nil && !upd.ListingType.Valid() {
				err = ErrInvalidListingType
			}
		case FieldCategoryID:
			if upd.CategoryID != nil && *upd.CategoryID <= 0 {
				err = ErrInvalidCategoryID
			}
		case FieldCounters:
			if (upd.ViewCount != nil && *upd.ViewCount < 0) || (upd.InquiryCount != nil && *upd.InquiryCount < 0) {
				err = ErrInvalidCounter
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

// CheckDomainName reports whether name is a registrable domain name such as
// "example.com".
func CheckDomainName(name string) error {
	if !domainNamePattern.MatchString(strings.TrimSpace(name)) {
		return ErrInvalidDomainName
	}
	return nil
}

func checkPrice(price float64) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
