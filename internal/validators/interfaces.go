// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound marketplace data before it
// reaches the service layer.
//
// Each validator accepts a set of model types and an optional list of field
// names. When fields are given only those fields are checked, otherwise a
// default set for the type is used. Every returned error wraps
// [ErrValidation].
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
