// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when an insert or update would give
	// two accounts the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrGoogleIDAlreadyExists is returned when a Google account is already
	// linked to another user.
	ErrGoogleIDAlreadyExists = errors.New("google account already linked")

	// ErrCategoryNotFound is returned when no category matches the lookup key
	// or a domain references a category that does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryTitleExists is returned on a duplicate category title.
	ErrCategoryTitleExists = errors.New("category title already exists")

	// ErrCategorySlugExists is returned on a duplicate category slug.
	ErrCategorySlugExists = errors.New("category slug already exists")

	// ErrCategoryHasDomains is returned when a non-forced category deletion
	// finds dependent domains.
	ErrCategoryHasDomains = errors.New("category has domains")

	// ErrDomainNotFound is returned when no domain matches the lookup key.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrDomainNameExists is returned on a duplicate domain name.
	ErrDomainNameExists = errors.New("domain name already exists")

	// ErrDomainSlugExists is returned on a duplicate domain slug.
	ErrDomainSlugExists = errors.New("domain slug already exists")

	// ErrStatusConflict is returned when a guarded status update finds that
	// the stored status is no longer the one the caller read.
	ErrStatusConflict = errors.New("domain status was changed concurrently")

	// ErrAlreadyExists is returned for a unique violation on a constraint
	// that has no dedicated sentinel.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrConstraintViolation is returned when a CHECK or NOT NULL constraint
	// rejects the written values.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrPoolExhausted is returned when no database connection becomes free
	// within the configured acquisition timeout.
	ErrPoolExhausted = errors.New("database connection pool exhausted")

	// ErrRefreshTokenNotFound is returned when a refresh token id is unknown
	// to the token store, either because it was revoked or it expired.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrAcquiringConnection is returned when a connection cannot be taken
	// from the pool for a reason other than the acquisition timeout.
	ErrAcquiringConnection = errors.New("failed to acquire connection")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrTokenStore is returned when the refresh-token store is unreachable.
	ErrTokenStore = errors.New("token store failure")
)
