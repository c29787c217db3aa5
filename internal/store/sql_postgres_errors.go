// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation may succeed
// when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a lost connection or a
	// deadlock rollback.
	Retryable
)

// Unique and foreign-key constraint names created by the initial migration.
const (
	constraintUsersEmail      = "users_email_key"
	constraintUsersGoogleID   = "users_google_id_key"
	constraintCategoriesTitle = "categories_title_key"
	constraintCategoriesSlug  = "categories_slug_key"
	constraintDomainsName     = "domains_name_key"
	constraintDomainsSlug     = "domains_slug_key"
	constraintDomainsCategory = "domains_category_id_fkey"
	constraintDomainsOwner    = "domains_owner_id_fkey"
)

// Classify inspects err and reports whether the operation is worth retrying.
// Errors that are not PostgreSQL driver errors are [NonRetryable].
func Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}
	if errors.Is(err, ErrPoolExhausted) {
		return Retryable
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
//
// Retryable codes:
//   - class 08, connection exceptions
//   - class 40, transaction rollback and deadlock
//   - 57P03, cannot connect now
//
// Every other code is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// mapPgError translates constraint violations into store sentinels. It
// returns nil for errors it does not recognise.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUsersEmail:
			return ErrEmailAlreadyExists
		case constraintUsersGoogleID:
			return ErrGoogleIDAlreadyExists
		case constraintCategoriesTitle:
			return ErrCategoryTitleExists
		case constraintCategoriesSlug:
			return ErrCategorySlugExists
		case constraintDomainsName:
			return ErrDomainNameExists
		case constraintDomainsSlug:
			return ErrDomainSlugExists
		}
		return ErrAlreadyExists

	case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
		switch pgErr.ConstraintName {
		case constraintDomainsCategory:
			return ErrCategoryNotFound
		case constraintDomainsOwner:
			return ErrUserNotFound
		}
		return ErrConstraintViolation

	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return ErrConstraintViolation
	}

	return nil
}

// isForeignKeyViolation reports whether err is a foreign-key violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// passthroughErrors are returned unchanged by dbError when raised inside a
// transaction body.
var passthroughErrors = []error{
	ErrPoolExhausted,
	ErrUserNotFound,
	ErrCategoryNotFound,
	ErrCategoryHasDomains,
	ErrDomainNotFound,
	ErrStatusConflict,
}

// dbError converts err into the error returned to callers. Known constraint
// violations become their sentinel, sql.ErrNoRows becomes notFound and any
// other failure is wrapped with fallback.
func dbError(err, notFound, fallback error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}
	if mapped := mapPgError(err); mapped != nil {
		return mapped
	}
	for _, sentinel := range passthroughErrors {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
