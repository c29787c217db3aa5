// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row.
//
// Error handling:
//   - duplicate email → [ErrEmailAlreadyExists]
//   - duplicate Google id → [ErrGoogleIDAlreadyExists]
//   - any other driver-level error → wrapped [ErrExecutingQuery]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withConn(ctx, func(q querier) error {
		var scanErr error
		created, scanErr = scanUser(q.QueryRowContext(ctx, createUser,
			user.FirstName,
			user.LastName,
			user.Email,
			user.PasswordHash,
			user.Phone,
			user.Role,
			user.IsVerified,
			user.GoogleID,
			user.AvatarURL,
			user.AuthType,
			user.LastLoginAt,
		))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, dbError(err, nil, ErrExecutingQuery)
	}

	return created, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.getOne(ctx, "*userRepository.GetUserByID", getUserByID, id)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, "*userRepository.GetUserByEmail", getUserByEmail, email)
}

func (r *userRepository) FindUserByGoogleIDOrEmail(ctx context.Context, googleID, email string) (models.User, error) {
	return r.getOne(ctx, "*userRepository.FindUserByGoogleIDOrEmail", findUserByGoogleIDOrEmail, googleID, email)
}

// LinkGoogleAccount attaches the Google identity to an existing account,
// refreshes the non-empty profile fields, marks the account verified and
// records the login.
func (r *userRepository) LinkGoogleAccount(ctx context.Context, id int64, profile models.ExternalProfile) (models.User, error) {
	return r.getOne(ctx, "*userRepository.LinkGoogleAccount", linkGoogleAccount,
		id, profile.ExternalID, profile.FirstName, profile.LastName, profile.AvatarURL)
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := r.db.withConn(ctx, func(q querier) error {
		_, execErr := q.ExecContext(ctx, touchUserLastLogin, id)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Int64("user_id", id).Msg("error updating last login")
		return dbError(err, nil, ErrExecutingQuery)
	}

	return nil
}

// ListUsers returns one page of users together with the total number of
// users matching filter.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	log := logger.FromContext(ctx)

	listQuery, listArgs, err := buildListUsersQuery(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	countQuery, countArgs, err := buildCountUsersQuery(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var (
		users []models.User
		total int
	)
	err = r.db.withConn(ctx, func(q querier) error {
		if scanErr := q.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); scanErr != nil {
			return scanErr
		}

		rows, queryErr := q.QueryContext(ctx, listQuery, listArgs...)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		users, collectErr = collect(rows, scanUser)
		return collectErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, 0, dbError(err, nil, ErrExecutingQuery)
	}

	return users, total, nil
}

// UpdateUser applies the non-nil fields of upd and returns the updated row.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error) {
	query, args, err := buildUpdateUserQuery(ctx, id, upd)
	if err != nil {
		return models.User{}, err
	}

	return r.getOne(ctx, "*userRepository.UpdateUser", query, args...)
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.withConn(ctx, func(q querier) error {
		res, execErr := q.ExecContext(ctx, deleteUser, id)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", id).Msg("error deleting user")
		return dbError(err, nil, ErrExecutingQuery)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// getOne runs a query returning at most one user row.
func (r *userRepository) getOne(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withConn(ctx, func(q querier) error {
		var scanErr error
		user, scanErr = scanUser(q.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", funcName).Msg("error querying user")
		}
		return models.User{}, dbError(err, ErrUserNotFound, ErrExecutingQuery)
	}

	return user, nil
}
