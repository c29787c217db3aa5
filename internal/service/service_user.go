// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/internal/validators"
	"github.com/MKhiriev/domain-marketplace/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	hasher         *utils.PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hasher:         utils.NewPasswordHasher(cfg.BcryptCost),
		logger:         logger,
	}
}

func (u *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return u.userRepository.GetUserByID(ctx, id)
}

func (u *userService) ListUsers(ctx context.Context, filter models.UserFilter) (models.UserList, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	users, total, err := u.userRepository.ListUsers(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("listing users failed")
		return models.UserList{}, fmt.Errorf("listing users failed: %w", err)
	}

	return models.UserList{
		Users:      users,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// UpdateUser checks that actor owns the account or is an admin, validates
// upd and hashes a new password before persisting.
func (u *userService) UpdateUser(ctx context.Context, actor models.Actor, id int64, upd models.UserUpdate) (models.User, error) {
	if err := authorizeAccount(actor, id); err != nil {
		return models.User{}, err
	}
	if (upd.Role != nil || upd.IsVerified != nil) && actor.Role != models.RoleAdmin {
		return models.User{}, fmt.Errorf("%w: only admins may change role or verification", ErrForbidden)
	}

	if upd.Email != nil {
		email := normalizeEmail(*upd.Email)
		upd.Email = &email
	}
	upd.FirstName = trimmed(upd.FirstName)
	upd.LastName = trimmed(upd.LastName)

	upd.PasswordHash = nil
	if err := u.validator.Validate(ctx, upd); err != nil {
		return models.User{}, err
	}

	if upd.Password != nil {
		digest, err := u.hasher.Hash(*upd.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		upd.Password = nil
		upd.PasswordHash = &digest
	}

	updated, err := u.userRepository.UpdateUser(ctx, id, upd)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

func (u *userService) DeleteUser(ctx context.Context, actor models.Actor, id int64) error {
	if err := authorizeAccount(actor, id); err != nil {
		return err
	}

	if err := u.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// authorizeAccount allows the account owner and admins.
func authorizeAccount(actor models.Actor, id int64) error {
	if actor.UserID == id || actor.Role == models.RoleAdmin {
		return nil
	}
	return ErrForbidden
}
