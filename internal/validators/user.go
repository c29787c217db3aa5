// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/domain-marketplace/models"
)

// Field names accepted by [UserValidator].
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldPhone     = "phone"
	FieldRole      = "role"

	// FieldNotEmpty rejects partial updates that carry no changes.
	FieldNotEmpty = "not_empty"
)

const (
	minPasswordLen = 8
	minNameLen     = 1
	maxNameLen     = 50
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)

// UserValidator validates registrations, profile updates and login
// credentials.
//
// Supported types:
//   - models.User / *models.User
//   - models.UserUpdate / *models.UserUpdate
//   - models.Credentials / *models.Credentials
type UserValidator struct{}

// NewUserValidator constructs a [UserValidator].
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks a local registration.
//
// Default validated fields: first name, last name, email, password, phone.
func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldPhone}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFirstName:
			err = checkName(user.FirstName, ErrInvalidFirstName)
		case FieldLastName:
			err = checkName(user.LastName, ErrInvalidLastName)
		case FieldEmail:
			err = checkEmail(user.Email)
		case FieldPassword:
			err = checkPassword(user.Password)
		case FieldPhone:
			if user.Phone != nil {
				err = checkPhone(*user.Phone)
			}
		case FieldRole:
			if user.Role != "" && !user.Role.Valid() {
				err = ErrInvalidRole
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

// validateUserUpdate checks the non-nil fields of a partial update. An
// update that carries nothing fails with [ErrNoFieldsToUpdate].
func (v *UserValidator) validateUserUpdate(upd models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldPhone, FieldRole}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldNotEmpty:
			if upd.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldFirstName:
			if upd.FirstName != nil {
				err = checkName(*upd.FirstName, ErrInvalidFirstName)
			}
		case FieldLastName:
			if upd.LastName != nil {
				err = checkName(*upd.LastName, ErrInvalidLastName)
			}
		case FieldEmail:
			if upd.Email != nil {
				err = checkEmail(*upd.Email)
			}
		case FieldPassword:
			if upd.Password != nil {
				err = checkPassword(*upd.Password)
			}
		case FieldPhone:
			if upd.Phone != nil && *upd.Phone != "" {
				err = checkPhone(*upd.Phone)
			}
		case FieldRole:
			if upd.Role != nil && !upd.Role.Valid() {
				err = ErrInvalidRole
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

func (v *UserValidator) validateCredentials(c models.Credentials) error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return ErrEmptyCredentials
	}
	return nil
}

func checkName(name string, errInvalid error) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < minNameLen || n > maxNameLen {
		return errInvalid
	}
	return nil
}

func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

func checkPhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}
