// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var (
	// ErrEmptyPassword is returned when an empty string is given for hashing.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrPasswordTooLong is returned when the input exceeds what bcrypt can
	// hash without silently truncating it.
	ErrPasswordTooLong = errors.New("password is too long")
)

// PasswordHasher hashes and verifies passwords with bcrypt.
//
// The zero value is not usable; construct it with [NewPasswordHasher].
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt work factor.
// Values outside [bcrypt.MinCost, bcrypt.MaxCost] fall back to
// [bcrypt.DefaultCost].
//
// Example usage:
//
//	hasher := utils.NewPasswordHasher(10)
//	digest, err := hasher.Hash("correct horse battery staple")
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted bcrypt digest of plaintext.
//
// Returns [ErrEmptyPassword] or [ErrPasswordTooLong] for inputs bcrypt would
// reject or truncate.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches digest. The comparison is done by
// bcrypt itself and is constant-time.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	if plaintext == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Cost returns the configured work factor.
func (h *PasswordHasher) Cost() int {
	return h.cost
}
