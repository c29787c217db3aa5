// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenInvalid is returned when a token is malformed, expired, of the
	// wrong kind, signed with another key or revoked.
	ErrTokenInvalid = errors.New("token is invalid or expired")

	ErrTokenCreationFailed = errors.New("failed to create token")

	// ErrIdentityVerification is returned when an external identity token
	// cannot be verified.
	ErrIdentityVerification = errors.New("identity verification failed")

	// ErrInvalidTransition is returned when a domain status change is not
	// allowed from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrHasDependents is returned when a category still has domains and the
	// deletion was not forced.
	ErrHasDependents = errors.New("category has domains, resend with force=true to delete them")

	// ErrForbidden is returned when the caller may not act on the resource.
	ErrForbidden = errors.New("forbidden")

	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRedirectURI is returned when a redirect target is not covered
	// by the allowed redirect URIs.
	ErrInvalidRedirectURI = errors.New("redirect uri is not allowed")

	// ErrDomainStatusChanged is returned when the status of a domain changed
	// between reading and updating it.
	ErrDomainStatusChanged = errors.New("domain status was changed by another request")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
