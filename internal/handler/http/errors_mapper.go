// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/service"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/internal/validators"
)

type errorStatus struct {
	target error
	status int

	// detailed errors carry caller-facing detail after the sentinel text.
	detailed bool
}

var errorStatusTable = []errorStatus{
	{target: validators.ErrValidation, status: http.StatusBadRequest, detailed: true},
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, detailed: true},
	{target: service.ErrInvalidRedirectURI, status: http.StatusBadRequest},
	{target: service.ErrVersionIsNotSpecified, status: http.StatusBadRequest},
	{target: errInvalidJSON, status: http.StatusBadRequest},
	{target: errInvalidID, status: http.StatusBadRequest},
	{target: store.ErrConstraintViolation, status: http.StatusBadRequest},

	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{target: service.ErrTokenInvalid, status: http.StatusUnauthorized},
	{target: service.ErrIdentityVerification, status: http.StatusUnauthorized},
	{target: errNoActor, status: http.StatusUnauthorized},

	{target: service.ErrForbidden, status: http.StatusForbidden, detailed: true},

	{target: store.ErrUserNotFound, status: http.StatusNotFound},
	{target: store.ErrDomainNotFound, status: http.StatusNotFound},
	{target: store.ErrCategoryNotFound, status: http.StatusNotFound},

	{target: service.ErrHasDependents, status: http.StatusConflict},
	{target: service.ErrInvalidTransition, status: http.StatusConflict, detailed: true},
	{target: service.ErrDomainStatusChanged, status: http.StatusConflict},
	{target: store.ErrEmailAlreadyExists, status: http.StatusConflict},
	{target: store.ErrGoogleIDAlreadyExists, status: http.StatusConflict},
	{target: store.ErrCategoryTitleExists, status: http.StatusConflict},
	{target: store.ErrCategorySlugExists, status: http.StatusConflict},
	{target: store.ErrDomainNameExists, status: http.StatusConflict},
	{target: store.ErrDomainSlugExists, status: http.StatusConflict},
	{target: store.ErrAlreadyExists, status: http.StatusConflict},
	{target: store.ErrStatusConflict, status: http.StatusConflict},

	{target: errRateLimited, status: http.StatusTooManyRequests},

	{target: store.ErrPoolExhausted, status: http.StatusServiceUnavailable},
	{target: store.ErrTokenStore, status: http.StatusServiceUnavailable},
}

func lookupError(err error) (errorStatus, bool) {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry, true
		}
	}
	return errorStatus{}, false
}

func statusFromError(err error) int {
	if entry, ok := lookupError(err); ok {
		return entry.status
	}
	return http.StatusInternalServerError
}

// errorMessage returns the text sent to the client. Unknown errors are
// reduced to the status text so raw storage errors never leave the server.
func errorMessage(err error) string {
	entry, ok := lookupError(err)
	switch {
	case !ok:
		return http.StatusText(http.StatusInternalServerError)
	case entry.detailed:
		return err.Error()
	default:
		return entry.target.Error()
	}
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	utils.WriteError(w, errorMessage(err), status)
}
