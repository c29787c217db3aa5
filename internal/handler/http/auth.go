// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/service"
	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err, "invalid registration body")
		return
	}

	registeredUser, token, err := h.services.AuthService.Register(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, registeredUser.Summary(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err, "invalid login body")
		return
	}

	user, pair, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token:        pair.Access.SignedString,
		RefreshToken: pair.Refresh.SignedString,
		User:         user.Summary(),
	}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid refresh body")
		return
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		writeError(w, r, fmt.Errorf("%w: refresh_token is required", service.ErrInvalidInput), "empty refresh token")
		return
	}

	user, pair, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, err, "token refresh failed")
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token:        pair.Access.SignedString,
		RefreshToken: pair.Refresh.SignedString,
		User:         user.Summary(),
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid logout body")
		return
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		writeError(w, r, fmt.Errorf("%w: refresh_token is required", service.ErrInvalidInput), "empty refresh token")
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), req.RefreshToken); err != nil {
		writeError(w, r, err, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid google login body")
		return
	}

	user, pair, err := h.services.GoogleAuthService.Login(r.Context(), req.IDToken)
	if err != nil {
		writeError(w, r, err, "google login failed")
		return
	}

	utils.WriteJSON(w, models.ExternalLoginResponse{
		AccessToken:  pair.Access.SignedString,
		RefreshToken: pair.Refresh.SignedString,
		User:         user.Summary(),
	}, http.StatusOK)
}

// googleCallback finishes a browser sign-in: it verifies id_token and
// redirects to redirect_uri with the access token in the query.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	google := h.services.GoogleAuthService

	// The redirect target is checked before the token is verified.
	if _, err := google.RedirectURL(query.Get("redirect_uri"), ""); err != nil {
		writeError(w, r, err, "redirect uri rejected")
		return
	}

	_, pair, err := google.Login(r.Context(), query.Get("id_token"))
	if err != nil {
		writeError(w, r, err, "google callback failed")
		return
	}

	target, err := google.RedirectURL(query.Get("redirect_uri"), pair.Access.SignedString)
	if err != nil {
		writeError(w, r, err, "redirect uri rejected")
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}
