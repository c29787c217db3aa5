// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/events"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/models"
)

type googleAuthService struct {
	userRepository store.UserRepository
	verifier       IdentityVerifier
	authService    AuthService
	publisher      events.Publisher

	allowedRedirectURIs []string
	clientRedirectURL   string

	logger *logger.Logger
}

// NewGoogleAuthService constructs a GoogleAuthService. Tokens are verified by
// verifier and issued by authService.
func NewGoogleAuthService(
	userRepository store.UserRepository,
	verifier IdentityVerifier,
	authService AuthService,
	publisher events.Publisher,
	cfg config.App,
	logger *logger.Logger,
) GoogleAuthService {
	return &googleAuthService{
		userRepository:      userRepository,
		verifier:            verifier,
		authService:         authService,
		publisher:           publisher,
		allowedRedirectURIs: cfg.AllowedRedirectURIs,
		clientRedirectURL:   cfg.ClientRedirectURL,
		logger:              logger,
	}
}

// Login verifies idToken, finds or creates the matching account and issues
// a token pair for it. Verification failures of any kind surface as
// [ErrIdentityVerification].
func (g *googleAuthService) Login(ctx context.Context, idToken string) (models.User, models.TokenPair, error) {
	if strings.TrimSpace(idToken) == "" {
		return models.User{}, models.TokenPair{}, fmt.Errorf("%w: idToken is required", ErrInvalidInput)
	}

	profile, err := g.verifier.Verify(ctx, idToken)
	if err != nil {
		if !errors.Is(err, ErrIdentityVerification) {
			err = fmt.Errorf("%w: %w", ErrIdentityVerification, err)
		}
		return models.User{}, models.TokenPair{}, err
	}

	user, err := g.FindOrCreateUser(ctx, profile)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	pair, err := g.authService.IssueTokens(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	return user, pair, nil
}

// FindOrCreateUser looks the account up by Google id or email. An existing
// account is linked and marked verified; otherwise a Google account is
// created. When a concurrent login inserts the same email first, the
// duplicate insert is retried as a lookup.
func (g *googleAuthService) FindOrCreateUser(ctx context.Context, profile models.ExternalProfile) (models.User, error) {
	log := logger.FromContext(ctx)
	profile.Email = normalizeEmail(profile.Email)

	user, err := g.linkExisting(ctx, profile)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, err
	}

	user, err = g.userRepository.CreateUser(ctx, newGoogleUser(profile))
	if errors.Is(err, store.ErrEmailAlreadyExists) || errors.Is(err, store.ErrGoogleIDAlreadyExists) {
		log.Info().Str("email", profile.Email).Msg("concurrent google sign-up detected, retrying lookup")
		return g.linkExisting(ctx, profile)
	}
	if err != nil {
		log.Err(err).Str("email", profile.Email).Msg("google user creation failed")
		return models.User{}, fmt.Errorf("google user creation failed: %w", err)
	}

	publishEvent(ctx, g.publisher, models.EventUserRegistered, user.ID, user.Summary())

	return user, nil
}

// RedirectURL appends token to redirectURI, which must start with one of
// the allowed redirect URIs.
func (g *googleAuthService) RedirectURL(redirectURI, token string) (string, error) {
	if redirectURI == "" {
		redirectURI = g.clientRedirectURL
	}
	if !g.redirectAllowed(redirectURI) {
		return "", ErrInvalidRedirectURI
	}

	target, err := url.Parse(redirectURI)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRedirectURI, err)
	}

	query := target.Query()
	query.Set("token", token)
	target.RawQuery = query.Encode()

	return target.String(), nil
}

func (g *googleAuthService) redirectAllowed(redirectURI string) bool {
	if redirectURI == "" {
		return false
	}
	for _, allowed := range g.allowedRedirectURIs {
		if allowed != "" && strings.HasPrefix(redirectURI, allowed) {
			return true
		}
	}
	return false
}

func (g *googleAuthService) linkExisting(ctx context.Context, profile models.ExternalProfile) (models.User, error) {
	found, err := g.userRepository.FindUserByGoogleIDOrEmail(ctx, profile.ExternalID, profile.Email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Msg("user search by google id or email failed")
		}
		return models.User{}, err
	}

	return g.userRepository.LinkGoogleAccount(ctx, found.ID, profile)
}

func newGoogleUser(profile models.ExternalProfile) models.User {
	now := timeNow()
	googleID := profile.ExternalID

	user := models.User{
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		Email:       profile.Email,
		Role:        models.RoleUser,
		IsVerified:  true,
		GoogleID:    &googleID,
		AuthType:    models.AuthTypeGoogle,
		LastLoginAt: &now,
	}
	if profile.AvatarURL != "" {
		avatar := profile.AvatarURL
		user.AvatarURL = &avatar
	}

	return user
}
