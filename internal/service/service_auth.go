// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/events"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/internal/utils"
	"github.com/MKhiriev/domain-marketplace/internal/validators"
	"github.com/MKhiriev/domain-marketplace/models"
)

// authService is the concrete implementation of AuthService.
// It handles local registration, credential verification and the JWT
// access/refresh lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// refreshTokens remembers issued refresh token ids so they can be revoked.
	refreshTokens store.RefreshTokenStore

	validator validators.Validator
	hasher    *utils.PasswordHasher
	publisher events.Publisher

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessSignKey and refreshSignKey sign the two token kinds. They differ,
	// so a token of one kind never verifies as the other.
	accessSignKey  string
	refreshSignKey string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	newTokenID func() string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	refreshTokens store.RefreshTokenStore,
	publisher events.Publisher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:       userRepository,
		refreshTokens:        refreshTokens,
		validator:            validators.NewUserValidator(),
		hasher:               utils.NewPasswordHasher(cfg.BcryptCost),
		publisher:            publisher,
		tokenIssuer:          cfg.TokenIssuer,
		accessSignKey:        cfg.AccessTokenSignKey,
		refreshSignKey:       cfg.RefreshTokenSignKey,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		newTokenID:           utils.NewID,
		logger:               logger,
	}
}

// Register creates a new local account.
//
// The email is trimmed and lower-cased, the password is hashed with bcrypt and
// the role is always [models.RoleUser]. Returns the persisted user and an
// access token, or:
//   - a [validators.ErrValidation] error for malformed input.
//   - [store.ErrEmailAlreadyExists] (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)

	if err := a.validator.Validate(ctx, user); err != nil {
		return models.User{}, models.Token{}, err
	}

	digest, err := a.hasher.Hash(user.Password)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	user.Password = ""
	user.PasswordHash = &digest
	user.Role = models.RoleUser
	user.AuthType = models.AuthTypeLocal
	user.IsVerified = false
	user.GoogleID = nil

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueAccessToken(registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	publishEvent(ctx, a.publisher, models.EventUserRegistered, registeredUser.ID, registeredUser.Summary())

	return registeredUser, token, nil
}

// Login authenticates a local account and issues a token pair.
//
// An unknown email, a Google-only account and a wrong password all yield
// [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	foundUser, err := a.userRepository.GetUserByEmail(ctx, normalizeEmail(credentials.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.PasswordHash == nil || !a.hasher.Verify(credentials.Password, *foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}

	if err = a.userRepository.TouchLastLogin(ctx, foundUser.ID); err != nil {
		log.Warn().Err(err).Int64("id", foundUser.ID).Msg("failed to record last login")
	}

	pair, err := a.IssueTokens(ctx, foundUser)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	return foundUser, pair, nil
}

// Refresh verifies refreshToken, revokes it and issues a fresh pair for its
// owner.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	claims, err := a.parseRefreshToken(ctx, refreshToken)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	user, err := a.userRepository.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, models.TokenPair{}, ErrTokenInvalid
	}
	if err != nil {
		log.Err(err).Int64("id", claims.UserID).Msg("user search by id failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if err = a.revoke(ctx, claims); err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	pair, err := a.IssueTokens(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	return user, pair, nil
}

// Logout revokes refreshToken.
func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := a.parseRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}

	return a.revoke(ctx, claims)
}

// IssueTokens signs an access token and a refresh token for user and records
// the refresh token id.
func (a *authService) IssueTokens(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := a.issueAccessToken(user)
	if err != nil {
		return models.TokenPair{}, err
	}

	claims := models.Claims{UserID: user.ID, Kind: models.RefreshToken}
	claims.ID = a.newTokenID()

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, claims, a.refreshTokenDuration, a.refreshSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.refreshTokens.Save(ctx, user.ID, claims.ID, a.refreshTokenDuration); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("failed to store refresh token")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{Access: access, Refresh: refresh}, nil
}

// ParseAccessToken validates and parses a raw access token.
//
// Any validation failure (expired, wrong issuer, wrong key, refresh token
// presented instead) is normalised to [ErrTokenInvalid].
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.accessSignKey, a.tokenIssuer)
	if err != nil || claims.Kind != models.AccessToken {
		return models.Claims{}, ErrTokenInvalid
	}

	return claims, nil
}

func (a *authService) issueAccessToken(user models.User) (models.Token, error) {
	claims := models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Kind:   models.AccessToken,
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, claims, a.accessTokenDuration, a.accessSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) parseRefreshToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.refreshSignKey, a.tokenIssuer)
	if err != nil || claims.Kind != models.RefreshToken || claims.ID == "" {
		return models.Claims{}, ErrTokenInvalid
	}

	ok, err := a.refreshTokens.Exists(ctx, claims.UserID, claims.ID)
	if err != nil {
		return models.Claims{}, fmt.Errorf("refresh token lookup failed: %w", err)
	}
	if !ok {
		return models.Claims{}, ErrTokenInvalid
	}

	return claims, nil
}

func (a *authService) revoke(ctx context.Context, claims models.Claims) error {
	err := a.refreshTokens.Revoke(ctx, claims.UserID, claims.ID)
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		return ErrTokenInvalid
	}
	if err != nil {
		return fmt.Errorf("refresh token revocation failed: %w", err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
