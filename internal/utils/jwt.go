// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errInvalidJWTParams   = errors.New("invalid params for generating JWT token")
	errInvalidAuthzHeader = errors.New("invalid authorization header")
)

// GenerateJWTToken signs claims with HMAC-SHA256.
//
// The registered claims are filled in here:
//   - Issuer    (iss): issuer
//   - Subject   (sub): claims.UserID as a decimal string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Any ID (jti) already set on claims is kept.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("marketplace", models.Claims{UserID: 42}, time.Hour, "secret")
func GenerateJWTToken(issuer string, claims models.Claims, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errInvalidJWTParams
	}

	now := time.Now()
	claims.Issuer = issuer
	claims.Subject = strconv.FormatInt(claims.UserID, 10)
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ValidateAndParseJWTToken verifies the signature, the signing method, the
// issuer and the expiry of tokenString and returns its claims.
//
// Example usage:
//
//	claims, err := utils.ValidateAndParseJWTToken(raw, "secret", "marketplace")
//	if err != nil {
//	    // expired, tampered with, or signed by another key
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 {
		return models.Claims{}, errors.New("token carries no user id")
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errInvalidAuthzHeader
	}
	return parts[1], nil
}
