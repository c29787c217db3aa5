// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/models"
	"google.golang.org/api/idtoken"
)

//go:generate mockgen -source=identity_verifier.go -destination=../mock/identity_verifier_mock.go -package=mock

// IdentityVerifier verifies an ID token issued by an external identity
// provider and extracts the profile it vouches for.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (models.ExternalProfile, error)
}

// validateFunc has the signature of [idtoken.Validate].
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// googleVerifier checks Google ID tokens against Google's public keys and
// requires the audience to be this application's client id.
type googleVerifier struct {
	clientID string
	validate validateFunc
}

// NewGoogleVerifier returns an [IdentityVerifier] for Google ID tokens issued
// to clientID.
func NewGoogleVerifier(clientID string) IdentityVerifier {
	return &googleVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

func (v *googleVerifier) Verify(ctx context.Context, rawToken string) (models.ExternalProfile, error) {
	log := logger.FromContext(ctx)

	if rawToken == "" || v.clientID == "" {
		return models.ExternalProfile{}, ErrIdentityVerification
	}

	payload, err := v.validate(ctx, rawToken, v.clientID)
	if err != nil {
		log.Err(err).Str("func", "googleVerifier.Verify").Msg("google id token rejected")
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrIdentityVerification, err)
	}

	profile := models.ExternalProfile{
		ExternalID: payload.Subject,
		Email:      claimString(payload.Claims, "email"),
		FirstName:  claimString(payload.Claims, "given_name"),
		LastName:   claimString(payload.Claims, "family_name"),
		AvatarURL:  claimString(payload.Claims, "picture"),
	}
	if profile.ExternalID == "" || profile.Email == "" {
		log.Error().Str("func", "googleVerifier.Verify").Msg("google id token carries no subject or email")
		return models.ExternalProfile{}, ErrIdentityVerification
	}

	return profile, nil
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}
