// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/redis/go-redis/v9"
)

const refreshTokenKeyFormat = "refresh_token:%d:%s"

// redisRefreshTokenStore keeps one key per issued refresh token. The key
// expires together with the token.
type redisRefreshTokenStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("error pinging redis")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrTokenStore, err)
	}
	log.Info().Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("connected to redis")

	return client, nil
}

// NewRedisRefreshTokenStore constructs a [RefreshTokenStore] backed by client.
func NewRedisRefreshTokenStore(client *redis.Client, log *logger.Logger) RefreshTokenStore {
	return &redisRefreshTokenStore{
		client: client,
		logger: log,
	}
}

func (s *redisRefreshTokenStore) Save(ctx context.Context, userID int64, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshTokenKey(userID, tokenID), 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRefreshTokenStore.Save").Int64("user_id", userID).Msg("error saving refresh token")
		return fmt.Errorf("%w: %w", ErrTokenStore, err)
	}
	return nil
}

func (s *redisRefreshTokenStore) Exists(ctx context.Context, userID int64, tokenID string) (bool, error) {
	err := s.client.Get(ctx, refreshTokenKey(userID, tokenID)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*redisRefreshTokenStore.Exists").Int64("user_id", userID).Msg("error reading refresh token")
		return false, fmt.Errorf("%w: %w", ErrTokenStore, err)
	}
}

func (s *redisRefreshTokenStore) Revoke(ctx context.Context, userID int64, tokenID string) error {
	deleted, err := s.client.Del(ctx, refreshTokenKey(userID, tokenID)).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRefreshTokenStore.Revoke").Int64("user_id", userID).Msg("error revoking refresh token")
		return fmt.Errorf("%w: %w", ErrTokenStore, err)
	}
	if deleted == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

func refreshTokenKey(userID int64, tokenID string) string {
	return fmt.Sprintf(refreshTokenKeyFormat, userID, tokenID)
}

// statelessRefreshTokenStore is used when no Redis address is configured:
// refresh tokens are then valid until they expire.
type statelessRefreshTokenStore struct{}

// NewStatelessRefreshTokenStore returns a [RefreshTokenStore] that tracks
// nothing and accepts every token.
func NewStatelessRefreshTokenStore() RefreshTokenStore {
	return statelessRefreshTokenStore{}
}

func (statelessRefreshTokenStore) Save(context.Context, int64, string, time.Duration) error {
	return nil
}

func (statelessRefreshTokenStore) Exists(context.Context, int64, string) (bool, error) {
	return true, nil
}

func (statelessRefreshTokenStore) Revoke(context.Context, int64, string) error {
	return nil
}
