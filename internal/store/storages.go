// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	DomainRepository   DomainRepository
	RefreshTokens      RefreshTokenStore
	Health             HealthChecker

	db    *DB
	redis *redis.Client
}

// NewStorages initialises the storage layer:
//  1. opens the PostgreSQL pool described by cfg.DB;
//  2. runs pending schema migrations;
//  3. connects to Redis when cfg.Redis.Address is set, otherwise refresh
//     tokens are not tracked.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := newStorages(db, log)

	if cfg.Redis.Address == "" {
		log.Warn().Msg("redis address is not set, refresh tokens cannot be revoked")
		return storages, nil
	}

	client, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	storages.redis = client
	storages.RefreshTokens = NewRedisRefreshTokenStore(client, log)

	return storages, nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		DomainRepository:   NewDomainRepository(db, log),
		RefreshTokens:      NewStatelessRefreshTokenStore(),
		Health:             db,
		db:                 db,
	}
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
