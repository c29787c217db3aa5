// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/store"
	"github.com/MKhiriev/domain-marketplace/models"
)

// ─────────────────────────────────────────────
// UserRepository
// ─────────────────────────────────────────────

type mockUserRepo struct {
	createFn     func(ctx context.Context, user models.User) (models.User, error)
	getByIDFn    func(ctx context.Context, id int64) (models.User, error)
	getByEmailFn func(ctx context.Context, email string) (models.User, error)
	findFn       func(ctx context.Context, googleID, email string) (models.User, error)
	linkFn       func(ctx context.Context, id int64, profile models.ExternalProfile) (models.User, error)
	touchFn      func(ctx context.Context, id int64) error
	listFn       func(ctx context.Context, filter models.UserFilter) ([]models.User, int, error)
	updateFn     func(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.User{ID: id}, nil
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return models.User{}, nil
}
func (m *mockUserRepo) FindUserByGoogleIDOrEmail(ctx context.Context, googleID, email string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, googleID, email)
	}
	return models.User{}, nil
}
func (m *mockUserRepo) LinkGoogleAccount(ctx context.Context, id int64, profile models.ExternalProfile) (models.User, error) {
	if m.linkFn != nil {
		return m.linkFn(ctx, id, profile)
	}
	return models.User{ID: id}, nil
}
func (m *mockUserRepo) TouchLastLogin(ctx context.Context, id int64) error {
	if m.touchFn != nil {
		return m.touchFn(ctx, id)
	}
	return nil
}
func (m *mockUserRepo) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}
func (m *mockUserRepo) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return models.User{ID: id}, nil
}
func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// CategoryRepository
// ─────────────────────────────────────────────

type mockCategoryRepo struct {
	createFn     func(ctx context.Context, category models.Category) (models.Category, error)
	getByIDFn    func(ctx context.Context, id int64) (models.Category, error)
	getBySlugFn  func(ctx context.Context, slug string) (models.Category, error)
	getByTermFn  func(ctx context.Context, term string) (models.Category, error)
	slugExistsFn func(ctx context.Context, slug string) (bool, error)
	listFn       func(ctx context.Context, filter models.CategoryFilter) ([]models.Category, int, error)
	updateFn     func(ctx context.Context, id int64, upd models.CategoryUpdate) (models.Category, error)
	deleteFn     func(ctx context.Context, id int64, force bool) (models.Category, int, error)
	reconcileFn  func(ctx context.Context) (int64, error)
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.createFn != nil {
		return m.createFn(ctx, category)
	}
	return category, nil
}
func (m *mockCategoryRepo) GetCategoryByID(ctx context.Context, id int64) (models.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Category{ID: id}, nil
}
func (m *mockCategoryRepo) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return models.Category{Slug: slug}, nil
}
func (m *mockCategoryRepo) GetCategoryByTitleOrSlug(ctx context.Context, term string) (models.Category, error) {
	if m.getByTermFn != nil {
		return m.getByTermFn(ctx, term)
	}
	return models.Category{}, store.ErrCategoryNotFound
}
func (m *mockCategoryRepo) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	if m.slugExistsFn != nil {
		return m.slugExistsFn(ctx, slug)
	}
	return false, nil
}
func (m *mockCategoryRepo) ListCategories(ctx context.Context, filter models.CategoryFilter) ([]models.Category, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}
func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, id int64, upd models.CategoryUpdate) (models.Category, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return models.Category{ID: id}, nil
}
func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, id int64, force bool) (models.Category, int, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, force)
	}
	return models.Category{ID: id}, 0, nil
}
func (m *mockCategoryRepo) ReconcileDomainCounts(ctx context.Context) (int64, error) {
	if m.reconcileFn != nil {
		return m.reconcileFn(ctx)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// DomainRepository
// ─────────────────────────────────────────────

type mockDomainRepo struct {
	createFn     func(ctx context.Context, input models.DomainInput) (models.Domain, error)
	getByIDFn    func(ctx context.Context, id int64) (models.Domain, error)
	viewFn       func(ctx context.Context, id int64) (models.Domain, error)
	inquiryFn    func(ctx context.Context, id int64) (models.Domain, error)
	slugExistsFn func(ctx context.Context, slug string) (bool, error)
	listFn       func(ctx context.Context, filter models.DomainFilter) ([]models.Domain, int, error)
	searchFn     func(ctx context.Context, term string, limit int) ([]models.Domain, error)
	recommendFn  func(ctx context.Context, categoryID, excludeID int64, limit int) ([]models.Domain, error)
	updateFn     func(ctx context.Context, id int64, upd models.DomainUpdate) (models.Domain, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockDomainRepo) CreateDomainWithCategory(ctx context.Context, input models.DomainInput) (models.Domain, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return models.Domain{Name: input.Name}, nil
}
func (m *mockDomainRepo) GetDomainByID(ctx context.Context, id int64) (models.Domain, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Domain{ID: id}, nil
}
func (m *mockDomainRepo) ViewDomain(ctx context.Context, id int64) (models.Domain, error) {
	if m.viewFn != nil {
		return m.viewFn(ctx, id)
	}
	return models.Domain{ID: id}, nil
}
func (m *mockDomainRepo) RecordInquiry(ctx context.Context, id int64) (models.Domain, error) {
	if m.inquiryFn != nil {
		return m.inquiryFn(ctx, id)
	}
	return models.Domain{ID: id}, nil
}
func (m *mockDomainRepo) DomainSlugExists(ctx context.Context, slug string) (bool, error) {
	if m.slugExistsFn != nil {
		return m.slugExistsFn(ctx, slug)
	}
	return false, nil
}
func (m *mockDomainRepo) ListDomains(ctx context.Context, filter models.DomainFilter) ([]models.Domain, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}
func (m *mockDomainRepo) SearchDomains(ctx context.Context, term string, limit int) ([]models.Domain, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, term, limit)
	}
	return nil, nil
}
func (m *mockDomainRepo) RecommendDomains(ctx context.Context, categoryID, excludeID int64, limit int) ([]models.Domain, error) {
	if m.recommendFn != nil {
		return m.recommendFn(ctx, categoryID, excludeID, limit)
	}
	return nil, nil
}
func (m *mockDomainRepo) UpdateDomain(ctx context.Context, id int64, upd models.DomainUpdate) (models.Domain, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return models.Domain{ID: id}, nil
}
func (m *mockDomainRepo) DeleteDomain(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// RefreshTokenStore (in-memory)
// ─────────────────────────────────────────────

type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Duration
	err    error
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: map[string]time.Duration{}}
}

func tokenKey(userID int64, tokenID string) string {
	return fmt.Sprintf("%d:%s", userID, tokenID)
}

func (m *memoryTokenStore) Save(_ context.Context, userID int64, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.tokens[tokenKey(userID, tokenID)] = ttl
	return nil
}
func (m *memoryTokenStore) Exists(_ context.Context, userID int64, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.tokens[tokenKey(userID, tokenID)]
	return ok, nil
}
func (m *memoryTokenStore) Revoke(_ context.Context, userID int64, tokenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	key := tokenKey(userID, tokenID)
	if _, ok := m.tokens[key]; !ok {
		return store.ErrRefreshTokenNotFound
	}
	delete(m.tokens, key)
	return nil
}

// ─────────────────────────────────────────────
// Publisher / IdentityVerifier / HealthChecker
// ─────────────────────────────────────────────

type recordingPublisher struct {
	events []models.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event models.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}
func (p *recordingPublisher) Close() error { return nil }

type mockVerifier struct {
	verifyFn func(ctx context.Context, rawToken string) (models.ExternalProfile, error)
}

func (m *mockVerifier) Verify(ctx context.Context, rawToken string) (models.ExternalProfile, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, rawToken)
	}
	return models.ExternalProfile{}, nil
}

type mockHealth struct {
	err error
}

func (m *mockHealth) CheckHealth(context.Context) error { return m.err }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func ptr[T any](v T) *T { return &v }
