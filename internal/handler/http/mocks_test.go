// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/internal/service"
	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Unset fields return zero
// values; ParseAccessToken falls back to testTokens.
type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, models.Token, error)
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.User, models.TokenPair, error)
	refreshFn     func(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error)
	logoutFn      func(ctx context.Context, refreshToken string) error
	issueTokensFn func(ctx context.Context, user models.User) (models.TokenPair, error)
	parseFn       func(ctx context.Context, tokenString string) (models.Claims, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User) (models.User, models.Token, error) {
	if m.registerFn == nil {
		return user, models.Token{}, nil
	}
	return m.registerFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.TokenPair, error) {
	if m.loginFn == nil {
		return models.User{}, models.TokenPair{}, nil
	}
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.User, models.TokenPair, error) {
	if m.refreshFn == nil {
		return models.User{}, models.TokenPair{}, nil
	}
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.logoutFn == nil {
		return nil
	}
	return m.logoutFn(ctx, refreshToken)
}

func (m *mockAuthService) IssueTokens(ctx context.Context, user models.User) (models.TokenPair, error) {
	if m.issueTokensFn == nil {
		return models.TokenPair{}, nil
	}
	return m.issueTokensFn(ctx, user)
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Claims, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, tokenString)
	}
	claims, ok := testTokens[tokenString]
	if !ok {
		return models.Claims{}, service.ErrTokenInvalid
	}
	return claims, nil
}

// testTokens are the bearer tokens accepted by the default ParseAccessToken.
var testTokens = map[string]models.Claims{
	"user-token":      {UserID: 5, Email: "user@example.com", Role: models.RoleUser, Kind: models.AccessToken},
	"other-token":     {UserID: 6, Email: "other@example.com", Role: models.RoleUser, Kind: models.AccessToken},
	"moderator-token": {UserID: 2, Email: "mod@example.com", Role: models.RoleModerator, Kind: models.AccessToken},
	"admin-token":     {UserID: 1, Email: "admin@example.com", Role: models.RoleAdmin, Kind: models.AccessToken},
}

// ─────────────────────────────────────────────
// GoogleAuthService
// ─────────────────────────────────────────────

type mockGoogleAuthService struct {
	loginFn       func(ctx context.Context, idToken string) (models.User, models.TokenPair, error)
	findOrCreate  func(ctx context.Context, profile models.ExternalProfile) (models.User, error)
	redirectURLFn func(redirectURI, token string) (string, error)
}

func (m *mockGoogleAuthService) Login(ctx context.Context, idToken string) (models.User, models.TokenPair, error) {
	if m.loginFn == nil {
		return models.User{}, models.TokenPair{}, nil
	}
	return m.loginFn(ctx, idToken)
}

func (m *mockGoogleAuthService) FindOrCreateUser(ctx context.Context, profile models.ExternalProfile) (models.User, error) {
	if m.findOrCreate == nil {
		return models.User{}, nil
	}
	return m.findOrCreate(ctx, profile)
}

func (m *mockGoogleAuthService) RedirectURL(redirectURI, token string) (string, error) {
	if m.redirectURLFn == nil {
		return redirectURI, nil
	}
	return m.redirectURLFn(redirectURI, token)
}

// ─────────────────────────────────────────────
// UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	getFn    func(ctx context.Context, id int64) (models.User, error)
	listFn   func(ctx context.Context, filter models.UserFilter) (models.UserList, error)
	updateFn func(ctx context.Context, actor models.Actor, id int64, upd models.UserUpdate) (models.User, error)
	deleteFn func(ctx context.Context, actor models.Actor, id int64) error
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if m.getFn == nil {
		return models.User{ID: id}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context, filter models.UserFilter) (models.UserList, error) {
	if m.listFn == nil {
		return models.UserList{}, nil
	}
	return m.listFn(ctx, filter)
}

func (m *mockUserService) UpdateUser(ctx context.Context, actor models.Actor, id int64, upd models.UserUpdate) (models.User, error) {
	if m.updateFn == nil {
		return models.User{ID: id}, nil
	}
	return m.updateFn(ctx, actor, id, upd)
}

func (m *mockUserService) DeleteUser(ctx context.Context, actor models.Actor, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, actor, id)
}

// ─────────────────────────────────────────────
// DomainService
// ─────────────────────────────────────────────

type mockDomainService struct {
	createFn         func(ctx context.Context, input models.DomainInput) (models.Domain, error)
	getFn            func(ctx context.Context, id int64) (models.Domain, error)
	listFn           func(ctx context.Context, filter models.DomainFilter) (models.DomainList, error)
	listByCategoryFn func(ctx context.Context, categoryID int64, filter models.DomainFilter) (models.DomainList, error)
	searchFn         func(ctx context.Context, query string) ([]models.Domain, error)
	recommendFn      func(ctx context.Context, id int64) ([]models.Domain, error)
	inquiryFn        func(ctx context.Context, id int64) (models.Domain, error)
	updateFn         func(ctx context.Context, actor models.Actor, id int64, upd models.DomainUpdate) (models.Domain, error)
	deleteFn         func(ctx context.Context, actor models.Actor, id int64) error
}

func (m *mockDomainService) CreateDomain(ctx context.Context, input models.DomainInput) (models.Domain, error) {
	if m.createFn == nil {
		return models.Domain{}, nil
	}
	return m.createFn(ctx, input)
}

func (m *mockDomainService) GetDomain(ctx context.Context, id int64) (models.Domain, error) {
	if m.getFn == nil {
		return models.Domain{ID: id}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockDomainService) ListDomains(ctx context.Context, filter models.DomainFilter) (models.DomainList, error) {
	if m.listFn == nil {
		return models.DomainList{Domains: []models.Domain{}}, nil
	}
	return m.listFn(ctx, filter)
}

func (m *mockDomainService) ListCategoryDomains(ctx context.Context, categoryID int64, filter models.DomainFilter) (models.DomainList, error) {
	if m.listByCategoryFn == nil {
		return models.DomainList{Domains: []models.Domain{}}, nil
	}
	return m.listByCategoryFn(ctx, categoryID, filter)
}

func (m *mockDomainService) SearchDomains(ctx context.Context, query string) ([]models.Domain, error) {
	if m.searchFn == nil {
		return []models.Domain{}, nil
	}
	return m.searchFn(ctx, query)
}

func (m *mockDomainService) RecommendDomains(ctx context.Context, id int64) ([]models.Domain, error) {
	if m.recommendFn == nil {
		return []models.Domain{}, nil
	}
	return m.recommendFn(ctx, id)
}

func (m *mockDomainService) RecordInquiry(ctx context.Context, id int64) (models.Domain, error) {
	if m.inquiryFn == nil {
		return models.Domain{ID: id}, nil
	}
	return m.inquiryFn(ctx, id)
}

func (m *mockDomainService) UpdateDomain(ctx context.Context, actor models.Actor, id int64, upd models.DomainUpdate) (models.Domain, error) {
	if m.updateFn == nil {
		return models.Domain{ID: id}, nil
	}
	return m.updateFn(ctx, actor, id, upd)
}

func (m *mockDomainService) DeleteDomain(ctx context.Context, actor models.Actor, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, actor, id)
}

// ─────────────────────────────────────────────
// CategoryService
// ─────────────────────────────────────────────

type mockCategoryService struct {
	createFn    func(ctx context.Context, input models.CategoryInput) (models.Category, error)
	getFn       func(ctx context.Context, id int64) (models.Category, error)
	getBySlugFn func(ctx context.Context, slug string) (models.Category, error)
	listFn      func(ctx context.Context, filter models.CategoryFilter) (models.CategoryList, error)
	updateFn    func(ctx context.Context, id int64, upd models.CategoryUpdate) (models.Category, error)
	deleteFn    func(ctx context.Context, id int64, force bool) (models.CategoryDeletion, error)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error) {
	if m.createFn == nil {
		return models.Category{Title: input.Title}, nil
	}
	return m.createFn(ctx, input)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	if m.getFn == nil {
		return models.Category{ID: id}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockCategoryService) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	if m.getBySlugFn == nil {
		return models.Category{Slug: slug}, nil
	}
	return m.getBySlugFn(ctx, slug)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, filter models.CategoryFilter) (models.CategoryList, error) {
	if m.listFn == nil {
		return models.CategoryList{Categories: []models.Category{}}, nil
	}
	return m.listFn(ctx, filter)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id int64, upd models.CategoryUpdate) (models.Category, error) {
	if m.updateFn == nil {
		return models.Category{ID: id}, nil
	}
	return m.updateFn(ctx, id, upd)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id int64, force bool) (models.CategoryDeletion, error) {
	if m.deleteFn == nil {
		return models.CategoryDeletion{Category: models.Category{ID: id}}, nil
	}
	return m.deleteFn(ctx, id, force)
}

// ─────────────────────────────────────────────
// AvailabilityService / AppInfoService
// ─────────────────────────────────────────────

type mockAvailabilityService struct {
	checkFn func(ctx context.Context, domainID int64) (models.DomainAvailability, error)
}

func (m *mockAvailabilityService) CheckAvailability(ctx context.Context, domainID int64) (models.DomainAvailability, error) {
	if m.checkFn == nil {
		return models.DomainAvailability{}, nil
	}
	return m.checkFn(ctx, domainID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices bundles the mocks behind a service.Services value.
type testServices struct {
	auth         *mockAuthService
	google       *mockGoogleAuthService
	users        *mockUserService
	domains      *mockDomainService
	categories   *mockCategoryService
	availability *mockAvailabilityService
	appInfo      *mockAppInfoService
}

func newTestServices() *testServices {
	return &testServices{
		auth:         &mockAuthService{},
		google:       &mockGoogleAuthService{},
		users:        &mockUserService{},
		domains:      &mockDomainService{},
		categories:   &mockCategoryService{},
		availability: &mockAvailabilityService{},
		appInfo:      &mockAppInfoService{version: "test-version"},
	}
}

func (s *testServices) services() *service.Services {
	return &service.Services{
		AuthService:         s.auth,
		GoogleAuthService:   s.google,
		UserService:         s.users,
		DomainService:       s.domains,
		CategoryService:     s.categories,
		AvailabilityService: s.availability,
		AppInfoService:      s.appInfo,
	}
}

// router returns the full route tree without rate limiting.
func (s *testServices) router() http.Handler {
	return NewHandler(s.services(), config.Server{}, logger.Nop()).Init()
}

// do sends a request through router. A non-empty token is sent as a bearer
// token; body is marshalled to JSON unless it is already a string.
func do(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the JSON response body into T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// errorText returns the "error" field of a JSON error response.
func errorText(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rec).Error
}

func ptr[T any](v T) *T {
	return &v
}
