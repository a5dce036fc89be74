// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/edims/internal/config"
	"github.com/MKhiriev/edims/internal/logger"
	"github.com/MKhiriev/edims/internal/service"
	"github.com/MKhiriev/edims/internal/utils"
	"github.com/MKhiriev/edims/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.UserPublic, error)
	createTokenFn func(ctx context.Context, user models.UserPublic) (models.Token, error)
	parseTokenFn  func(ctx context.Context, token string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.UserPublic{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.UserPublic, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.UserPublic{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.UserPublic) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", User: user}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, token)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// ─────────────────────────────────────────────
// Mock: service.ItemService
// ─────────────────────────────────────────────

type mockItemService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Item, error)
	createFn func(ctx context.Context, item models.NewItem) (models.Item, error)
	deleteFn func(ctx context.Context, userID, itemID int64) error
}

func (m *mockItemService) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return []models.Item{}, nil
}

func (m *mockItemService) CreateItem(ctx context.Context, item models.NewItem) (models.Item, error) {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return models.Item{}, nil
}

func (m *mockItemService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, itemID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.buildInfo.BuildVersion()
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testMaxUploadSize = 1 << 20

var testUser = models.UserPublic{ID: 7, Username: "alice", Email: "a@x.com"}

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, config.Server{MaxUploadSize: testMaxUploadSize}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// withTestUser simulates a request that passed the auth middleware.
func withTestUser(r *http.Request) *http.Request {
	r = injectNopLogger(r)
	return r.WithContext(utils.WithUser(r.Context(), testUser))
}
