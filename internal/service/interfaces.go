// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business rules of the EDIMS server:
// registration and login with bcrypt and JWT, owner-scoped item management
// with image upload to object storage, and build information reporting.
package service

import (
	"context"

	"github.com/MKhiriev/edims/models"
)

// AuthService registers users, verifies credentials and issues and verifies
// bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error)
	Login(ctx context.Context, req models.LoginRequest) (models.UserPublic, error)
	CreateToken(ctx context.Context, user models.UserPublic) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService manages the items of the authenticated user.
type ItemService interface {
	ListItems(ctx context.Context, userID int64) ([]models.Item, error)
	CreateItem(ctx context.Context, item models.NewItem) (models.Item, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
}

// AppInfoService reports the build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// logging or validating.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService // returns a decorated ItemService applying additional behavior
}
