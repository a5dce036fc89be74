// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the persistence layer of the EDIMS server: the
// PostgreSQL-backed user and item repositories and the S3-compatible object
// storage that keeps item images.
//
// All methods take the request context so that a cancelled request aborts
// the in-flight query or upload.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/edims/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID.
	// Returns ErrEmailAlreadyExists on a unique violation of the email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemRepository persists the inventory items of all users.
type ItemRepository interface {
	// CreateItem inserts item and returns it with the assigned ID.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// ListItemsByUser returns all items owned by userID ordered by ID.
	// The result is never nil.
	ListItemsByUser(ctx context.Context, userID int64) ([]models.Item, error)

	// FindItemByID returns the item with the given ID regardless of its owner
	// or ErrItemNotFound.
	FindItemByID(ctx context.Context, itemID int64) (models.Item, error)

	// DeleteItem removes the item with itemID owned by userID.
	// Returns ErrItemNotFound when no row matched.
	DeleteItem(ctx context.Context, itemID, userID int64) error
}

// ObjectStorage stores item images in a bucket.
type ObjectStorage interface {
	// Upload stores body under key and returns its public URL.
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}
