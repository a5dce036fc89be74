// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrMissingFields        = errors.New("all fields are required")
	ErrNoUserID             = errors.New("no user ID was given")
	ErrInvalidItemID        = errors.New("invalid item ID")
	ErrUnauthorizedDeletion = errors.New("item belongs to another user")
	ErrUploadFailed         = errors.New("error uploading to object storage")
)
