// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")

	ErrInvalidUserID = errors.New("invalid user ID")
	ErrInvalidItemID = errors.New("invalid item ID")
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyCategory = errors.New("category is required")
	ErrEmptyDate     = errors.New("date is required")
	ErrMissingImage  = errors.New("image is required")
)
