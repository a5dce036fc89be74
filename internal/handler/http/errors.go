// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/edims/internal/utils"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme or carries a malformed token.
	ErrInvalidAuthorizationHeader = utils.ErrInvalidAuthorizationHeader

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// Bearer scheme but no token value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is returned when a JSON request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a multipart request body cannot be parsed.
	ErrInvalidForm = errors.New("invalid multipart form")

	// ErrPayloadTooLarge is returned when a request body exceeds the
	// configured upload limit.
	ErrPayloadTooLarge = errors.New("payload too large")
)
