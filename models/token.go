// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set issued to authenticated users.
// The full public user projection is embedded so that protected handlers
// never need to look the user up again.
type TokenClaims struct {
	// User is the authenticated subject.
	User UserPublic `json:"user"`

	// RegisteredClaims provides the standard claim set
	// (sub, exp, iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims
}

// Token wraps a signed or parsed JWT together with the values callers need.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// User is the subject the token was issued for.
	User UserPublic `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
