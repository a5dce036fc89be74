// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/edims/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserValidator(t *testing.T) {
	require.NotNil(t, NewUserValidator())
}

func TestUserValidator_RegisterRequest(t *testing.T) {
	valid := models.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw1"}

	tests := []struct {
		name   string
		mutate func(r *models.RegisterRequest)
		want   error
	}{
		{name: "valid", mutate: func(*models.RegisterRequest) {}},
		{name: "empty username", mutate: func(r *models.RegisterRequest) { r.Username = "" }, want: ErrEmptyUsername},
		{name: "empty email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, want: ErrEmptyEmail},
		{name: "empty password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, want: ErrEmptyPassword},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			assert.ErrorIs(t, v.Validate(context.Background(), req), tt.want)
			assert.ErrorIs(t, v.Validate(context.Background(), &req), tt.want)
		})
	}
}

func TestUserValidator_LoginRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@x.io", Password: "pw1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "pw1"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, &models.LoginRequest{Email: "a@x.io"}), ErrEmptyPassword)
}

func TestUserValidator_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()
	req := models.RegisterRequest{Email: "a@x.io"}

	assert.NoError(t, v.Validate(ctx, req, FieldEmail))
	assert.ErrorIs(t, v.Validate(ctx, req, FieldEmail, FieldUsername), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, req, "nickname"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "a@x.io", Password: "p"}, FieldUsername), ErrUnknownField)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewUserValidator().Validate(context.Background(), models.Item{}), ErrUnsupportedType)
}
