// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/edims/internal/logger"
	"github.com/MKhiriev/edims/internal/mock"
	"github.com/MKhiriev/edims/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidatedAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewAuthValidationService().Wrap(NewAuthService(repo, testAppConfig(), logger.Nop())), repo
}

func TestAuthValidationService_RegisterUser_MissingFields(t *testing.T) {
	requests := map[string]models.RegisterRequest{
		"no username": {Email: "a@x.com", Password: "p"},
		"no email":    {Username: "alice", Password: "p"},
		"no password": {Username: "alice", Email: "a@x.com"},
	}

	for name, req := range requests {
		t.Run(name, func(t *testing.T) {
			// no repository call is expected
			svc, _ := newValidatedAuthService(t)

			_, err := svc.RegisterUser(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthValidationService_Login_MissingFields(t *testing.T) {
	svc, _ := newValidatedAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@x.com"})
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(context.Background(), models.LoginRequest{Password: "p"})
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestAuthValidationService_DelegatesValidRequests(t *testing.T) {
	svc, repo := newValidatedAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{ID: 1}, nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "p"})

	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthValidationService_TokenGuards(t *testing.T) {
	svc, _ := newValidatedAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateToken(ctx, models.UserPublic{})
	require.ErrorIs(t, err, ErrTokenCreationFailed)

	_, err = svc.ParseToken(ctx, "")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	token, err := svc.CreateToken(ctx, models.UserPublic{ID: 3, Username: "u", Email: "u@x.com"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(3), parsed.User.ID)
}
