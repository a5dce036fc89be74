// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/edims/internal/validators"
	"github.com/MKhiriev/edims/models"
)

// AuthValidationService checks request completeness before delegating to
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserPublic{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.UserPublic, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserPublic{}, fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.UserPublic) (models.Token, error) {
	if user.ID <= 0 {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, ErrNoUserID)
	}

	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}
