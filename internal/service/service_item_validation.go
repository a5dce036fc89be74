// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/edims/internal/validators"
	"github.com/MKhiriev/edims/models"
)

type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewItemValidator(),
	}
}

func (v *ItemValidationService) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	if err := v.validator.Validate(ctx, models.Item{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoUserID, err)
	}

	return v.inner.ListItems(ctx, userID)
}

func (v *ItemValidationService) CreateItem(ctx context.Context, item models.NewItem) (models.Item, error) {
	// the owner comes from the token, the rest from the form
	if err := v.validator.Validate(ctx, item, validators.FieldUserID); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrNoUserID, err)
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	return v.inner.CreateItem(ctx, item)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	err := v.validator.Validate(ctx, models.Item{ID: itemID, UserID: userID})
	switch {
	case errors.Is(err, validators.ErrInvalidItemID):
		return fmt.Errorf("%w: %w", ErrInvalidItemID, err)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrNoUserID, err)
	}

	return v.inner.DeleteItem(ctx, userID, itemID)
}

func (v *ItemValidationService) Wrap(wrapper ItemService) ItemService {
	v.inner = wrapper
	return v
}
