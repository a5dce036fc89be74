// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/edims/models"
)

// Field name constants used to restrict [ItemValidator] to a subset of
// fields.
const (
	// FieldUserID targets the owner identifier taken from the verified token.
	FieldUserID = "user_id"

	// FieldItemID targets the identifier of an existing item.
	FieldItemID = "item_id"

	// FieldName targets the item name.
	FieldName = "name"

	// FieldCategory targets the item category label.
	FieldCategory = "category"

	// FieldDate targets the client-supplied date string.
	FieldDate = "date"

	// FieldImage targets the uploaded image file.
	FieldImage = "image"
)

// ItemValidator implements the Validator interface for item models.
// It supports both value and pointer forms and optional field-level scoping.
type ItemValidator struct {
}

// NewItemValidator constructs a new ItemValidator
// and returns it as the Validator interface.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
//
// Supported types:
//   - models.NewItem / *models.NewItem
//   - models.Item / *models.Item
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewItem:
		return v.validateNewItem(ctx, value, fields...)
	case *models.NewItem:
		return v.validateNewItem(ctx, *value, fields...)

	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNewItem validates an item creation request.
//
// Default validated fields: UserID, Name, Category, Date, Image.
// An image with a nil content stream counts as missing.
func (v *ItemValidator) validateNewItem(ctx context.Context, item models.NewItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldCategory, FieldDate, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if item.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if item.Name == "" {
				return ErrEmptyName
			}
		case FieldCategory:
			if item.Category == "" {
				return ErrEmptyCategory
			}
		case FieldDate:
			if item.Date == "" {
				return ErrEmptyDate
			}
		case FieldImage:
			if item.Image == nil || item.Image.Content == nil {
				return ErrMissingImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItem validates the identifying fields of an existing item.
//
// Default validated fields: ItemID, UserID.
func (v *ItemValidator) validateItem(ctx context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ID <= 0 {
				return ErrInvalidItemID
			}
		case FieldUserID:
			if item.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
