// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/MKhiriev/edims/internal/logger"
	"github.com/MKhiriev/edims/internal/store"
	"github.com/MKhiriev/edims/models"
)

const defaultImageName = "image"

type itemService struct {
	itemRepository store.ItemRepository
	objectStorage  store.ObjectStorage

	now    func() time.Time
	logger *logger.Logger
}

// NewItemService constructs an ItemService that keeps item rows in
// itemRepository and item images in objectStorage.
func NewItemService(itemRepository store.ItemRepository, objectStorage store.ObjectStorage, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		objectStorage:  objectStorage,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *itemService) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	items, err := s.itemRepository.ListItemsByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing items failed")
		return nil, fmt.Errorf("listing items failed: %w", err)
	}

	return items, nil
}

// CreateItem uploads the image first and inserts the row afterwards.
// If the insert fails the uploaded object is removed again; a failure of
// that removal is only logged.
func (s *itemService) CreateItem(ctx context.Context, newItem models.NewItem) (models.Item, error) {
	log := logger.FromContext(ctx)

	key := objectKey(newItem.UserID, s.now(), newItem.Image.Filename)
	imageURL, err := s.objectStorage.Upload(ctx, key, newItem.Image.Content, newItem.Image.Size, newItem.Image.ContentType)
	if err != nil {
		log.Err(err).Str("key", key).Msg("image upload failed")
		return models.Item{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	created, err := s.itemRepository.CreateItem(ctx, models.Item{
		UserID:   newItem.UserID,
		Name:     newItem.Name,
		Image:    imageURL,
		ImageKey: key,
		Category: newItem.Category,
		Date:     newItem.Date,
	})
	if err != nil {
		log.Err(err).Str("key", key).Msg("item insert failed, removing uploaded image")
		if delErr := s.objectStorage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			log.Err(delErr).Str("key", key).Msg("orphaned image was not removed")
		}
		return models.Item{}, fmt.Errorf("item insert failed: %w", err)
	}

	log.Info().Int64("item_id", created.ID).Msg("item created")
	return created, nil
}

// DeleteItem removes the item owned by userID together with its image.
//
// Returns store.ErrItemNotFound if the item does not exist and
// ErrUnauthorizedDeletion if it belongs to another user.
func (s *itemService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.FindItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, store.ErrItemNotFound) {
			log.Err(err).Int64("item_id", itemID).Msg("item lookup failed")
		}
		return fmt.Errorf("item lookup failed: %w", err)
	}

	if item.UserID != userID {
		log.Warn().Int64("item_id", itemID).Int64("owner_id", item.UserID).Msg("deletion of foreign item")
		return ErrUnauthorizedDeletion
	}

	if err = s.itemRepository.DeleteItem(ctx, itemID, userID); err != nil {
		if !errors.Is(err, store.ErrItemNotFound) {
			log.Err(err).Int64("item_id", itemID).Msg("item deletion failed")
		}
		return fmt.Errorf("item deletion failed: %w", err)
	}

	if item.ImageKey != "" {
		if err = s.objectStorage.Delete(context.WithoutCancel(ctx), item.ImageKey); err != nil {
			log.Err(err).Str("key", item.ImageKey).Msg("image of deleted item was not removed")
		}
	}

	return nil
}

// objectKey builds "<userID>/items/<unixMillis>-<basename>".
func objectKey(userID int64, now time.Time, filename string) string {
	name := path.Base(filename)
	if name == "." || name == "/" {
		name = defaultImageName
	}

	return fmt.Sprintf("%d/items/%d-%s", userID, now.UnixMilli(), name)
}
