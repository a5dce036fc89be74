// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/edims/internal/logger"
	"github.com/MKhiriev/edims/models"
)

// itemRepository is the PostgreSQL-backed implementation of
// [ItemRepository]. Queries are built with squirrel and executed against the
// "items" table.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateItem inserts item and returns it with the database-assigned ID.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(ctx, item)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.CreateItem").Msg("failed to create query")
		return models.Item{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		log.Err(err).
			Str("func", "itemRepository.CreateItem").
			Int64("user_id", item.UserID).
			Msg("failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// ListItemsByUser returns all items of userID ordered by ID. An empty result
// is returned as an empty, non-nil slice.
func (r *itemRepository) ListItemsByUser(ctx context.Context, userID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsByUserQuery(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ListItemsByUser").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ListItemsByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for getting user items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemRepository.ListItemsByUser").
				Int64("user_id", userID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemRepository.ListItemsByUser").
			Int64("user_id", userID).
			Msg("error iterating item rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// FindItemByID returns the item with itemID regardless of its owner.
func (r *itemRepository) FindItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemByIDQuery(ctx, itemID)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.FindItemByID").Msg("failed to create query")
		return models.Item{}, err
	}

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Item{}, ErrItemNotFound
	case err != nil:
		log.Err(err).
			Str("func", "itemRepository.FindItemByID").
			Int64("item_id", itemID).
			Msg("failed to select item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// DeleteItem removes the item identified by itemID and owned by userID.
// Zero affected rows yields [ErrItemNotFound].
func (r *itemRepository) DeleteItem(ctx context.Context, itemID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(ctx, itemID, userID)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.DeleteItem").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteItem").
			Int64("item_id", itemID).
			Int64("user_id", userID).
			Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Image,
		&item.ImageKey,
		&item.Category,
		&item.Date,
	)
	return item, err
}
