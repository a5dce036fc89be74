// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/edims/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

// itemColumns lists the persisted item columns in scan order.
var itemColumns = []string{"id", "user_id", "name", "image", "image_key", "category", "date"}

// psql is the squirrel statement builder with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildInsertItemQuery(ctx context.Context, item models.Item) (string, []any, error) {
	query, args, err := psql.
		Insert(item.TableName()).
		Columns("user_id", "name", "image", "image_key", "category", "date").
		Values(item.UserID, item.Name, item.Image, item.ImageKey, item.Category, item.Date).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectItemsByUserQuery(ctx context.Context, userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectItemByIDQuery(ctx context.Context, itemID int64) (string, []any, error) {
	query, args, err := psql.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteItemQuery(ctx context.Context, itemID, userID int64) (string, []any, error) {
	query, args, err := psql.
		Delete(models.Item{}.TableName()).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
