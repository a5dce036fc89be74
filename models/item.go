// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Item is a single inventory record owned by a user.
// The owner is fixed at creation and checked on every mutation.
type Item struct {
	// ID is the database-assigned identifier of the item.
	ID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"userId"`

	// Name is the user-supplied item name.
	Name string `json:"name"`

	// Image is the public URL of the uploaded item image.
	Image string `json:"image"`

	// ImageKey is the object-storage key of the uploaded image.
	// It is kept server-side only and used to remove the object together
	// with the item.
	ImageKey string `json:"-"`

	// Category is a free-form category label.
	Category string `json:"category"`

	// Date is a free-form date string supplied by the client.
	Date string `json:"date"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// NewItem carries everything needed to create an item: the form fields,
// the owner taken from the verified token and the uploaded image.
// Image is nil when the request did not contain a file.
type NewItem struct {
	UserID   int64
	Name     string
	Category string
	Date     string
	Image    *ImageUpload
}

// ImageUpload describes an uploaded image file.
type ImageUpload struct {
	// Filename is the original client-side file name.
	Filename string

	// ContentType is the MIME type detected from the file content.
	ContentType string

	// Size is the content length in bytes.
	Size int64

	// Content streams the file bytes.
	Content io.Reader
}
