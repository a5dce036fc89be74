// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// EDIMS server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. Clients match on some of them,
// so the wording is part of the API.
package app

// Failure messages.
const (
	// MsgNoTokenProvided is returned when the bearer token is missing or the
	// "Authorization" header is malformed.
	MsgNoTokenProvided = "Access denied. No token provided."

	// MsgInvalidToken is returned when a bearer token fails verification:
	// bad signature, wrong issuer, or expired.
	MsgInvalidToken = "Invalid token."

	// MsgRegisterFieldsRequired is returned when a registration request
	// misses the username, email or password.
	MsgRegisterFieldsRequired = "Username, email and password are required"

	// MsgUserAlreadyExists is returned when the email is already registered.
	MsgUserAlreadyExists = "User already exists"

	// MsgInvalidEmailOrPassword is returned for an unknown email and for a
	// wrong password alike.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgAllFieldsRequired is returned when an item form misses a field or
	// the image file.
	MsgAllFieldsRequired = "All fields are required."

	// MsgInvalidItemID is returned when the item id path segment is not a
	// positive integer.
	MsgInvalidItemID = "Invalid item ID"

	// MsgInvalidJSON is returned when a JSON request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidForm is returned when a multipart body cannot be parsed.
	MsgInvalidForm = "Invalid multipart form"

	// MsgInvalidGzip is returned when a gzip-encoded body cannot be inflated.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgPayloadTooLarge is returned when the item form exceeds the
	// configured upload limit.
	MsgPayloadTooLarge = "Uploaded file is too large"

	// MsgItemNotFound is returned when the item to delete does not exist.
	MsgItemNotFound = "Item not found"

	// MsgUnauthorizedDeletion is returned when the item belongs to another user.
	MsgUnauthorizedDeletion = "Unauthorized deletion"

	// MsgUploadFailed is returned when the image could not be stored.
	MsgUploadFailed = "Error uploading to object storage"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)

// Success messages.
const (
	MsgRegisterSuccessful = "Register successful"
	MsgLoginSuccessful    = "Login successful"
	MsgItemsRetrieved     = "Item retrieve success"
	MsgItemCreated        = "Item successfully created"
	MsgItemDeleted        = "Item deleted successfully"
)
