// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every error response and of responses
// that carry no payload besides a status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by successful registration and login.
type AuthResponse struct {
	Message string     `json:"message"`
	User    UserPublic `json:"user"`
	Token   string     `json:"token"`
}

// ItemsResponse is returned by the item listing endpoint.
// Items is never nil so that an empty listing serializes as [].
type ItemsResponse struct {
	Message string `json:"message"`
	Items   []Item `json:"items"`
}

// ItemResponse is returned after an item was created.
type ItemResponse struct {
	Message string `json:"message"`
	Item    Item   `json:"item"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
