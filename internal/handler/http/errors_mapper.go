// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/edims/internal/app"
	"github.com/MKhiriev/edims/internal/logger"
	"github.com/MKhiriev/edims/internal/service"
	"github.com/MKhiriev/edims/internal/store"
	"github.com/MKhiriev/edims/internal/utils"
	"github.com/MKhiriev/edims/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched top to bottom; the first entry whose target is
// in the error chain wins.
var errorResponses = []errorResponse{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgNoTokenProvided},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgNoTokenProvided},
	{ErrEmptyToken, http.StatusUnauthorized, app.MsgNoTokenProvided},
	{service.ErrNoUserID, http.StatusUnauthorized, app.MsgNoTokenProvided},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgRegisterFieldsRequired},
	{service.ErrUserAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{service.ErrMissingCredentials, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword},

	{service.ErrMissingFields, http.StatusBadRequest, app.MsgAllFieldsRequired},
	{service.ErrInvalidItemID, http.StatusBadRequest, app.MsgInvalidItemID},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidForm, http.StatusBadRequest, app.MsgInvalidForm},
	{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge},

	{store.ErrItemNotFound, http.StatusNotFound, app.MsgItemNotFound},
	{service.ErrUnauthorizedDeletion, http.StatusUnauthorized, app.MsgUnauthorizedDeletion},
	{service.ErrUploadFailed, http.StatusInternalServerError, app.MsgUploadFailed},
}

// responseFromError returns the HTTP status and client-facing message for err.
// Unknown errors yield 500 with a generic message so that no internal detail
// leaks to the client.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request-scoped logger and writes the mapped
// {"message": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
