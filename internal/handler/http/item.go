// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/MKhiriev/edims/internal/app"
	"github.com/MKhiriev/edims/internal/logger"
	"github.com/MKhiriev/edims/internal/service"
	"github.com/MKhiriev/edims/internal/utils"
	"github.com/MKhiriev/edims/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of a multipart body kept in memory;
// the rest spills to temporary files.
const multipartMemory = 8 << 20

const (
	formFieldName     = "name"
	formFieldCategory = "category"
	formFieldDate     = "date"
	formFieldImage    = "image"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoUserID)
		return
	}

	items, err := h.services.ItemService.ListItems(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, models.ItemsResponse{
		Message: app.MsgItemsRetrieved,
		Items:   items,
	}, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoUserID)
		return
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, r, formError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	newItem := models.NewItem{
		UserID:   user.ID,
		Name:     r.PostFormValue(formFieldName),
		Category: r.PostFormValue(formFieldCategory),
		Date:     r.PostFormValue(formFieldDate),
	}

	file, fileHeader, err := r.FormFile(formFieldImage)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// left nil, rejected as a missing field
	case err != nil:
		writeError(w, r, formError(err))
		return
	default:
		defer file.Close()

		image, err := imageUpload(file, fileHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}
		newItem.Image = image
	}

	item, err := h.services.ItemService.CreateItem(ctx, newItem)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("item_id", item.ID).Msg("item created")

	utils.WriteJSON(w, models.ItemResponse{
		Message: app.MsgItemCreated,
		Item:    item,
	}, http.StatusCreated)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoUserID)
		return
	}

	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidItemID, err))
		return
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), user.ID, itemID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgItemDeleted}, http.StatusOK)
}

// imageUpload detects the content type of file from its leading bytes and
// rewinds it for the upload.
func imageUpload(file multipart.File, header *multipart.FileHeader) (*models.ImageUpload, error) {
	mime, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	return &models.ImageUpload{
		Filename:    header.Filename,
		ContentType: mime.String(),
		Size:        header.Size,
		Content:     file,
	}, nil
}

func formError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrPayloadTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidForm, err)
}
