// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/edims/internal/config"
	"github.com/MKhiriev/edims/internal/logger"
	"github.com/MKhiriev/edims/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadSize caps the body of item creation requests.
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		maxUploadSize: cfg.MaxUploadSize,
		logger:        logger,
	}
}
