// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/edims/internal/config"
	"github.com/MKhiriev/edims/internal/logger"
	"github.com/MKhiriev/edims/internal/store"
	"github.com/MKhiriev/edims/models"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	authService := NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg, logger))
	itemService := NewItemValidationService().Wrap(NewItemService(storages.ItemRepository, storages.ObjectStorage, logger))

	return &Services{
		AuthService:    authService,
		ItemService:    itemService,
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
