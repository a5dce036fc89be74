// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/edims/internal/utils"
	"github.com/MKhiriev/edims/models"
)

const statusOnline = "online"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, models.HealthResponse{
		Status:      statusOnline,
		Version:     buildInfo.BuildVersion(),
		BuildDate:   buildInfo.BuildDate(),
		BuildCommit: buildInfo.BuildCommit(),
	}, http.StatusOK)
}
