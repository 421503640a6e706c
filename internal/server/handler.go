// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package server

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/dbtbridge/dbtbridge/internal/logger"
	"github.com/dbtbridge/dbtbridge/models"
)

// Handler serves the introspection routes over the definitions bundle built
// at startup. The bundle is read-only once assembled, so no locking is
// needed.
type Handler struct {
	component string
	defs      models.Definitions

	logger *logger.Logger
}

func NewHandler(component string, defs models.Definitions, log *logger.Logger) *Handler {
	log.Info().Msg("http handler created")
	return &Handler{
		component: component,
		defs:      defs,
		logger:    log,
	}
}

// defsSummary is the wire shape of the definitions listing. Function-valued
// fields never cross the wire; resources are reported by name only.
type defsSummary struct {
	Component   string   `json:"component"`
	Assets      int      `json:"assets"`
	AssetGroups []string `json:"asset_groups"`
	Sensors     []string `json:"sensors"`
	Resources   []string `json:"resources"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, map[string]string{"status": "ok"})
}

func (h *Handler) getDefs(w http.ResponseWriter, r *http.Request) {
	summary := defsSummary{
		Component:   h.component,
		Assets:      len(h.defs.Assets),
		AssetGroups: make([]string, 0, len(h.defs.AssetGroups)),
		Sensors:     make([]string, 0, len(h.defs.Sensors)),
		Resources:   make([]string, 0, len(h.defs.Resources)),
	}
	for _, group := range h.defs.AssetGroups {
		summary.AssetGroups = append(summary.AssetGroups, group.Name)
	}
	for _, sensor := range h.defs.Sensors {
		summary.Sensors = append(summary.Sensors, sensor.Name)
	}
	for name := range h.defs.Resources {
		summary.Resources = append(summary.Resources, name)
	}
	sort.Strings(summary.Resources)

	h.writeJSON(w, r, summary)
}

func (h *Handler) getAssets(w http.ResponseWriter, r *http.Request) {
	assets := h.defs.Assets
	if assets == nil {
		assets = []models.AssetSpec{}
	}

	h.writeJSON(w, r, assets)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("encode response")
	}
}
