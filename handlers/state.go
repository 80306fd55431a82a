// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/lucky-wheel/engine"
	"github.com/danielhkuo/lucky-wheel/middleware"
	"github.com/danielhkuo/lucky-wheel/store"
)

type StateHandler struct {
	store  *store.Store
	engine *engine.Engine
}

func NewStateHandler(st *store.Store, eng *engine.Engine) *StateHandler {
	return &StateHandler{store: st, engine: eng}
}

// Health handles GET /health
func (h *StateHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetState handles GET /state
// Returns the full application state snapshot
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.GetState())
}

// Frame handles GET /wheel/frame
// Returns the current animation frame: orientation, velocity, phase,
// and the highlighted winner if one is locked
func (h *StateHandler) Frame(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.engine.Frame())
}
