// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lucky-wheel/middleware"
	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/orchestrator"
	"github.com/danielhkuo/lucky-wheel/store"
)

type FreeHandler struct {
	orch  *orchestrator.Orchestrator
	store *store.Store
}

func NewFreeHandler(orch *orchestrator.Orchestrator, st *store.Store) *FreeHandler {
	return &FreeHandler{orch: orch, store: st}
}

// Enter handles POST /free/enter
func (h *FreeHandler) Enter(w http.ResponseWriter, r *http.Request) {
	if err := h.orch.EnterFreeMode(); err != nil {
		slog.Error("enter free mode failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("free mode entered")
	middleware.JSONResponse(w, http.StatusOK, h.store.GetState())
}

// Leave handles POST /free/leave
// The free-draw history stays; only the snapshot is discarded
func (h *FreeHandler) Leave(w http.ResponseWriter, r *http.Request) {
	if err := h.orch.LeaveFreeMode(); err != nil {
		slog.Error("leave free mode failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("free mode left")
	middleware.JSONResponse(w, http.StatusOK, h.store.GetState())
}

// Draw handles POST /free/draw
// Draws exactly one winner with no prize attached
func (h *FreeHandler) Draw(w http.ResponseWriter, r *http.Request) {
	winner, err := h.orch.FreeDraw(r.Context())
	if err != nil {
		writeDrawError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusAccepted, models.FreeDrawResponse{
		Winner:  winner,
		History: h.store.GetState().FreeHistory,
	})
}

// Undo handles POST /free/undo
// Takes back the most recent free winner
func (h *FreeHandler) Undo(w http.ResponseWriter, r *http.Request) {
	if err := h.orch.UndoFree(); err != nil {
		writeDrawError(w, err)
		return
	}

	slog.Info("free draw undone")
	middleware.JSONResponse(w, http.StatusOK, h.store.GetState())
}

// Reset handles POST /free/reset
// Restores the pool snapshot taken on entry and clears the history
func (h *FreeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.orch.ResetFree(); err != nil {
		writeDrawError(w, err)
		return
	}

	slog.Info("free mode reset")
	middleware.JSONResponse(w, http.StatusOK, h.store.GetState())
}
