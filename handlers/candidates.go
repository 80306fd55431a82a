// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/lucky-wheel/engine"
	"github.com/danielhkuo/lucky-wheel/middleware"
	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/store"
)

type CandidateHandler struct {
	store  *store.Store
	engine *engine.Engine
}

func NewCandidateHandler(st *store.Store, eng *engine.Engine) *CandidateHandler {
	return &CandidateHandler{store: st, engine: eng}
}

// Add handles POST /candidates
// Appends a name to the pool and re-addresses the wheel
func (h *CandidateHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if h.store.GetState().Drawing {
		middleware.ErrorResponse(w, http.StatusConflict, "Cannot edit the pool during a draw")
		return
	}

	if err := h.store.AddCandidate(req.Name); err != nil {
		if errors.Is(err, store.ErrCandidateExists) {
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	state := h.store.GetState()
	h.engine.ResetCandidates(state.Candidates)

	slog.Info("candidate added", "name", strings.TrimSpace(req.Name), "pool", len(state.Candidates))
	middleware.JSONResponse(w, http.StatusCreated, models.CandidatesResponse{
		Candidates: state.Candidates,
	})
}

// Remove handles DELETE /candidates/{name}
func (h *CandidateHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if h.store.GetState().Drawing {
		middleware.ErrorResponse(w, http.StatusConflict, "Cannot edit the pool during a draw")
		return
	}

	if err := h.store.RemoveCandidate(name); err != nil {
		if errors.Is(err, store.ErrCandidateNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	state := h.store.GetState()
	h.engine.ResetCandidates(state.Candidates)

	slog.Info("candidate removed", "name", name, "pool", len(state.Candidates))
	middleware.JSONResponse(w, http.StatusOK, models.CandidatesResponse{
		Candidates: state.Candidates,
	})
}
