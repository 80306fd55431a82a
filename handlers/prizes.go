// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lucky-wheel/middleware"
	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/store"
)

type PrizeHandler struct {
	store *store.Store
}

func NewPrizeHandler(st *store.Store) *PrizeHandler {
	return &PrizeHandler{store: st}
}

// Create handles POST /prizes
func (h *PrizeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePrizeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	prize, err := h.store.AddPrize(req.Title, req.Count, req.Note)
	if err != nil {
		writePrizeError(w, err)
		return
	}

	slog.Info("prize created", "prize_id", prize.ID, "title", prize.Title, "count", prize.Count)
	middleware.JSONResponse(w, http.StatusCreated, models.CreatePrizeResponse{Prize: prize})
}

// Update handles PUT /prizes/{id}
func (h *PrizeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdatePrizeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.UpdatePrize(id, req.Title, req.Count, req.Note); err != nil {
		writePrizeError(w, err)
		return
	}

	slog.Info("prize updated", "prize_id", id, "title", req.Title)
	middleware.JSONResponse(w, http.StatusOK, h.store.GetState())
}

// Delete handles DELETE /prizes/{id}
// Drops the prize along with any committed results for it
func (h *PrizeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.DeletePrize(id); err != nil {
		writePrizeError(w, err)
		return
	}

	slog.Info("prize deleted", "prize_id", id)
	middleware.JSONResponse(w, http.StatusOK, h.store.GetState())
}

// Select handles POST /prizes/{id}/select
// Marks the prize the next draw runs for
func (h *PrizeHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.SelectPrize(id); err != nil {
		writePrizeError(w, err)
		return
	}

	slog.Info("prize selected", "prize_id", id)
	middleware.JSONResponse(w, http.StatusOK, h.store.GetState())
}

func writePrizeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrPrizeNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicateTitle):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrEmptyTitle), errors.Is(err, store.ErrInvalidPrizeCount):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("prize operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
