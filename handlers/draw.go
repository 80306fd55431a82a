// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lucky-wheel/engine"
	"github.com/danielhkuo/lucky-wheel/middleware"
	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/orchestrator"
	"github.com/danielhkuo/lucky-wheel/store"
)

// consentKey carries the request's overwrite decision to the prompter.
type consentKey struct{}

// WithOverwriteConsent records whether the caller pre-approved
// discarding an already-awarded prize's winners.
func WithOverwriteConsent(ctx context.Context, ok bool) context.Context {
	return context.WithValue(ctx, consentKey{}, ok)
}

// RequestPrompter answers the orchestrator's prompts from request data.
// Confirm resolves from the consent recorded on the context; a request
// that did not pre-approve gets a decline, which surfaces to the client
// as a 409 asking it to retry with confirm_overwrite set.
type RequestPrompter struct{}

func (RequestPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	ok, _ := ctx.Value(consentKey{}).(bool)
	return ok, nil
}

func (RequestPrompter) Alert(ctx context.Context, message string) error {
	slog.Warn("draw alert", "message", message)
	return nil
}

type DrawHandler struct {
	orch   *orchestrator.Orchestrator
	store  *store.Store
	engine *engine.Engine
	seed   store.SeedConfig
}

func NewDrawHandler(orch *orchestrator.Orchestrator, st *store.Store, eng *engine.Engine, seed store.SeedConfig) *DrawHandler {
	return &DrawHandler{orch: orch, store: st, engine: eng, seed: seed}
}

// StartDraw handles POST /draw
// Kicks off a draw for the selected prize; the body is optional and may
// carry confirm_overwrite for prizes that already have winners
func (h *DrawHandler) StartDraw(w http.ResponseWriter, r *http.Request) {
	var req models.StartDrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ctx := WithOverwriteConsent(r.Context(), req.ConfirmOverwrite)
	drawID, err := h.orch.StartDraw(ctx)
	if err != nil {
		writeDrawError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusAccepted, models.StartDrawResponse{
		DrawID:  drawID,
		PrizeID: h.store.GetState().SelectedPrizeID,
	})
}

// Reset handles POST /reset
// Abandons any in-flight draw and restores the seeded state
func (h *DrawHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.orch.Reset()
	h.engine.Reset()

	if err := h.store.ResetToSeed(h.seed); err != nil {
		slog.Error("reset failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	state := h.store.GetState()
	h.engine.Initialize(state.Candidates)

	slog.Info("state reset", "candidates", len(state.Candidates), "prizes", len(state.Prizes))
	middleware.JSONResponse(w, http.StatusOK, state)
}

func writeDrawError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orchestrator.ErrDrawInProgress):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, orchestrator.ErrOverwriteDeclined):
		middleware.ErrorResponse(w, http.StatusConflict,
			"prize already has winners; retry with confirm_overwrite set")
	case errors.Is(err, orchestrator.ErrInsufficientCandidates):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, orchestrator.ErrNoPrizeSelected),
		errors.Is(err, orchestrator.ErrNotInFreeMode),
		errors.Is(err, orchestrator.ErrFreeHistoryEmpty):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("draw failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Draw failed")
	}
}
