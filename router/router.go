// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/lucky-wheel/cliparse"
	"github.com/danielhkuo/lucky-wheel/engine"
	"github.com/danielhkuo/lucky-wheel/handlers"
	"github.com/danielhkuo/lucky-wheel/middleware"
	"github.com/danielhkuo/lucky-wheel/orchestrator"
	"github.com/danielhkuo/lucky-wheel/store"
)

func NewRouter(st *store.Store, eng *engine.Engine, orch *orchestrator.Orchestrator, seed store.SeedConfig, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	stateHandler := handlers.NewStateHandler(st, eng)
	candidateHandler := handlers.NewCandidateHandler(st, eng)
	prizeHandler := handlers.NewPrizeHandler(st)
	drawHandler := handlers.NewDrawHandler(orch, st, eng, seed)
	freeHandler := handlers.NewFreeHandler(orch, st)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(
			middleware.RequireAdminKey(cfg.InstanceID, cfg.AdminKeySalt, h))
	}

	// Health check
	mux.HandleFunc("GET /health", stateHandler.Health)

	// Read-only views (public)
	mux.HandleFunc("GET /state", middleware.WithLogging(stateHandler.GetState))
	mux.HandleFunc("GET /wheel/frame", stateHandler.Frame)

	// Pool management (admin operations)
	mux.HandleFunc("POST /candidates", admin(candidateHandler.Add))
	mux.HandleFunc("DELETE /candidates/{name}", admin(candidateHandler.Remove))

	// Prize management (admin operations)
	mux.HandleFunc("POST /prizes", admin(prizeHandler.Create))
	mux.HandleFunc("PUT /prizes/{id}", admin(prizeHandler.Update))
	mux.HandleFunc("DELETE /prizes/{id}", admin(prizeHandler.Delete))
	mux.HandleFunc("POST /prizes/{id}/select", admin(prizeHandler.Select))

	// Drawing
	mux.HandleFunc("POST /draw", admin(drawHandler.StartDraw))
	mux.HandleFunc("POST /reset", admin(drawHandler.Reset))

	// Free mode
	mux.HandleFunc("POST /free/enter", admin(freeHandler.Enter))
	mux.HandleFunc("POST /free/draw", admin(freeHandler.Draw))
	mux.HandleFunc("POST /free/undo", admin(freeHandler.Undo))
	mux.HandleFunc("POST /free/reset", admin(freeHandler.Reset))
	mux.HandleFunc("POST /free/leave", admin(freeHandler.Leave))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lucky-wheel API v1"))
	})

	return mux
}
