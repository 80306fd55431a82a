// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lucky-wheel/auth"
	"github.com/danielhkuo/lucky-wheel/cliparse"
	"github.com/danielhkuo/lucky-wheel/engine"
	"github.com/danielhkuo/lucky-wheel/handlers"
	"github.com/danielhkuo/lucky-wheel/orchestrator"
	"github.com/danielhkuo/lucky-wheel/router"
	"github.com/danielhkuo/lucky-wheel/sampler"
	"github.com/danielhkuo/lucky-wheel/store"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
		InstanceID:   "wheel-test",
		SpinDuration: 0.2,
		SpinTurns:    2,
		BaseSpeed:    1,
	}
}

// TestSeed is a small pool with one two-winner prize and one single
func TestSeed() store.SeedConfig {
	return store.SeedConfig{
		Names: []string{"Alice", "Bob", "Carol", "Dave", "Erin"},
		Prizes: []store.SeedPrize{
			{Title: "Grand", Count: 2},
			{Title: "Runner-up", Count: 1},
		},
	}
}

// AdminKey derives the valid admin key for the test configuration
func AdminKey(cfg cliparse.Config) string {
	return auth.GenerateAdminKey(cfg.InstanceID, cfg.AdminKeySalt)
}

// QuietLogger discards all output
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupTestStore opens a store on a throwaway sqlite file
func SetupTestStore(t *testing.T, seed store.SeedConfig) *store.Store {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	st, err := store.Open(db, "sqlite", seed, QuietLogger())
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	return st
}

// App is a fully wired application for handler and router tests. The
// engine is stepped manually instead of running its own goroutine.
type App struct {
	Store  *store.Store
	Engine *engine.Engine
	Orch   *orchestrator.Orchestrator
	Mux    *http.ServeMux
	Cfg    cliparse.Config
	Seed   store.SeedConfig
}

// SetupApp wires store, engine, orchestrator, and router together
func SetupApp(t *testing.T) *App {
	t.Helper()

	cfg := GetTestConfig()
	seed := TestSeed()
	st := SetupTestStore(t, seed)
	state := st.GetState()

	eng := engine.New(state.Candidates, QuietLogger())
	t.Cleanup(eng.Dispose)

	orch := orchestrator.New(st, eng, eng, handlers.RequestPrompter{}, sampler.Default,
		orchestrator.SpinSettings{
			Duration:  cfg.SpinDuration,
			Turns:     cfg.SpinTurns,
			BaseSpeed: cfg.BaseSpeed,
			Stop:      cfg.StopConfig(),
		}, QuietLogger())
	t.Cleanup(orch.Close)

	return &App{
		Store:  st,
		Engine: eng,
		Orch:   orch,
		Mux:    router.NewRouter(st, eng, orch, seed, cfg),
		Cfg:    cfg,
		Seed:   seed,
	}
}

// Advance steps the engine through d of animation time in frame-sized
// increments, firing due timers and state transitions along the way
func (a *App) Advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += engine.DefaultFramePeriod {
		a.Engine.Step(engine.DefaultFramePeriod)
	}
}

// FinishDraw advances far enough for any draw started with the test
// configuration to spin, lock every winner, and commit
func (a *App) FinishDraw() {
	a.Advance(30 * time.Second)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AdminRequest is MakeRequest with a valid X-Admin-Key header attached
func (a *App) AdminRequest(method, path string, body interface{}) *http.Request {
	return MakeRequest(method, path, body, map[string]string{
		"X-Admin-Key": AdminKey(a.Cfg),
	})
}

// Do routes a request through the mux and returns the recorder
func (a *App) Do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.Mux.ServeHTTP(w, req)
	return w
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
