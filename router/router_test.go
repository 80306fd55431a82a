// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/lucky-wheel/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	app := testutil.SetupApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	app.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestRootEndpoint(t *testing.T) {
	app := testutil.SetupApp(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	app.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "lucky-wheel API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	app := testutil.SetupApp(t)

	// Every route should exist; unauthenticated mutations are rejected
	// with 401, not 404/405
	routes := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/state", http.StatusOK},
		{"GET", "/wheel/frame", http.StatusOK},
		{"POST", "/candidates", http.StatusUnauthorized},
		{"DELETE", "/candidates/Alice", http.StatusUnauthorized},
		{"POST", "/prizes", http.StatusUnauthorized},
		{"PUT", "/prizes/some-id", http.StatusUnauthorized},
		{"DELETE", "/prizes/some-id", http.StatusUnauthorized},
		{"POST", "/prizes/some-id/select", http.StatusUnauthorized},
		{"POST", "/draw", http.StatusUnauthorized},
		{"POST", "/reset", http.StatusUnauthorized},
		{"POST", "/free/enter", http.StatusUnauthorized},
		{"POST", "/free/draw", http.StatusUnauthorized},
		{"POST", "/free/undo", http.StatusUnauthorized},
		{"POST", "/free/reset", http.StatusUnauthorized},
		{"POST", "/free/leave", http.StatusUnauthorized},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			w := httptest.NewRecorder()
			app.Mux.ServeHTTP(w, req)

			if w.Code != rt.want {
				t.Errorf("%s %s: expected %d, got %d", rt.method, rt.path, rt.want, w.Code)
			}
		})
	}
}

func TestMethodMismatch(t *testing.T) {
	app := testutil.SetupApp(t)

	req := httptest.NewRequest("DELETE", "/state", nil)
	w := httptest.NewRecorder()
	app.Mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for wrong method, got %d", w.Code)
	}
}
