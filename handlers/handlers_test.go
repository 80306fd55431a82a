// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/testutil"
)

func TestGetState(t *testing.T) {
	app := testutil.SetupApp(t)

	w := app.Do(testutil.MakeRequest("GET", "/state", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var state models.AppState
	testutil.AssertJSON(t, w, &state)

	if len(state.Candidates) != 5 {
		t.Errorf("Expected 5 seeded candidates, got %d", len(state.Candidates))
	}
	if len(state.Prizes) != 2 {
		t.Errorf("Expected 2 seeded prizes, got %d", len(state.Prizes))
	}
	if state.SelectedPrizeID == "" {
		t.Error("Expected a selected prize after seeding")
	}
}

func TestWheelFrame(t *testing.T) {
	app := testutil.SetupApp(t)

	w := app.Do(testutil.MakeRequest("GET", "/wheel/frame", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var frame models.WheelFrame
	testutil.AssertJSON(t, w, &frame)

	if frame.Phase != "idle" {
		t.Errorf("Expected idle phase before any draw, got %q", frame.Phase)
	}
	// Orientation starts at identity
	if frame.Orientation[0] != 1 {
		t.Errorf("Expected identity orientation, got %v", frame.Orientation)
	}
}

func TestCandidates_RequireAdminKey(t *testing.T) {
	app := testutil.SetupApp(t)

	body := models.AddCandidateRequest{Name: "Frank"}
	w := app.Do(testutil.MakeRequest("POST", "/candidates", body, nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestCandidates_AddAndRemove(t *testing.T) {
	app := testutil.SetupApp(t)

	w := app.Do(app.AdminRequest("POST", "/candidates", models.AddCandidateRequest{Name: "Frank"}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CandidatesResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Candidates) != 6 {
		t.Errorf("Expected 6 candidates after add, got %d", len(resp.Candidates))
	}

	// Duplicate add conflicts
	w = app.Do(app.AdminRequest("POST", "/candidates", models.AddCandidateRequest{Name: "Frank"}))
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Remove
	w = app.Do(app.AdminRequest("DELETE", "/candidates/Frank", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Removing again is a 404
	w = app.Do(app.AdminRequest("DELETE", "/candidates/Frank", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestPrizes_CRUDAndSelect(t *testing.T) {
	app := testutil.SetupApp(t)

	// Create
	w := app.Do(app.AdminRequest("POST", "/prizes", models.CreatePrizeRequest{
		Title: "Consolation", Count: 3, Note: "small stuff",
	}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreatePrizeResponse
	testutil.AssertJSON(t, w, &created)
	if created.Prize.ID == "" || created.Prize.Title != "Consolation" {
		t.Fatalf("Unexpected created prize: %+v", created.Prize)
	}

	// Duplicate title conflicts
	w = app.Do(app.AdminRequest("POST", "/prizes", models.CreatePrizeRequest{
		Title: "Consolation", Count: 1,
	}))
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Invalid count
	w = app.Do(app.AdminRequest("POST", "/prizes", models.CreatePrizeRequest{
		Title: "Zero", Count: 0,
	}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Update
	w = app.Do(app.AdminRequest("PUT", "/prizes/"+created.Prize.ID, models.UpdatePrizeRequest{
		Title: "Consolation", Count: 4,
	}))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Select
	w = app.Do(app.AdminRequest("POST", "/prizes/"+created.Prize.ID+"/select", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if got := app.Store.GetState().SelectedPrizeID; got != created.Prize.ID {
		t.Errorf("Expected selection %s, got %s", created.Prize.ID, got)
	}

	// Delete
	w = app.Do(app.AdminRequest("DELETE", "/prizes/"+created.Prize.ID, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Unknown ID is a 404
	w = app.Do(app.AdminRequest("DELETE", "/prizes/nope", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestStartDraw_HTTPFlow(t *testing.T) {
	app := testutil.SetupApp(t)
	prizeID := app.Store.GetState().SelectedPrizeID

	w := app.Do(app.AdminRequest("POST", "/draw", nil))
	testutil.AssertStatus(t, w, http.StatusAccepted)

	var resp models.StartDrawResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.DrawID == "" {
		t.Error("Expected a draw ID")
	}
	if resp.PrizeID != prizeID {
		t.Errorf("Expected prize %s, got %s", prizeID, resp.PrizeID)
	}

	// A second draw while one is in flight conflicts
	w = app.Do(app.AdminRequest("POST", "/draw", nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Pool edits are refused during a draw
	w = app.Do(app.AdminRequest("POST", "/candidates", models.AddCandidateRequest{Name: "Frank"}))
	testutil.AssertStatus(t, w, http.StatusConflict)

	app.FinishDraw()

	state := app.Store.GetState()
	if len(state.Results[prizeID]) != 2 {
		t.Fatalf("Expected 2 committed winners, got %v", state.Results[prizeID])
	}
	if len(state.Candidates) != 3 {
		t.Errorf("Expected 3 names left in pool, got %d", len(state.Candidates))
	}
	if state.Drawing {
		t.Error("Drawing flag still set after commit")
	}
}

func TestStartDraw_OverwriteNeedsConsent(t *testing.T) {
	app := testutil.SetupApp(t)

	w := app.Do(app.AdminRequest("POST", "/draw", nil))
	testutil.AssertStatus(t, w, http.StatusAccepted)
	app.FinishDraw()

	// Re-draw without consent is refused
	w = app.Do(app.AdminRequest("POST", "/draw", nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	// With confirm_overwrite the draw runs again
	w = app.Do(app.AdminRequest("POST", "/draw", models.StartDrawRequest{ConfirmOverwrite: true}))
	testutil.AssertStatus(t, w, http.StatusAccepted)
	app.FinishDraw()

	prizeID := app.Store.GetState().SelectedPrizeID
	state := app.Store.GetState()
	if len(state.Results[prizeID]) != 2 {
		t.Errorf("Expected 2 winners after re-draw, got %v", state.Results[prizeID])
	}
	if len(state.Candidates)+len(state.Results[prizeID]) != 5 {
		t.Errorf("Re-draw lost names: pool %v results %v", state.Candidates, state.Results[prizeID])
	}
}

func TestFreeMode_HTTPFlow(t *testing.T) {
	app := testutil.SetupApp(t)

	// Draw outside free mode is a 400
	w := app.Do(app.AdminRequest("POST", "/free/draw", nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = app.Do(app.AdminRequest("POST", "/free/enter", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = app.Do(app.AdminRequest("POST", "/free/draw", nil))
	testutil.AssertStatus(t, w, http.StatusAccepted)

	var resp models.FreeDrawResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Winner == "" {
		t.Fatal("Expected a free winner")
	}
	app.FinishDraw()

	state := app.Store.GetState()
	if len(state.FreeHistory) != 1 || state.FreeHistory[0] != resp.Winner {
		t.Errorf("Expected history [%s], got %v", resp.Winner, state.FreeHistory)
	}
	if len(state.Candidates) != 4 {
		t.Errorf("Expected pool of 4 after free draw, got %d", len(state.Candidates))
	}

	// Undo puts the winner back
	w = app.Do(app.AdminRequest("POST", "/free/undo", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if got := app.Store.GetState(); len(got.Candidates) != 5 || len(got.FreeHistory) != 0 {
		t.Errorf("Undo left pool %v history %v", got.Candidates, got.FreeHistory)
	}

	// Undo with empty history is a 400
	w = app.Do(app.AdminRequest("POST", "/free/undo", nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Reset restores the entry snapshot
	w = app.Do(app.AdminRequest("POST", "/free/reset", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = app.Do(app.AdminRequest("POST", "/free/leave", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if app.Store.GetState().FreeMode {
		t.Error("Still in free mode after leave")
	}
}

func TestGlobalReset(t *testing.T) {
	app := testutil.SetupApp(t)
	prizeID := app.Store.GetState().SelectedPrizeID

	w := app.Do(app.AdminRequest("POST", "/draw", nil))
	testutil.AssertStatus(t, w, http.StatusAccepted)
	app.FinishDraw()

	if len(app.Store.GetState().Results[prizeID]) == 0 {
		t.Fatal("Draw did not commit; reset test needs results to clear")
	}

	w = app.Do(app.AdminRequest("POST", "/reset", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	state := app.Store.GetState()
	if len(state.Candidates) != 5 {
		t.Errorf("Expected reseeded pool of 5, got %d", len(state.Candidates))
	}
	if len(state.Results) != 0 {
		t.Errorf("Expected empty results after reset, got %v", state.Results)
	}
	if state.Drawing || state.FreeMode {
		t.Error("Expected clean flags after reset")
	}
}

func TestReset_DuringDraw_AbandonsIt(t *testing.T) {
	app := testutil.SetupApp(t)
	prizeID := app.Store.GetState().SelectedPrizeID

	w := app.Do(app.AdminRequest("POST", "/draw", nil))
	testutil.AssertStatus(t, w, http.StatusAccepted)

	// Reset mid-flight, then let the abandoned timeline play out
	w = app.Do(app.AdminRequest("POST", "/reset", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	app.FinishDraw()

	state := app.Store.GetState()
	if len(state.Results[prizeID]) != 0 {
		t.Errorf("Abandoned draw still committed: %v", state.Results[prizeID])
	}
	if len(state.Candidates) != 5 {
		t.Errorf("Expected full pool after reset, got %d", len(state.Candidates))
	}
}
