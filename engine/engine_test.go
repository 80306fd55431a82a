// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/spinplan"
)

const frame = 16 * time.Millisecond

func testEngine() *Engine {
	return New([]string{"Alice", "Bob", "Carol", "Dave", "Eve"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func step(e *Engine, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		e.Step(frame)
	}
}

func TestSchedule_FiresInOrder(t *testing.T) {
	e := testEngine()

	var order []string
	e.Schedule(50*time.Millisecond, func() { order = append(order, "first") })
	e.Schedule(120*time.Millisecond, func() { order = append(order, "second") })

	step(e, 60*time.Millisecond)
	if len(order) != 1 || order[0] != "first" {
		t.Fatalf("after 60ms got %v, want [first]", order)
	}

	step(e, 100*time.Millisecond)
	if len(order) != 2 || order[1] != "second" {
		t.Fatalf("after 160ms got %v, want [first second]", order)
	}
}

func TestSchedule_Cancel(t *testing.T) {
	e := testEngine()

	fired := false
	cancel := e.Schedule(30*time.Millisecond, func() { fired = true })
	cancel()
	cancel() // idempotent

	step(e, 100*time.Millisecond)
	if fired {
		t.Fatal("canceled timer fired")
	}
}

func TestReset_DropsStaleContinuations(t *testing.T) {
	e := testEngine()

	fired := false
	e.Schedule(30*time.Millisecond, func() { fired = true })

	before := e.Epoch()
	e.Reset()
	if e.Epoch() == before {
		t.Fatal("reset must advance the epoch")
	}

	step(e, 100*time.Millisecond)
	if fired {
		t.Fatal("continuation from before reset fired")
	}

	// New continuations still work.
	ran := false
	e.Schedule(30*time.Millisecond, func() { ran = true })
	step(e, 100*time.Millisecond)
	if !ran {
		t.Fatal("post-reset continuation did not fire")
	}
}

func TestDispose_StopsStepping(t *testing.T) {
	e := testEngine()
	e.Dispose()

	if e.Step(frame) {
		t.Fatal("Step must report false after Dispose")
	}
}

func TestCallbacks_MayReenterEngine(t *testing.T) {
	e := testEngine()

	plan, err := spinplan.Plan(1.0, 1.0, 0)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	e.Spin(plan)
	step(e, 1200*time.Millisecond)

	cfg := models.StopConfig{
		ExtraRevs:     1,
		Duration:      200 * time.Millisecond,
		NextExtraRevs: 1,
		NextDuration:  100 * time.Millisecond,
		FinalPause:    50 * time.Millisecond,
	}

	done := false
	e.LockOntoSequence([]string{"Bob"},
		func(name string) {
			// Re-entrant call from a machine callback: must not deadlock.
			_ = e.Frame()
		},
		func() {
			e.ResetCandidates([]string{"Fresh"})
			done = true
		},
		cfg,
	)

	step(e, 2*time.Second)
	if !done {
		t.Fatal("lock sequence did not complete")
	}
}

func TestFrame_ReportsPhase(t *testing.T) {
	e := testEngine()

	if f := e.Frame(); f.Phase != "idle" {
		t.Fatalf("fresh engine phase %q, want idle", f.Phase)
	}

	plan, _ := spinplan.Plan(2.0, 2.0, 0)
	e.Spin(plan)
	if f := e.Frame(); f.Phase != "accelerating" {
		t.Fatalf("phase after Spin %q, want accelerating", f.Phase)
	}

	step(e, 600*time.Millisecond)
	f := e.Frame()
	if f.Phase != "constant" {
		t.Fatalf("phase after accel window %q, want constant", f.Phase)
	}
	if f.AngularVelocity <= 0 {
		t.Error("cruising wheel should report positive angular velocity")
	}
}
