// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/rotor"
)

// DefaultFramePeriod approximates a 60 Hz display. The loop always
// integrates with the measured elapsed time, so a late tick loses no
// motion.
const DefaultFramePeriod = 16 * time.Millisecond

// Engine drives the orientation machine from a single frame loop and
// owns an engine-time timeline for deferred continuations. It implements
// both the orchestrator's Visualizer and Scheduler dependencies.
//
// All animation state is touched only while holding mu; callbacks are
// collected under the lock and invoked after it is released, so a
// callback may freely call back into the engine.
type Engine struct {
	mu       sync.Mutex
	machine  *rotor.Machine
	now      time.Duration // accumulated engine time
	timeline timeline
	epoch    uint64
	disposed bool

	// Callbacks queued by the machine during Advance, drained by Step.
	fired []func()

	framePeriod time.Duration
	logger      *slog.Logger
}

// New returns a stopped engine addressing the given candidates. Call Run
// to start the frame loop, or drive Step directly in tests.
func New(candidates []string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		machine:     rotor.New(candidates, logger),
		framePeriod: DefaultFramePeriod,
		logger:      logger,
	}
}

// Run ticks the frame loop until ctx is canceled or Dispose is called.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.framePeriod)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if !e.Step(dt) {
				return
			}
		}
	}
}

// Step advances engine time by dt: due timers fire first, then the
// machine integrates. Returns false once the engine is disposed.
func (e *Engine) Step(dt time.Duration) bool {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return false
	}
	e.now += dt
	callbacks := e.timeline.collectDue(e.now, e.epoch)
	e.machine.Advance(dt)
	callbacks = append(callbacks, e.fired...)
	e.fired = nil
	e.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	return true
}

// Schedule registers fn to run on the frame loop after d. The returned
// cancel is idempotent. A Reset or Dispose between scheduling and firing
// also drops the callback via the epoch check.
func (e *Engine) Schedule(d time.Duration, fn func()) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	tm := e.timeline.schedule(e.now+d, e.epoch, fn)
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		tm.canceled = true
	}
}

// Epoch returns the current continuation generation.
func (e *Engine) Epoch() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.epoch
}

// Reset invalidates every outstanding continuation. In-flight draws can
// no longer commit against the new state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.epoch++
	e.timeline.clear()
	e.fired = nil
	e.machine.Halt()
}

// Frame samples the animation for renderers.
func (e *Engine) Frame() models.WheelFrame {
	e.mu.Lock()
	defer e.mu.Unlock()
	q := e.machine.Orientation()
	return models.WheelFrame{
		Orientation:     [4]float64{q.W, q.X, q.Y, q.Z},
		AngularVelocity: e.machine.AngularVelocity(),
		Phase:           e.machine.State().String(),
		Highlighted:     e.machine.Highlighted(),
	}
}

// Initialize rebuilds the wheel around a fresh candidate set.
func (e *Engine) Initialize(candidates []string) {
	e.ResetCandidates(candidates)
}

// Spin starts the free-spin phase of a draw.
func (e *Engine) Spin(plan models.SpinPlan) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.StartSpin(plan)
}

// LockOntoSequence decelerates the wheel onto each winner in order.
// Callbacks are delivered from the frame loop, outside the engine lock.
func (e *Engine) LockOntoSequence(winners []string, onEachWinner func(string), onAllDone func(), cfg models.StopConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.LockOntoSequence(winners, cfg,
		func(name string) {
			if onEachWinner != nil {
				e.fired = append(e.fired, func() { onEachWinner(name) })
			}
		},
		func() {
			if onAllDone != nil {
				e.fired = append(e.fired, onAllDone)
			}
		},
	)
}

// ResetCandidates re-addresses the slot map without disturbing the pose.
func (e *Engine) ResetCandidates(candidates []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.ResetCandidates(candidates)
}

// Dispose stops the loop permanently and drops all pending work.
func (e *Engine) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disposed = true
	e.epoch++
	e.timeline.clear()
	e.fired = nil
}
