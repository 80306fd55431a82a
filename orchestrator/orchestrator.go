// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/lucky-wheel/auth"
	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/sampler"
	"github.com/danielhkuo/lucky-wheel/spinplan"
)

var (
	ErrDrawInProgress         = errors.New("a draw is already in progress")
	ErrNoPrizeSelected        = errors.New("no prize selected")
	ErrOverwriteDeclined      = errors.New("overwrite declined")
	ErrInsufficientCandidates = sampler.ErrInsufficientCandidates
	ErrNotInFreeMode          = errors.New("not in free mode")
	ErrFreeHistoryEmpty       = errors.New("free draw history is empty")
)

// revealFraction of the configured spin duration passes before the
// winners start revealing; the wheel cruises for suspense until then.
const revealFraction = 0.6

// Visualizer is the animation collaborator. The engine package provides
// the production implementation.
type Visualizer interface {
	Initialize(candidates []string)
	Spin(plan models.SpinPlan)
	LockOntoSequence(winners []string, onEachWinner func(string), onAllDone func(), cfg models.StopConfig)
	ResetCandidates(candidates []string)
	Dispose()
}

// Scheduler defers continuations. The production implementation runs on
// engine time and drops callbacks scheduled before a reset.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// Prompter surfaces the two user decisions the draw flow can need. Both
// calls block until the user answers.
type Prompter interface {
	Confirm(ctx context.Context, message string) (bool, error)
	Alert(ctx context.Context, message string) error
}

// Store is the persisted-state collaborator.
type Store interface {
	GetState() models.AppState
	Update(mutate func(*models.AppState)) error
}

// Sampler selects winners.
type Sampler interface {
	Draw(candidates []string, count int) (models.DrawResult, error)
}

// SpinSettings derives each draw's animation from configuration.
type SpinSettings struct {
	Duration  float64 // seconds of free spin
	Turns     float64
	BaseSpeed float64 // rad/s floor
	Stop      models.StopConfig
}

// Orchestrator coordinates sampling, animation timing, and commits.
// Winners are sampled the instant a draw starts and only revealed by the
// animation, so fairness never depends on frame timing; results become
// durable only after the visualizer reports every target reached.
type Orchestrator struct {
	store      Store
	visualizer Visualizer
	scheduler  Scheduler
	prompter   Prompter
	sampler    Sampler
	settings   SpinSettings
	logger     *slog.Logger

	mu        sync.Mutex
	isDrawing bool
	epoch     uint64
}

// New wires an orchestrator. All collaborators are required except
// logger, which defaults to slog.Default().
func New(store Store, visualizer Visualizer, scheduler Scheduler, prompter Prompter, smp Sampler, settings SpinSettings, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	settings.Stop = settings.Stop.Normalize()
	return &Orchestrator{
		store:      store,
		visualizer: visualizer,
		scheduler:  scheduler,
		prompter:   prompter,
		sampler:    smp,
		settings:   settings,
		logger:     logger,
	}
}

// StartDraw runs one prize draw end to end. A second call while a draw
// is in flight returns ErrDrawInProgress without sampling or committing
// anything. All validation failures abort before any state mutation and
// before any animation request; once the spin starts, the flow always
// runs to commit.
func (o *Orchestrator) StartDraw(ctx context.Context) (drawID string, err error) {
	if !o.begin() {
		return "", ErrDrawInProgress
	}
	defer func() {
		if err != nil {
			o.end()
		}
	}()

	state := o.store.GetState()
	prize, ok := state.PrizeByID(state.SelectedPrizeID)
	if !ok {
		return "", ErrNoPrizeSelected
	}

	// Re-drawing an awarded prize needs explicit confirmation, then the
	// previous winners rejoin the pool before anything else happens.
	if previous := state.Results[prize.ID]; len(previous) > 0 {
		confirmed, perr := o.prompter.Confirm(ctx,
			fmt.Sprintf("%q already has winners. Re-draw and discard them?", prize.Title))
		if perr != nil {
			return "", fmt.Errorf("confirm overwrite: %w", perr)
		}
		if !confirmed {
			return "", ErrOverwriteDeclined
		}
		if uerr := o.store.Update(func(st *models.AppState) {
			st.Candidates = append(st.Candidates, st.Results[prize.ID]...)
			delete(st.Results, prize.ID)
		}); uerr != nil {
			return "", fmt.Errorf("roll back previous winners: %w", uerr)
		}
		state = o.store.GetState()
	}

	if len(state.Candidates) < prize.Count {
		msg := fmt.Sprintf("Not enough candidates: %q needs %d, pool has %d.",
			prize.Title, prize.Count, len(state.Candidates))
		if aerr := o.prompter.Alert(ctx, msg); aerr != nil {
			o.logger.Warn("alert failed", "error", aerr)
		}
		return "", fmt.Errorf("%w: have %d, want %d",
			ErrInsufficientCandidates, len(state.Candidates), prize.Count)
	}

	plan, err := spinplan.Plan(o.settings.Duration, o.settings.Turns, o.settings.BaseSpeed)
	if err != nil {
		return "", fmt.Errorf("spin plan: %w", err)
	}

	drawID, err = auth.GenerateID(8)
	if err != nil {
		return "", err
	}

	// Point of no return: mark the draw, start the wheel, and sample
	// right now. The animation only reveals what is already decided.
	if err := o.store.Update(func(st *models.AppState) { st.Drawing = true }); err != nil {
		return "", fmt.Errorf("mark drawing: %w", err)
	}
	o.visualizer.Spin(plan)

	result, err := o.sampler.Draw(state.Candidates, prize.Count)
	if err != nil {
		// Unreachable after the pool check, but the flag must not leak.
		o.clearDrawing()
		return "", err
	}

	o.logger.Info("draw started",
		"draw_id", drawID,
		"prize", prize.Title,
		"winners", prize.Count,
		"pool", len(state.Candidates),
	)

	reveal := time.Duration(revealFraction * o.settings.Duration * float64(time.Second))
	epoch := o.currentEpoch()
	o.scheduler.Schedule(reveal, o.guard(epoch, func() {
		o.visualizer.LockOntoSequence(result.Winners,
			func(name string) {
				o.logger.Info("winner revealed", "draw_id", drawID, "winner", name)
			},
			o.guard(epoch, func() {
				o.commit(drawID, prize, result.Winners)
			}),
			o.settings.Stop,
		)
	}))

	return drawID, nil
}

// commit makes the draw durable: winners into the prize's results, out
// of the pool, flag cleared, visualizer re-addressed.
func (o *Orchestrator) commit(drawID string, prize models.Prize, winners []string) {
	var pool []string
	err := o.store.Update(func(st *models.AppState) {
		st.Results[prize.ID] = append([]string(nil), winners...)
		st.Candidates = removeAll(st.Candidates, winners)
		st.Drawing = false
		pool = st.Candidates
	})
	if err != nil {
		// The draw stays un-committed; the animation already finished,
		// so all we can do is log and release the guard.
		o.logger.Error("commit failed", "draw_id", drawID, "error", err)
	} else {
		o.logger.Info("draw committed", "draw_id", drawID, "prize", prize.Title, "winners", winners)
		o.visualizer.ResetCandidates(pool)
	}
	o.end()
}

// Reset invalidates outstanding continuations and clears the in-flight
// flag, so deferred callbacks from an abandoned draw cannot commit
// against fresh state. The caller resets the store and engine.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.epoch++
	o.isDrawing = false
}

// Close permanently invalidates the orchestrator's continuations.
func (o *Orchestrator) Close() {
	o.Reset()
}

// begin claims the single draw slot. Returns false if taken.
func (o *Orchestrator) begin() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.isDrawing {
		return false
	}
	o.isDrawing = true
	return true
}

func (o *Orchestrator) end() {
	o.mu.Lock()
	o.isDrawing = false
	o.mu.Unlock()
}

func (o *Orchestrator) clearDrawing() {
	if err := o.store.Update(func(st *models.AppState) { st.Drawing = false }); err != nil {
		o.logger.Error("clear drawing flag", "error", err)
	}
}

func (o *Orchestrator) currentEpoch() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.epoch
}

// guard wraps a continuation with a generation check: if Reset or Close
// ran since scheduling, the callback is dropped.
func (o *Orchestrator) guard(epoch uint64, fn func()) func() {
	return func() {
		o.mu.Lock()
		stale := o.epoch != epoch
		o.mu.Unlock()
		if stale {
			o.logger.Debug("dropping stale continuation", "epoch", epoch)
			return
		}
		fn()
	}
}

// removeAll returns pool minus every name in drop, preserving order.
func removeAll(pool, drop []string) []string {
	gone := make(map[string]bool, len(drop))
	for _, name := range drop {
		gone[name] = true
	}
	kept := pool[:0]
	for _, name := range pool {
		if !gone[name] {
			kept = append(kept, name)
		}
	}
	return kept
}
