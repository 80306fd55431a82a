// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/spinplan"
)

// EnterFreeMode snapshots the pool and switches to free drawing. Already
// being in free mode is a no-op.
func (o *Orchestrator) EnterFreeMode() error {
	return o.store.Update(func(st *models.AppState) {
		if st.FreeMode {
			return
		}
		st.FreeMode = true
		st.FreeSnapshot = append([]string(nil), st.Candidates...)
	})
}

// LeaveFreeMode switches back to prize drawing. The free history stays
// persisted; the snapshot is discarded.
func (o *Orchestrator) LeaveFreeMode() error {
	return o.store.Update(func(st *models.AppState) {
		st.FreeMode = false
		st.FreeSnapshot = nil
	})
}

// FreeDraw draws exactly one winner with no prize association, appending
// to the running free-draw history. The animation flow matches a prize
// draw with a single target.
func (o *Orchestrator) FreeDraw(ctx context.Context) (winner string, err error) {
	if !o.begin() {
		return "", ErrDrawInProgress
	}
	defer func() {
		if err != nil {
			o.end()
		}
	}()

	state := o.store.GetState()
	if !state.FreeMode {
		return "", ErrNotInFreeMode
	}
	if len(state.Candidates) < 1 {
		if aerr := o.prompter.Alert(ctx, "The candidate pool is empty."); aerr != nil {
			o.logger.Warn("alert failed", "error", aerr)
		}
		return "", fmt.Errorf("%w: pool is empty", ErrInsufficientCandidates)
	}

	plan, err := spinplan.Plan(o.settings.Duration, o.settings.Turns, o.settings.BaseSpeed)
	if err != nil {
		return "", fmt.Errorf("spin plan: %w", err)
	}

	if err := o.store.Update(func(st *models.AppState) { st.Drawing = true }); err != nil {
		return "", fmt.Errorf("mark drawing: %w", err)
	}
	o.visualizer.Spin(plan)

	result, err := o.sampler.Draw(state.Candidates, 1)
	if err != nil {
		o.clearDrawing()
		return "", err
	}
	winner = result.Winners[0]

	reveal := time.Duration(revealFraction * o.settings.Duration * float64(time.Second))
	epoch := o.currentEpoch()
	o.scheduler.Schedule(reveal, o.guard(epoch, func() {
		o.visualizer.LockOntoSequence([]string{winner}, nil,
			o.guard(epoch, func() { o.commitFree(winner) }),
			o.settings.Stop,
		)
	}))

	return winner, nil
}

// commitFree appends the winner to the history and drops them from the
// pool once the animation settles.
func (o *Orchestrator) commitFree(winner string) {
	var pool []string
	err := o.store.Update(func(st *models.AppState) {
		st.FreeHistory = append(st.FreeHistory, winner)
		st.Candidates = removeAll(st.Candidates, []string{winner})
		st.Drawing = false
		pool = st.Candidates
	})
	if err != nil {
		o.logger.Error("free draw commit failed", "winner", winner, "error", err)
	} else {
		o.logger.Info("free draw committed", "winner", winner)
		o.visualizer.ResetCandidates(pool)
	}
	o.end()
}

// UndoFree takes back the most recent free winner, re-inserting them at
// the front of the pool.
func (o *Orchestrator) UndoFree() error {
	if !o.begin() {
		return ErrDrawInProgress
	}
	defer o.end()

	var (
		pool    []string
		noMode  bool
		noUndos bool
	)
	err := o.store.Update(func(st *models.AppState) {
		if !st.FreeMode {
			noMode = true
			return
		}
		if len(st.FreeHistory) == 0 {
			noUndos = true
			return
		}
		last := st.FreeHistory[len(st.FreeHistory)-1]
		st.FreeHistory = st.FreeHistory[:len(st.FreeHistory)-1]
		st.Candidates = append([]string{last}, st.Candidates...)
		pool = st.Candidates
	})
	if err != nil {
		return err
	}
	if noMode {
		return ErrNotInFreeMode
	}
	if noUndos {
		return ErrFreeHistoryEmpty
	}
	o.visualizer.ResetCandidates(pool)
	return nil
}

// ResetFree restores the pool to the snapshot taken when free mode was
// entered and clears the history.
func (o *Orchestrator) ResetFree() error {
	if !o.begin() {
		return ErrDrawInProgress
	}
	defer o.end()

	var (
		pool   []string
		noMode bool
	)
	err := o.store.Update(func(st *models.AppState) {
		if !st.FreeMode {
			noMode = true
			return
		}
		st.Candidates = append([]string(nil), st.FreeSnapshot...)
		st.FreeHistory = nil
		pool = st.Candidates
	})
	if err != nil {
		return err
	}
	if noMode {
		return ErrNotInFreeMode
	}
	o.visualizer.ResetCandidates(pool)
	return nil
}
