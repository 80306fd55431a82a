// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "time"

// timer is one deferred continuation on the engine timeline. The epoch
// captured at scheduling time must still be current when the timer comes
// due, otherwise the callback is dropped; this is how a reset or dispose
// invalidates every outstanding continuation at once.
type timer struct {
	id       uint64
	due      time.Duration // engine time
	epoch    uint64
	fn       func()
	canceled bool
}

// timeline is an ordered set of pending timers on engine time. Not safe
// for concurrent use; the engine guards it.
type timeline struct {
	nextID uint64
	timers []*timer
}

// schedule registers fn to fire at engine time due. Returns the timer so
// the caller can cancel it.
func (tl *timeline) schedule(due time.Duration, epoch uint64, fn func()) *timer {
	tl.nextID++
	tm := &timer{id: tl.nextID, due: due, epoch: epoch, fn: fn}
	tl.timers = append(tl.timers, tm)
	return tm
}

// collectDue removes every timer due at or before now whose epoch still
// matches, returning their callbacks in scheduling order. Stale and
// canceled timers are discarded.
func (tl *timeline) collectDue(now time.Duration, epoch uint64) []func() {
	var due []func()
	kept := tl.timers[:0]
	for _, tm := range tl.timers {
		switch {
		case tm.canceled:
		case tm.due > now:
			kept = append(kept, tm)
		case tm.epoch == epoch:
			due = append(due, tm.fn)
		}
	}
	tl.timers = kept
	return due
}

// clear drops every pending timer.
func (tl *timeline) clear() {
	tl.timers = nil
}
