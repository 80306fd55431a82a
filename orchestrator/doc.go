// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package orchestrator coordinates fair sampling, spin animation timing,
and durable commits of draw results.

# Draw Flow

StartDraw resolves the selected prize, handles the overwrite decision
for an already-awarded prize (previous winners rejoin the pool before
anything else), validates the pool, then starts the spin and samples the
winners immediately. The animation only reveals a result that is already
decided, so fairness cannot be influenced by render timing. The reveal
is scheduled after a suspense delay proportional to the spin duration;
the commit happens strictly after the visualizer reports every target
reached.

# Ordering Guarantees

  - Winners are computed before any visual reveal.
  - Persisted commits happen only after onAllDone, never on an aborted
    flow.
  - A single in-flight flag serializes draws; a second StartDraw while
    one runs returns ErrDrawInProgress with no sampling and no commit.
  - Every scheduled continuation carries a generation token; Reset and
    Close invalidate outstanding continuations so a stale callback can
    never commit against fresh state.

# Free Mode

EnterFreeMode snapshots the pool. FreeDraw picks one winner into a
running history; UndoFree re-inserts the last winner at the front of the
pool; ResetFree restores the snapshot.

# Collaborators

The Visualizer, Scheduler, Prompter, Store, and Sampler dependencies are
interfaces injected at construction. Production wiring uses the engine,
store, and sampler packages plus an HTTP prompt adapter.
*/
package orchestrator
