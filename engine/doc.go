// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine runs the wheel's frame loop and engine-time timeline.

# Frame Loop

Run ticks at roughly 60 Hz but integrates with the measured elapsed time
per tick, so frame jitter never changes total travel. Tests skip Run and
call Step with synthetic deltas, which makes everything downstream of the
loop (reveal delays, dwell pauses, lock completion) fully deterministic.

# Timeline

Schedule defers a callback on engine time. Every continuation carries the
epoch current at scheduling; Reset and Dispose bump the epoch, so stale
callbacks from an abandoned draw are dropped instead of committing
against fresh state.

# Callback Discipline

One mutex guards all animation state. Machine callbacks and due timers
are collected under the lock and invoked after release, so a callback may
call any Engine method without deadlocking.

The Engine satisfies the orchestrator's Visualizer and Scheduler
interfaces.
*/
package engine
