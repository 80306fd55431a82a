// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package rotor implements the orientation state machine that animates the
wheel: free spin, deceleration onto a sequence of winners, and dwell.

# States

	idle → accelerating → constant → decelerating → highlighting → (decelerating | idle)

StartSpin eases angular velocity from its current value to the plan's
peak (no velocity discontinuity), LockOntoSequence steers the wheel onto
each winner in turn, and Advance integrates everything with the actual
elapsed frame time.

# Geometry

Candidates occupy slots on a unit sphere laid out as a Fibonacci lattice.
A lock computes the rotation that carries the winner's slot onto ViewAxis
and slerps toward it with a cubic ease-out. A decaying overlay rotation
of whole extra revolutions about the view axis rides on top; it is an
integer multiple of a full turn at completion, so the final orientation
is exactly the target while the approach still reads as continued spin.

# Invariants

  - The composed orientation is continuous across every state transition.
  - After a lock completes, QRotate(Orientation(), slot) equals ViewAxis
    up to floating-point tolerance.
  - Unknown targets are logged (ErrTargetNotFound) and skipped without a
    dwell; the sequence never stalls.

# Concurrency

A Machine is not safe for concurrent use. The engine package drives it
from a single frame loop.
*/
package rotor
