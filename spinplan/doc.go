// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package spinplan converts a desired spin duration and turn count into a
phase-accurate angular velocity profile.

# Phases

Total time splits into fixed ratios: 20% acceleration, 40% constant
cruise, 40% deceleration. The single peak velocity V is solved so that a
half-triangular ramp on the outer phases plus a rectangular cruise covers
exactly turns*2π radians:

	V = turns*2π / (0.5*t1 + t2 + 0.5*t3)

# Base Speed

If the solved peak falls below baseSpeed, the peak is raised to baseSpeed
and all three phase durations shrink proportionally, preserving the total
displacement invariant.

# Errors

Plan fails with ErrInvalidPlan when duration <= 0 or turns <= 0. It is a
pure function otherwise.
*/
package spinplan
