// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rotor

import "time"

// velocityBlend eases angular velocity from one value to another over a
// fixed window, so a spin never starts with a velocity discontinuity.
// It is a value type advanced by a pure function; the machine threads it
// through frames instead of mutating shared state.
type velocityBlend struct {
	from, to float64
	elapsed  time.Duration
	duration time.Duration
}

func newVelocityBlend(from, to float64, duration time.Duration) velocityBlend {
	return velocityBlend{from: from, to: to, duration: duration}
}

// advance returns the blend moved forward by dt.
func (b velocityBlend) advance(dt time.Duration) velocityBlend {
	b.elapsed += dt
	if b.elapsed > b.duration {
		b.elapsed = b.duration
	}
	return b
}

// value returns the eased velocity at the current point of the window.
func (b velocityBlend) value() float64 {
	if b.duration <= 0 {
		return b.to
	}
	t := easeInQuad(float64(b.elapsed) / float64(b.duration))
	return b.from + (b.to-b.from)*t
}

func (b velocityBlend) done() bool {
	return b.elapsed >= b.duration
}
