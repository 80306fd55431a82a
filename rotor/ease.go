// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rotor

// easeInQuad ramps velocity up gently at the start of a spin.
func easeInQuad(t float64) float64 {
	t = clamp01(t)
	return t * t
}

// easeOutCubic drives the lock interpolation: fast early, asymptotically
// settling at the target.
func easeOutCubic(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
