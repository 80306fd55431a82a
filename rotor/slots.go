// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rotor

import "math"

// ViewAxis is the canonical viewing direction: the point of the sphere
// facing the camera. A lock finishes with the winner's slot rotated onto
// this axis.
var ViewAxis = Vec3{Z: 1}

// goldenAngle spaces consecutive slots around the sphere.
const goldenAngle = math.Pi * (3 - 2.2360679774997896) // π(3-√5)

// SlotPosition returns the unit-sphere position of slot i of n, laid out
// on a Fibonacci lattice so any pool size spreads evenly with no poles
// crowding.
func SlotPosition(i, n int) Vec3 {
	if n <= 1 {
		return ViewAxis
	}
	y := 1 - 2*(float64(i)+0.5)/float64(n)
	r := math.Sqrt(1 - y*y)
	theta := float64(i) * goldenAngle
	return Vec3{
		X: r * math.Cos(theta),
		Y: y,
		Z: r * math.Sin(theta),
	}
}

// slotMap builds the candidate -> position index. Later duplicates win,
// matching the caller's no-duplicates contract loosely.
func slotMap(names []string) map[string]Vec3 {
	m := make(map[string]Vec3, len(names))
	for i, name := range names {
		m[name] = SlotPosition(i, len(names))
	}
	return m
}
