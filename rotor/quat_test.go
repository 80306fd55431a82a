// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rotor

import (
	"math"
	"testing"
)

const tol = 1e-9

func vecClose(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestQFromAxisAngle_QuarterTurn(t *testing.T) {
	// 90° about Z carries X onto Y.
	q := QFromAxisAngle(Vec3{Z: 1}, math.Pi/2)
	got := QRotate(q, Vec3{X: 1})
	if !vecClose(got, Vec3{Y: 1}, 1e-12) {
		t.Errorf("rotated X = %+v, want Y", got)
	}
}

func TestQMul_ComposesRightToLeft(t *testing.T) {
	// Rotate X by 90° about Z (-> Y), then 90° about X (-> Z).
	first := QFromAxisAngle(Vec3{Z: 1}, math.Pi/2)
	second := QFromAxisAngle(Vec3{X: 1}, math.Pi/2)
	got := QRotate(QMul(second, first), Vec3{X: 1})
	if !vecClose(got, Vec3{Z: 1}, 1e-12) {
		t.Errorf("composed rotation = %+v, want Z", got)
	}
}

func TestQFullTurn_IsIdentityRotation(t *testing.T) {
	// 2π about any axis must not move anything, even though the
	// quaternion itself is -identity.
	q := QFromAxisAngle(Vec3{X: 0.3, Y: -0.7, Z: 0.65}, 2*math.Pi)
	v := Vec3{X: 0.2, Y: 0.9, Z: -0.4}
	if !vecClose(QRotate(q, v), v, 1e-9) {
		t.Errorf("full turn moved vector: %+v", QRotate(q, v))
	}
}

func TestQSlerp_Endpoints(t *testing.T) {
	a := QFromAxisAngle(Vec3{Y: 1}, 0.3)
	b := QFromAxisAngle(Vec3{Y: 1}, 2.1)

	if QSlerp(a, b, 0) != a {
		t.Error("slerp at t=0 should return a")
	}
	if QSlerp(a, b, 1) != b {
		t.Error("slerp at t=1 should return b")
	}
}

func TestQSlerp_Halfway(t *testing.T) {
	a := QIdentity()
	b := QFromAxisAngle(Vec3{Y: 1}, math.Pi/2)
	mid := QSlerp(a, b, 0.5)
	want := QFromAxisAngle(Vec3{Y: 1}, math.Pi/4)

	if math.Abs(math.Abs(QDot(mid, want))-1) > tol {
		t.Errorf("midpoint %+v, want 45° about Y", mid)
	}
	got := QRotate(mid, Vec3{X: 1})
	inv := math.Sqrt2 / 2
	if !vecClose(got, Vec3{X: inv, Z: -inv}, 1e-9) {
		t.Errorf("midpoint rotates X to %+v", got)
	}
}

func TestQRotationBetween(t *testing.T) {
	cases := []struct {
		name     string
		from, to Vec3
	}{
		{"orthogonal", Vec3{X: 1}, Vec3{Y: 1}},
		{"oblique", Vec3{X: 1, Y: 1, Z: 1}, Vec3{Z: 1}},
		{"identical", Vec3{Z: 1}, Vec3{Z: 1}},
		{"antiparallel", Vec3{Z: 1}, Vec3{Z: -1}},
		{"antiparallel x", Vec3{X: 1}, Vec3{X: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := QRotationBetween(tc.from, tc.to)
			got := QRotate(q, V3Normalize(tc.from))
			if !vecClose(got, V3Normalize(tc.to), 1e-9) {
				t.Errorf("rotation carries %+v to %+v, want %+v", tc.from, got, tc.to)
			}
		})
	}
}

func TestSlotPosition_UnitAndDistinct(t *testing.T) {
	const n = 40
	seen := make(map[Vec3]bool, n)
	for i := range n {
		p := SlotPosition(i, n)
		if math.Abs(V3Mag(p)-1) > 1e-12 {
			t.Errorf("slot %d not on unit sphere: |p|=%f", i, V3Mag(p))
		}
		if seen[p] {
			t.Errorf("slot %d duplicates another slot", i)
		}
		seen[p] = true
	}
}
