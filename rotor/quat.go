// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rotor

import "math"

// Quat is a rotation quaternion (w + xi + yj + zk). All constructors
// return unit quaternions; Mul of unit quaternions stays unit up to
// floating-point drift, which Normalize corrects.
type Quat struct {
	W, X, Y, Z float64
}

// QIdentity is the no-rotation quaternion.
func QIdentity() Quat {
	return Quat{W: 1}
}

// QFromAxisAngle builds a rotation of angle radians about axis. The axis
// need not be unit length.
func QFromAxisAngle(axis Vec3, angle float64) Quat {
	axis = V3Normalize(axis)
	half := angle / 2
	s := math.Sin(half)
	return Quat{
		W: math.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// QMul composes rotations: applying QMul(a, b) rotates by b first, then a.
func QMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

func QConjugate(q Quat) Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

func QDot(a, b Quat) float64 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func QNormalize(q Quat) Quat {
	mag := math.Sqrt(QDot(q, q))
	if mag == 0 {
		return QIdentity()
	}
	inv := 1 / mag
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// QRotate applies the rotation to a vector: q * v * q⁻¹.
func QRotate(q Quat, v Vec3) Vec3 {
	p := Quat{W: 0, X: v.X, Y: v.Y, Z: v.Z}
	r := QMul(QMul(q, p), QConjugate(q))
	return Vec3{r.X, r.Y, r.Z}
}

// QSlerp spherically interpolates from a to b. t outside [0,1] is
// clamped. The shorter arc is always taken.
func QSlerp(a, b Quat, t float64) Quat {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	cos := QDot(a, b)
	// Flip one endpoint to take the shorter of the two arcs; q and -q
	// are the same rotation.
	if cos < 0 {
		b = Quat{-b.W, -b.X, -b.Y, -b.Z}
		cos = -cos
	}

	// Nearly parallel: fall back to normalized lerp to avoid dividing by
	// a vanishing sine.
	if cos > 0.9995 {
		return QNormalize(Quat{
			W: a.W + t*(b.W-a.W),
			X: a.X + t*(b.X-a.X),
			Y: a.Y + t*(b.Y-a.Y),
			Z: a.Z + t*(b.Z-a.Z),
		})
	}

	theta := math.Acos(cos)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return Quat{
		W: wa*a.W + wb*b.W,
		X: wa*a.X + wb*b.X,
		Y: wa*a.Y + wb*b.Y,
		Z: wa*a.Z + wb*b.Z,
	}
}

// QRotationBetween returns the minimal rotation carrying unit vector from
// onto unit vector to.
func QRotationBetween(from, to Vec3) Quat {
	from = V3Normalize(from)
	to = V3Normalize(to)
	cos := V3Dot(from, to)

	// Antiparallel vectors have no unique minimal rotation; pick a half
	// turn about any axis perpendicular to from.
	if cos < -0.999999 {
		perp := V3Cross(Vec3{X: 1}, from)
		if V3Mag(perp) < 1e-9 {
			perp = V3Cross(Vec3{Y: 1}, from)
		}
		return QFromAxisAngle(perp, math.Pi)
	}

	axis := V3Cross(from, to)
	q := Quat{W: 1 + cos, X: axis.X, Y: axis.Y, Z: axis.Z}
	return QNormalize(q)
}
