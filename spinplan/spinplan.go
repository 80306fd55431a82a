// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package spinplan

import (
	"errors"
	"math"
	"time"

	"github.com/danielhkuo/lucky-wheel/models"
)

var ErrInvalidPlan = errors.New("spin duration and turns must be positive")

// Phase ratios of the total spin duration. They must sum to 1.
const (
	AccelRatio    = 0.20
	ConstantRatio = 0.40
	DecelRatio    = 0.40
)

// Plan derives a three-phase velocity profile from the desired total
// duration (seconds) and number of full turns. baseSpeed (rad/s) is a
// floor on peak velocity so very short spins still read as motion.
//
// The peak velocity V solves the displacement equation for a
// half-triangular ramp on the acceleration and deceleration phases and a
// rectangular cruise:
//
//	turns*2π = 0.5*V*t1 + V*t2 + 0.5*V*t3
func Plan(duration, turns, baseSpeed float64) (models.SpinPlan, error) {
	if duration <= 0 || turns <= 0 {
		return models.SpinPlan{}, ErrInvalidPlan
	}

	t1 := duration * AccelRatio
	t2 := duration * ConstantRatio
	t3 := duration * DecelRatio

	totalRadians := turns * 2 * math.Pi
	peak := totalRadians / (0.5*t1 + t2 + 0.5*t3)

	// A slow plan is compressed rather than sped up: raising the peak to
	// the base speed and shrinking all three phases by the same factor
	// keeps total displacement at exactly turns*2π.
	if baseSpeed > 0 && peak < baseSpeed {
		k := peak / baseSpeed
		t1, t2, t3 = t1*k, t2*k, t3*k
		peak = baseSpeed
	}

	return models.SpinPlan{
		MaxAngularVelocity: peak,
		AccelDuration:      secs(t1),
		ConstantDuration:   secs(t2),
		DecelDuration:      secs(t3),
	}, nil
}

// Integrate returns the total angular displacement (radians) the plan
// covers, using the same ramp model Plan solves against. Used by tests
// and diagnostics.
func Integrate(p models.SpinPlan) float64 {
	t1 := p.AccelDuration.Seconds()
	t2 := p.ConstantDuration.Seconds()
	t3 := p.DecelDuration.Seconds()
	return p.MaxAngularVelocity * (0.5*t1 + t2 + 0.5*t3)
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
