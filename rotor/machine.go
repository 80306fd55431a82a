// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rotor

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/danielhkuo/lucky-wheel/models"
)

// ErrTargetNotFound marks a lock target with no known slot. It is never
// returned to callers during animation: the machine logs it and skips to
// the next target so a presentation defect cannot stall a draw.
var ErrTargetNotFound = errors.New("lock target has no slot position")

// State is the animation phase of the machine.
type State int

const (
	Idle State = iota
	Accelerating
	Constant
	Decelerating
	Highlighting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Accelerating:
		return "accelerating"
	case Constant:
		return "constant"
	case Decelerating:
		return "decelerating"
	case Highlighting:
		return "highlighting"
	}
	return "unknown"
}

// SpinAxis is the free-spin rotation axis. Spinning about Y sweeps the
// candidate slots horizontally past the viewer.
var SpinAxis = Vec3{Y: 1}

// Machine owns the continuously integrated rotation state of the wheel.
// It is not safe for concurrent use; the engine serializes all access on
// its frame loop.
type Machine struct {
	state       State
	orientation Quat
	omega       float64 // current angular velocity about SpinAxis, rad/s
	blend       velocityBlend
	slots       map[string]Vec3

	// Lock sequence, valid in Decelerating and Highlighting.
	targets      []string
	targetIdx    int
	qStart       Quat
	qTarget      Quat
	lockElapsed  time.Duration
	lockDuration time.Duration
	extraRevs    float64
	lockOmega    float64 // velocity at lock entry, decayed for display
	pauseLeft    time.Duration
	cfg          models.StopConfig
	onEachTarget func(string)
	onAllDone    func()
	highlighted  string

	logger *slog.Logger
}

// New returns an idle machine addressing the given candidate pool.
func New(candidates []string, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine{
		state:       Idle,
		orientation: QIdentity(),
		slots:       slotMap(candidates),
		logger:      logger,
	}
}

// State returns the current animation phase.
func (m *Machine) State() State {
	return m.state
}

// Orientation returns the current composed orientation.
func (m *Machine) Orientation() Quat {
	return m.orientation
}

// AngularVelocity returns the current display velocity in rad/s.
func (m *Machine) AngularVelocity() float64 {
	return m.omega
}

// Highlighted returns the candidate currently locked at the view axis,
// or "" outside the Highlighting phase.
func (m *Machine) Highlighted() string {
	return m.highlighted
}

// ResetCandidates rebuilds the addressable slot for every candidate.
// Callable in any state; orientation and velocity are untouched.
func (m *Machine) ResetCandidates(candidates []string) {
	m.slots = slotMap(candidates)
}

// Halt stops all motion and returns to Idle. The pose is kept; any lock
// sequence in progress is dropped without firing its callbacks.
func (m *Machine) Halt() {
	m.state = Idle
	m.omega = 0
	m.targets = nil
	m.targetIdx = 0
	m.highlighted = ""
	m.onEachTarget = nil
	m.onAllDone = nil
}

// StartSpin begins a free spin. The current orientation and velocity are
// the continuity baseline: velocity eases from its present value toward
// the plan's peak over the acceleration window, so re-spinning an
// already-moving wheel never jumps.
func (m *Machine) StartSpin(plan models.SpinPlan) {
	m.blend = newVelocityBlend(m.omega, plan.MaxAngularVelocity, plan.AccelDuration)
	m.state = Accelerating
	m.highlighted = ""
	m.targets = nil
}

// LockOntoSequence steers the wheel onto each target in order. For every
// target reached, onEachTarget fires and the wheel dwells; after the last
// dwell the machine returns to Idle with zero velocity and onAllDone
// fires. Unknown targets are skipped without their dwell.
func (m *Machine) LockOntoSequence(targets []string, cfg models.StopConfig, onEachTarget func(string), onAllDone func()) {
	m.cfg = cfg.Normalize()
	m.targets = targets
	m.targetIdx = 0
	m.onEachTarget = onEachTarget
	m.onAllDone = onAllDone
	m.beginLock(m.cfg.Duration, m.cfg.ExtraRevs)
}

// Advance integrates the machine by the actual elapsed frame time. The
// composed orientation is continuous across every state transition.
func (m *Machine) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}

	switch m.state {
	case Idle:
		// Holding: nothing integrates.

	case Accelerating:
		m.blend = m.blend.advance(dt)
		m.omega = m.blend.value()
		m.integrateSpin(dt)
		if m.blend.done() {
			m.state = Constant
		}

	case Constant:
		m.integrateSpin(dt)

	case Decelerating:
		m.advanceLock(dt)

	case Highlighting:
		m.pauseLeft -= dt
		if m.pauseLeft <= 0 {
			m.nextTarget()
		}
	}
}

// integrateSpin applies one frame of free rotation about the spin axis.
func (m *Machine) integrateSpin(dt time.Duration) {
	angle := m.omega * dt.Seconds()
	m.orientation = QNormalize(QMul(QFromAxisAngle(SpinAxis, angle), m.orientation))
}

// beginLock starts interpolating toward the current target. Targets with
// no slot are skipped on the spot.
func (m *Machine) beginLock(duration time.Duration, extraRevs float64) {
	for m.targetIdx < len(m.targets) {
		name := m.targets[m.targetIdx]
		slot, ok := m.slots[name]
		if ok {
			m.qStart = m.orientation
			// The orientation that carries this candidate's slot onto
			// the canonical viewing axis.
			m.qTarget = QRotationBetween(slot, ViewAxis)
			m.lockElapsed = 0
			m.lockDuration = duration
			m.extraRevs = extraRevs
			m.lockOmega = m.omega
			m.highlighted = ""
			m.state = Decelerating
			return
		}
		m.logger.Warn("skipping unaddressable lock target",
			"target", name,
			"error", ErrTargetNotFound,
		)
		m.targetIdx++
	}
	m.finish()
}

// advanceLock moves the deceleration interpolation forward one frame.
func (m *Machine) advanceLock(dt time.Duration) {
	m.lockElapsed += dt
	t := clamp01(float64(m.lockElapsed) / float64(m.lockDuration))
	eased := easeOutCubic(t)

	// Base path: shortest arc from the entry orientation to the target.
	base := QSlerp(m.qStart, m.qTarget, eased)

	// Overlay: a decaying flourish of whole extra revolutions about the
	// view axis. At t=1 the overlay angle is an exact multiple of 2π and
	// contributes nothing, so the lock lands exactly on target.
	overlayAngle := m.extraRevs * 2 * math.Pi * eased
	m.orientation = QNormalize(QMul(QFromAxisAngle(ViewAxis, overlayAngle), base))

	// Display velocity decays along the same curve.
	m.omega = m.lockOmega * (1 - eased)

	if t >= 1 {
		m.orientation = m.qTarget
		name := m.targets[m.targetIdx]
		m.highlighted = name
		m.state = Highlighting
		m.pauseLeft = m.cfg.FinalPause
		if m.onEachTarget != nil {
			m.onEachTarget(name)
		}
	}
}

// nextTarget advances the sequence after a dwell.
func (m *Machine) nextTarget() {
	m.targetIdx++
	if m.targetIdx < len(m.targets) {
		m.beginLock(m.cfg.NextDuration, m.cfg.NextExtraRevs)
		return
	}
	m.finish()
}

// finish settles the machine: zero velocity, current orientation becomes
// the baseline for the next draw.
func (m *Machine) finish() {
	m.omega = 0
	m.state = Idle
	m.targets = nil
	done := m.onAllDone
	m.onEachTarget = nil
	m.onAllDone = nil
	if done != nil {
		done()
	}
}
