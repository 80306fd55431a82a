// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// StopConfig defaults. Subsequent winners in a multi-winner draw get a
// shorter, snappier lock than the first one.
const (
	DefaultExtraRevs      = 3.0
	DefaultDurationMs     = 4000
	DefaultNextExtraRevs  = 1.0
	DefaultNextDurationMs = 1500
	DefaultFinalPauseMs   = 1200
)

// Request types

type AddCandidateRequest struct {
	Name string `json:"name"`
}

type CreatePrizeRequest struct {
	Title string `json:"title"`
	Count int    `json:"count"`
	Note  string `json:"note,omitempty"`
}

type UpdatePrizeRequest struct {
	Title string `json:"title"`
	Count int    `json:"count"`
	Note  string `json:"note,omitempty"`
}

// StartDrawRequest carries the one user decision the draw flow may need:
// whether an already-awarded prize may be re-drawn.
type StartDrawRequest struct {
	ConfirmOverwrite bool `json:"confirm_overwrite,omitempty"`
}

// Response types

type CandidatesResponse struct {
	Candidates []string `json:"candidates"`
}

type CreatePrizeResponse struct {
	Prize Prize `json:"prize"`
}

type StartDrawResponse struct {
	DrawID  string `json:"draw_id"`
	PrizeID string `json:"prize_id"`
}

type FreeDrawResponse struct {
	Winner  string   `json:"winner"`
	History []string `json:"history"`
}

// Domain types

// Prize is a named award slot requesting a fixed number of winners.
// Titles are unique within the prize list; IDs are generated.
type Prize struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
	Note  string `json:"note,omitempty"`
}

// DrawResult is the outcome of one fair draw: the winners plus the pool
// that remains. Winners are pairwise-distinct members of the input pool.
type DrawResult struct {
	Winners   []string `json:"winners"`
	Remaining []string `json:"remaining"`
}

// SpinPlan is the derived three-phase velocity profile for a free spin.
// Integrating velocity across the three phases yields exactly the
// requested number of turns.
type SpinPlan struct {
	MaxAngularVelocity float64       `json:"max_angular_velocity"` // rad/s
	AccelDuration      time.Duration `json:"accel_duration"`
	ConstantDuration   time.Duration `json:"constant_duration"`
	DecelDuration      time.Duration `json:"decel_duration"`
}

// TotalDuration returns the wall time the plan covers.
func (p SpinPlan) TotalDuration() time.Duration {
	return p.AccelDuration + p.ConstantDuration + p.DecelDuration
}

// StopConfig holds per-draw lock animation parameters. Every field has a
// documented default; Normalize fills zero values in.
type StopConfig struct {
	ExtraRevs     float64       `json:"extra_revs"`      // decorative revolutions before the first lock
	Duration      time.Duration `json:"duration"`        // lock duration for the first winner
	NextExtraRevs float64       `json:"next_extra_revs"` // revolutions for each subsequent winner
	NextDuration  time.Duration `json:"next_duration"`   // lock duration for subsequent winners
	FinalPause    time.Duration `json:"final_pause"`     // dwell on each winner before advancing
}

// Normalize returns a copy with defaults applied to unset fields.
func (c StopConfig) Normalize() StopConfig {
	if c.ExtraRevs <= 0 {
		c.ExtraRevs = DefaultExtraRevs
	}
	if c.Duration <= 0 {
		c.Duration = DefaultDurationMs * time.Millisecond
	}
	if c.NextExtraRevs <= 0 {
		c.NextExtraRevs = DefaultNextExtraRevs
	}
	if c.NextDuration <= 0 {
		c.NextDuration = DefaultNextDurationMs * time.Millisecond
	}
	if c.FinalPause <= 0 {
		c.FinalPause = DefaultFinalPauseMs * time.Millisecond
	}
	return c
}

// AppState is the full persisted application state. The orchestrator is
// the sole writer; everything else reads snapshots.
type AppState struct {
	Candidates      []string            `json:"candidates"`
	Prizes          []Prize             `json:"prizes"`
	Results         map[string][]string `json:"results"` // prize ID -> committed winners
	SelectedPrizeID string              `json:"selected_prize_id,omitempty"`
	Drawing         bool                `json:"drawing"`
	FreeMode        bool                `json:"free_mode"`
	FreeHistory     []string            `json:"free_history,omitempty"`

	// FreeSnapshot is the candidate pool captured when free mode was
	// entered; free-mode reset restores it. Not exposed over the API.
	FreeSnapshot []string `json:"-"`
}

// Clone deep-copies the state so callers can hold a snapshot while the
// store keeps mutating its own copy.
func (s AppState) Clone() AppState {
	out := s
	out.Candidates = append([]string(nil), s.Candidates...)
	out.Prizes = append([]Prize(nil), s.Prizes...)
	out.FreeHistory = append([]string(nil), s.FreeHistory...)
	out.FreeSnapshot = append([]string(nil), s.FreeSnapshot...)
	out.Results = make(map[string][]string, len(s.Results))
	for id, winners := range s.Results {
		out.Results[id] = append([]string(nil), winners...)
	}
	return out
}

// PrizeByID returns the prize with the given ID, if present.
func (s AppState) PrizeByID(id string) (Prize, bool) {
	for _, p := range s.Prizes {
		if p.ID == id {
			return p, true
		}
	}
	return Prize{}, false
}

// WheelFrame is one sample of the animation state, served to renderers.
type WheelFrame struct {
	Orientation     [4]float64 `json:"orientation"` // unit quaternion, w x y z
	AngularVelocity float64    `json:"angular_velocity"`
	Phase           string     `json:"phase"`
	Highlighted     string     `json:"highlighted,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
