// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddCandidateRequest: name
  - CreatePrizeRequest / UpdatePrizeRequest: title, count, note
  - StartDrawRequest: confirm_overwrite

# Response Types

Types for JSON responses:

  - CandidatesResponse: candidates
  - CreatePrizeResponse: prize
  - StartDrawResponse: draw_id, prize_id
  - FreeDrawResponse: winner, history
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Prize: named award slot with a winner count
  - DrawResult: winners plus remaining pool
  - SpinPlan: three-phase angular velocity profile
  - StopConfig: lock animation parameters with defaults
  - AppState: full persisted application state
  - WheelFrame: one animation sample for renderers

# StopConfig Defaults

Zero-valued StopConfig fields are filled by Normalize:

	ExtraRevs     = 3.0
	Duration      = 4000ms
	NextExtraRevs = 1.0
	NextDuration  = 1500ms
	FinalPause    = 1200ms
*/
package models
