// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Lucky Wheel API.

# Handler Types

Each handler is a struct with its collaborators injected via constructor:

  - StateHandler: Health, full state snapshot, animation frames
  - CandidateHandler: Pool membership
  - PrizeHandler: Prize CRUD and selection
  - DrawHandler: Prize draws and the global reset
  - FreeHandler: Free-mode drawing, undo, and reset

	drawHandler := handlers.NewDrawHandler(orch, st, eng, seed)

# Draw Flow

A draw runs asynchronously: POST /draw validates, starts the spin, and
returns 202 with a draw ID. Winners are already decided at that point
but only revealed by the animation; poll GET /wheel/frame to render it,
and GET /state to see committed results once the wheel settles.

Re-drawing a prize that already has winners is refused with 409 unless
the request body sets confirm_overwrite, in which case the previous
winners rejoin the pool before the re-draw. The consent travels to the
orchestrator's prompter via the request context (see RequestPrompter).

# Free Mode

	POST /free/enter → snapshot the pool, switch modes
	POST /free/draw  → one winner, no prize, appended to history
	POST /free/undo  → take back the latest winner
	POST /free/reset → restore the entry snapshot, clear history
	POST /free/leave → back to prize drawing (history survives)

# Admin Operations

Mutating endpoints sit behind middleware.RequireAdminKey and expect the
X-Admin-Key header. Read endpoints (state, frames, health) are open.
*/
package handlers
