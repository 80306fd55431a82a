// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Lucky Wheel API server.

Lucky Wheel draws random winners from a candidate pool with a timed
spin-and-land animation: names sit on a sphere, the wheel spins up on a
planned velocity profile, and then decelerates onto each winner in turn.
Winners are sampled with crypto/rand the instant a draw starts; the
animation is pure reveal.

# Starting the Server

	ADMIN_KEY_SALT=... go run .

Or with flags:

	go run . -p 3318 -t sqlite -d "file:lucky-wheel.db" -admin-salt ...

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string (default: file:lucky-wheel.db)
  - SEED_FILE (-seed): YAML file with initial candidates and prizes
  - SPIN_DURATION, SPIN_TURNS, SPIN_BASE_SPEED: free spin tuning
  - STOP_*: lock animation overrides

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - sampler: crypto-fair winner selection
  - spinplan: deterministic spin timing profiles
  - rotor: quaternion orientation state machine
  - engine: frame loop, engine-time scheduling, animation snapshots
  - orchestrator: draw lifecycle, commit/rollback, free mode
  - store: persisted application state (sqlite or postgres)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin key gate, JSON helpers
  - models: Domain and request/response types
  - auth: ID generation and admin key validation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
