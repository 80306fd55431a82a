// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Environment variables are read first (via caarlos0/env struct tags),
then CLI flags override them, then required values are validated.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (defaults to file:lucky-wheel.db for sqlite)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - SeedFile: Optional YAML file with initial candidates and prizes
  - SpinDuration, SpinTurns, BaseSpeed: free spin animation tuning
  - Stop*: lock animation overrides; zero values take package defaults

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-seed          Seed file path
	-admin-salt    Admin key salt
	-spin-duration Free spin seconds
	-spin-turns    Revolutions per spin
	-base-speed    Peak velocity floor (rad/s)

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_KEY_SALT must be provided
  - DATABASE_URL must be provided for postgres
  - spin tuning values must be positive
*/
package cliparse
