// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Candidate pool, in display order
CREATE TABLE IF NOT EXISTS candidate (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Prizes
CREATE TABLE IF NOT EXISTS prize (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL UNIQUE,
    count INTEGER NOT NULL CHECK (count > 0),
    note TEXT,
    position INTEGER NOT NULL
);

-- Committed winners per prize
CREATE TABLE IF NOT EXISTS result (
    prize_id TEXT NOT NULL REFERENCES prize(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    winner TEXT NOT NULL,
    PRIMARY KEY (prize_id, position)
);

-- Free-mode draw history, oldest first
CREATE TABLE IF NOT EXISTS free_draw (
    position INTEGER PRIMARY KEY,
    winner TEXT NOT NULL
);

-- Singleton settings (selected prize, free mode state)
CREATE TABLE IF NOT EXISTS setting (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// rebind converts ?-placeholders to the $N form lib/pq expects. The
// sqlite driver takes ? directly.
func rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
