// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/lucky-wheel/models"
)

// Setting keys.
const (
	keySelectedPrize = "selected_prize"
	keyFreeMode      = "free_mode"
	keyFreeSnapshot  = "free_snapshot"
)

// Store persists AppState and hands out snapshots. Reads are cheap
// clones of an in-memory copy; every mutation rewrites the affected
// tables in one transaction before listeners are notified.
//
// The orchestrator is the sole writer during a draw; the mutex only
// protects against HTTP-side reads racing a commit.
type Store struct {
	db     *sql.DB
	driver string
	logger *slog.Logger

	mu        sync.Mutex
	state     models.AppState
	listeners map[int]func(models.AppState)
	nextSub   int
}

// Open prepares the schema, loads persisted state, and seeds defaults on
// first run. driver is "sqlite" or "postgres".
func Open(db *sql.DB, driver string, seed SeedConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := CreateSchema(db); err != nil {
		return nil, err
	}

	s := &Store{
		db:        db,
		driver:    driver,
		logger:    logger,
		listeners: make(map[int]func(models.AppState)),
	}

	state, loaded, err := s.load()
	if err != nil {
		return nil, err
	}
	if !loaded {
		state = seed.initialState()
		if err := s.persist(state); err != nil {
			return nil, fmt.Errorf("seed state: %w", err)
		}
		logger.Info("seeded initial state",
			"candidates", len(state.Candidates),
			"prizes", len(state.Prizes),
		)
	}
	s.state = state
	return s, nil
}

// GetState returns a deep-copied snapshot of the current state.
func (s *Store) GetState() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update applies mutate to a copy of the state, persists the result, and
// notifies subscribers. The state is untouched if persistence fails.
func (s *Store) Update(mutate func(*models.AppState)) error {
	s.mu.Lock()
	next := s.state.Clone()
	mutate(&next)
	if err := s.persist(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	snapshot := next.Clone()
	listeners := make([]func(models.AppState), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
	return nil
}

// ResetToSeed discards the current state and re-seeds from scratch, as
// if the database were empty on startup. Subscribers are notified with
// the fresh state.
func (s *Store) ResetToSeed(seed SeedConfig) error {
	fresh := seed.initialState()
	return s.Update(func(st *models.AppState) {
		*st = fresh
	})
}

// Subscribe registers a listener called with a snapshot after every
// successful mutation. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(models.AppState)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// load reads the persisted state. loaded is false when the database is
// empty (first run).
func (s *Store) load() (state models.AppState, loaded bool, err error) {
	state.Results = make(map[string][]string)

	rows, err := s.db.Query(`SELECT name FROM candidate ORDER BY position`)
	if err != nil {
		return state, false, fmt.Errorf("load candidates: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return state, false, err
		}
		state.Candidates = append(state.Candidates, name)
	}
	if err := rows.Err(); err != nil {
		return state, false, err
	}

	prows, err := s.db.Query(`SELECT id, title, count, COALESCE(note, '') FROM prize ORDER BY position`)
	if err != nil {
		return state, false, fmt.Errorf("load prizes: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var p models.Prize
		if err := prows.Scan(&p.ID, &p.Title, &p.Count, &p.Note); err != nil {
			return state, false, err
		}
		state.Prizes = append(state.Prizes, p)
	}
	if err := prows.Err(); err != nil {
		return state, false, err
	}

	rrows, err := s.db.Query(`SELECT prize_id, winner FROM result ORDER BY prize_id, position`)
	if err != nil {
		return state, false, fmt.Errorf("load results: %w", err)
	}
	defer rrows.Close()
	for rrows.Next() {
		var prizeID, winner string
		if err := rrows.Scan(&prizeID, &winner); err != nil {
			return state, false, err
		}
		state.Results[prizeID] = append(state.Results[prizeID], winner)
	}
	if err := rrows.Err(); err != nil {
		return state, false, err
	}

	frows, err := s.db.Query(`SELECT winner FROM free_draw ORDER BY position`)
	if err != nil {
		return state, false, fmt.Errorf("load free history: %w", err)
	}
	defer frows.Close()
	for frows.Next() {
		var winner string
		if err := frows.Scan(&winner); err != nil {
			return state, false, err
		}
		state.FreeHistory = append(state.FreeHistory, winner)
	}
	if err := frows.Err(); err != nil {
		return state, false, err
	}

	state.SelectedPrizeID, _ = s.getSetting(keySelectedPrize)
	if v, ok := s.getSetting(keyFreeMode); ok && v == "true" {
		state.FreeMode = true
	}
	if v, ok := s.getSetting(keyFreeSnapshot); ok {
		if err := json.Unmarshal([]byte(v), &state.FreeSnapshot); err != nil {
			s.logger.Warn("discarding corrupt free-mode snapshot", "error", err)
		}
	}

	loaded = len(state.Candidates) > 0 || len(state.Prizes) > 0
	return state, loaded, nil
}

func (s *Store) getSetting(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(rebind(s.driver, `SELECT value FROM setting WHERE key = ?`), key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// persist rewrites all tables from the given state in one transaction.
// State volumes here are tens of rows, so a full rewrite stays simpler
// and safer than per-field diffing.
func (s *Store) persist(state models.AppState) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"candidate", "prize", "result", "free_draw", "setting"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, name := range state.Candidates {
		if _, err := tx.Exec(rebind(s.driver,
			`INSERT INTO candidate (position, name) VALUES (?, ?)`), i, name); err != nil {
			return fmt.Errorf("insert candidate: %w", err)
		}
	}
	for i, p := range state.Prizes {
		if _, err := tx.Exec(rebind(s.driver,
			`INSERT INTO prize (id, title, count, note, position) VALUES (?, ?, ?, ?, ?)`),
			p.ID, p.Title, p.Count, p.Note, i); err != nil {
			return fmt.Errorf("insert prize: %w", err)
		}
	}
	for prizeID, winners := range state.Results {
		for i, winner := range winners {
			if _, err := tx.Exec(rebind(s.driver,
				`INSERT INTO result (prize_id, position, winner) VALUES (?, ?, ?)`),
				prizeID, i, winner); err != nil {
				return fmt.Errorf("insert result: %w", err)
			}
		}
	}
	for i, winner := range state.FreeHistory {
		if _, err := tx.Exec(rebind(s.driver,
			`INSERT INTO free_draw (position, winner) VALUES (?, ?)`), i, winner); err != nil {
			return fmt.Errorf("insert free draw: %w", err)
		}
	}

	settings := map[string]string{}
	if state.SelectedPrizeID != "" {
		settings[keySelectedPrize] = state.SelectedPrizeID
	}
	if state.FreeMode {
		settings[keyFreeMode] = "true"
	}
	if len(state.FreeSnapshot) > 0 {
		encoded, err := json.Marshal(state.FreeSnapshot)
		if err != nil {
			return fmt.Errorf("encode free snapshot: %w", err)
		}
		settings[keyFreeSnapshot] = string(encoded)
	}
	for key, value := range settings {
		if _, err := tx.Exec(rebind(s.driver,
			`INSERT INTO setting (key, value) VALUES (?, ?)`), key, value); err != nil {
			return fmt.Errorf("insert setting: %w", err)
		}
	}

	return tx.Commit()
}
