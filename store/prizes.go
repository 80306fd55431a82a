// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/lucky-wheel/models"
)

var (
	ErrEmptyTitle        = errors.New("prize title must not be empty")
	ErrDuplicateTitle    = errors.New("prize title already exists")
	ErrInvalidPrizeCount = errors.New("prize count must be positive")
	ErrPrizeNotFound     = errors.New("prize not found")
	ErrCandidateExists   = errors.New("candidate already in pool")
	ErrCandidateNotFound = errors.New("candidate not in pool")
)

// AddCandidate appends a name to the pool.
func (s *Store) AddCandidate(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("candidate name must not be empty")
	}
	var dup bool
	err := s.Update(func(st *models.AppState) {
		for _, existing := range st.Candidates {
			if existing == name {
				dup = true
				return
			}
		}
		st.Candidates = append(st.Candidates, name)
	})
	if err != nil {
		return err
	}
	if dup {
		return fmt.Errorf("%w: %s", ErrCandidateExists, name)
	}
	return nil
}

// RemoveCandidate drops a name from the pool.
func (s *Store) RemoveCandidate(name string) error {
	var found bool
	err := s.Update(func(st *models.AppState) {
		for i, existing := range st.Candidates {
			if existing == name {
				st.Candidates = append(st.Candidates[:i], st.Candidates[i+1:]...)
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrCandidateNotFound, name)
	}
	return nil
}

// AddPrize validates and stores a new prize. Titles are trimmed and must
// be unique across the list.
func (s *Store) AddPrize(title string, count int, note string) (models.Prize, error) {
	prize := models.Prize{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(title),
		Count: count,
		Note:  note,
	}
	if prize.Title == "" {
		return models.Prize{}, ErrEmptyTitle
	}
	if prize.Count <= 0 {
		return models.Prize{}, ErrInvalidPrizeCount
	}

	var dup bool
	err := s.Update(func(st *models.AppState) {
		for _, p := range st.Prizes {
			if p.Title == prize.Title {
				dup = true
				return
			}
		}
		st.Prizes = append(st.Prizes, prize)
	})
	if err != nil {
		return models.Prize{}, err
	}
	if dup {
		return models.Prize{}, fmt.Errorf("%w: %s", ErrDuplicateTitle, prize.Title)
	}
	return prize, nil
}

// UpdatePrize replaces a prize's title, count, and note.
func (s *Store) UpdatePrize(id, title string, count int, note string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if count <= 0 {
		return ErrInvalidPrizeCount
	}

	var found, dup bool
	err := s.Update(func(st *models.AppState) {
		for _, p := range st.Prizes {
			if p.ID != id && p.Title == title {
				dup = true
				return
			}
		}
		for i := range st.Prizes {
			if st.Prizes[i].ID == id {
				st.Prizes[i].Title = title
				st.Prizes[i].Count = count
				st.Prizes[i].Note = note
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if dup {
		return fmt.Errorf("%w: %s", ErrDuplicateTitle, title)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrPrizeNotFound, id)
	}
	return nil
}

// DeletePrize removes a prize and its committed results.
func (s *Store) DeletePrize(id string) error {
	var found bool
	err := s.Update(func(st *models.AppState) {
		for i := range st.Prizes {
			if st.Prizes[i].ID == id {
				st.Prizes = append(st.Prizes[:i], st.Prizes[i+1:]...)
				delete(st.Results, id)
				if st.SelectedPrizeID == id {
					st.SelectedPrizeID = ""
				}
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrPrizeNotFound, id)
	}
	return nil
}

// SelectPrize marks the prize the next draw targets.
func (s *Store) SelectPrize(id string) error {
	var found bool
	err := s.Update(func(st *models.AppState) {
		if _, ok := st.PrizeByID(id); ok {
			st.SelectedPrizeID = id
			found = true
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrPrizeNotFound, id)
	}
	return nil
}
