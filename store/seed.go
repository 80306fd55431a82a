// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/lucky-wheel/models"
)

// SeedConfig describes the state created on first run.
type SeedConfig struct {
	Names  []string    `yaml:"names"`
	Prizes []SeedPrize `yaml:"prizes"`
}

type SeedPrize struct {
	Title string `yaml:"title"`
	Count int    `yaml:"count"`
	Note  string `yaml:"note"`
}

// DefaultSeed returns the built-in candidate list and the three default
// prizes used when no seed file is configured.
func DefaultSeed() SeedConfig {
	return SeedConfig{
		Names: []string{
			"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace", "Heidi",
			"Ivan", "Judy", "Karl", "Laura", "Mallory", "Niaj", "Olivia", "Peggy",
			"Quentin", "Rupert", "Sybil", "Trent", "Uma", "Victor", "Wendy", "Xavier",
			"Yolanda", "Zach", "Amber", "Boris", "Clara", "Derek", "Elena", "Felix",
			"Gina", "Hugo", "Iris", "Jonas", "Kira", "Leo", "Mona", "Nolan",
		},
		Prizes: []SeedPrize{
			{Title: "Grand Prize", Count: 1},
			{Title: "Second Prize", Count: 2},
			{Title: "Third Prize", Count: 3},
		},
	}
}

// LoadSeedFile reads a YAML seed file. Missing sections fall back to the
// defaults, so a file may override just the name list.
func LoadSeedFile(path string) (SeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedConfig{}, fmt.Errorf("read seed file: %w", err)
	}

	seed := DefaultSeed()
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedConfig{}, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// initialState builds the first-run AppState. The first prize starts
// selected so the wheel is drawable out of the box.
func (c SeedConfig) initialState() models.AppState {
	state := models.AppState{
		Candidates: append([]string(nil), c.Names...),
		Results:    make(map[string][]string),
	}
	for _, sp := range c.Prizes {
		state.Prizes = append(state.Prizes, models.Prize{
			ID:    uuid.NewString(),
			Title: sp.Title,
			Count: sp.Count,
			Note:  sp.Note,
		})
	}
	if len(state.Prizes) > 0 {
		state.SelectedPrizeID = state.Prizes[0].ID
	}
	return state
}
