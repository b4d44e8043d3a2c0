package engine

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty scales troll chances, player step and spawn speed
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// String returns the setting value
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty accepts easy, normal or hard (case-insensitive)
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q", s)
}

// TrollState is the perturbation context shared by the loop, collisions and troll actions
// It persists across rounds; only a restart clears inversion and easy mode
type TrollState struct {
	ControlsInverted bool
	ControlsFrozen   bool
	EasyModeActive   bool
	FakeLagActive    bool
	DarkMode         bool
	ColorBlindMode   bool
	Difficulty       Difficulty

	// LastTrollTime anchors the inversion cooldown; zero means eligible immediately
	LastTrollTime time.Time
	LastLagScore  int
}

// NewTrollState creates the initial troll context
func NewTrollState(d Difficulty) *TrollState {
	return &TrollState{Difficulty: d}
}
