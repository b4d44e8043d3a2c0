package engine

import "math/rand"

// Rand is the chance source injected into every system that rolls dice
// Float64 returns a value in [0, 1)
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source; equal seeds replay identical games
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// ScriptedRand replays a fixed sequence of rolls, then repeats Fallback
// Used by tests to force exact branch outcomes
type ScriptedRand struct {
	Rolls    []float64
	Fallback float64
	calls    int
}

// NewScriptedRand creates a scripted source with fallback 0.99 (all chance checks fail)
func NewScriptedRand(rolls ...float64) *ScriptedRand {
	return &ScriptedRand{Rolls: rolls, Fallback: 0.99}
}

// Float64 returns the next scripted roll
func (s *ScriptedRand) Float64() float64 {
	s.calls++
	if len(s.Rolls) == 0 {
		return s.Fallback
	}
	v := s.Rolls[0]
	s.Rolls = s.Rolls[1:]
	return v
}

// Push appends rolls to the script
func (s *ScriptedRand) Push(rolls ...float64) {
	s.Rolls = append(s.Rolls, rolls...)
}

// Calls returns how many rolls were consumed
func (s *ScriptedRand) Calls() int {
	return s.calls
}
