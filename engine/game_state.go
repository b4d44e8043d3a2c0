package engine

import "github.com/lixenwraith/troll-dodge/constants"

// GamePhase is the round lifecycle state
type GamePhase int

const (
	PhaseIdle GamePhase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Idle"
	}
}

// validTransitions lists allowed phase edges
// Running/Paused -> Idle is the fake-save reset
var validTransitions = map[GamePhase][]GamePhase{
	PhaseIdle:     {PhaseRunning},
	PhaseRunning:  {PhasePaused, PhaseGameOver, PhaseIdle},
	PhasePaused:   {PhaseRunning, PhaseIdle},
	PhaseGameOver: {PhaseIdle},
}

// GameState holds progression: score, lives, level, attempts and the phase
type GameState struct {
	Phase    GamePhase
	Score    int
	Attempts int
	Level    int
	Lives    int

	// FinalShown is set once the real game-over screen replaced the fake one
	FinalShown bool

	Achievements *Achievements
}

// NewGameState creates the pre-start state
func NewGameState() *GameState {
	return &GameState{
		Phase:        PhaseIdle,
		Level:        1,
		Lives:        constants.MaxLives,
		Achievements: NewAchievements(),
	}
}

// CanTransition checks if a phase transition is valid
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// TransitionPhase attempts to transition to a new phase with validation
// Returns true if transition succeeded, false if transition is invalid
func (gs *GameState) TransitionPhase(to GamePhase) bool {
	if !gs.CanTransition(gs.Phase, to) {
		return false
	}
	gs.Phase = to
	return true
}

// IsRunning reports whether the loop should advance entities
func (gs *GameState) IsRunning() bool {
	return gs.Phase == PhaseRunning
}

// AddScore applies a delta and clamps at zero
func (gs *GameState) AddScore(delta int) {
	gs.Score += delta
	if gs.Score < 0 {
		gs.Score = 0
	}
}

// SetLives stores lives clamped to [0, MaxLives]
func (gs *GameState) SetLives(n int) {
	if n < 0 {
		n = 0
	} else if n > constants.MaxLives {
		n = constants.MaxLives
	}
	gs.Lives = n
}

// Achievements is an append-only set of earned titles in unlock order
type Achievements struct {
	titles []string
	seen   map[string]struct{}
}

// NewAchievements creates an empty set
func NewAchievements() *Achievements {
	return &Achievements{seen: make(map[string]struct{})}
}

// Add records a title, returning false if it was already earned
func (a *Achievements) Add(title string) bool {
	if _, ok := a.seen[title]; ok {
		return false
	}
	a.seen[title] = struct{}{}
	a.titles = append(a.titles, title)
	return true
}

// Has reports whether a title was earned
func (a *Achievements) Has(title string) bool {
	_, ok := a.seen[title]
	return ok
}

// Len returns the number of earned titles
func (a *Achievements) Len() int {
	return len(a.titles)
}

// Titles returns a copy of earned titles in unlock order
func (a *Achievements) Titles() []string {
	out := make([]string, len(a.titles))
	copy(out, a.titles)
	return out
}
