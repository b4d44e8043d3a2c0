package engine

import "testing"

// TestCanTransition tests the phase transition validation logic
func TestCanTransition(t *testing.T) {
	state := NewGameState()

	valid := map[GamePhase][]GamePhase{
		PhaseIdle:     {PhaseRunning},
		PhaseRunning:  {PhasePaused, PhaseGameOver, PhaseIdle},
		PhasePaused:   {PhaseRunning, PhaseIdle},
		PhaseGameOver: {PhaseIdle},
	}

	for from, tos := range valid {
		for _, to := range tos {
			if !state.CanTransition(from, to) {
				t.Errorf("Expected transition %s -> %s to be valid, but it was rejected", from, to)
			}
		}
	}

	invalid := []struct {
		from GamePhase
		to   GamePhase
		desc string
	}{
		{PhaseIdle, PhasePaused, "Idle -> Paused (nothing to pause)"},
		{PhaseIdle, PhaseGameOver, "Idle -> GameOver (round never started)"},
		{PhasePaused, PhaseGameOver, "Paused -> GameOver (no damage while paused)"},
		{PhaseGameOver, PhaseRunning, "GameOver -> Running (must acknowledge first)"},
		{PhaseGameOver, PhasePaused, "GameOver -> Paused"},
		{PhaseRunning, PhaseRunning, "Running -> Running (self loop)"},
	}

	for _, tc := range invalid {
		if state.CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition %s -> %s to be invalid, but it was allowed (%s)", tc.from, tc.to, tc.desc)
		}
	}
}

// TestTransitionPhase verifies the phase only changes on valid edges
func TestTransitionPhase(t *testing.T) {
	state := NewGameState()

	if state.TransitionPhase(PhasePaused) {
		t.Fatal("Idle -> Paused should be rejected")
	}
	if state.Phase != PhaseIdle {
		t.Fatalf("phase changed on rejected transition: %s", state.Phase)
	}

	steps := []GamePhase{PhaseRunning, PhasePaused, PhaseRunning, PhaseGameOver, PhaseIdle}
	for _, to := range steps {
		if !state.TransitionPhase(to) {
			t.Fatalf("transition to %s rejected from %s", to, state.Phase)
		}
		if state.Phase != to {
			t.Fatalf("expected phase %s, got %s", to, state.Phase)
		}
	}
}

func TestAddScoreClampsAtZero(t *testing.T) {
	state := NewGameState()
	state.AddScore(10)
	state.AddScore(-20)
	if state.Score != 0 {
		t.Errorf("expected score 0, got %d", state.Score)
	}
	state.AddScore(30)
	if state.Score != 30 {
		t.Errorf("expected score 30, got %d", state.Score)
	}
}

func TestSetLivesClamps(t *testing.T) {
	state := NewGameState()
	state.SetLives(-1)
	if state.Lives != 0 {
		t.Errorf("expected 0 lives, got %d", state.Lives)
	}
	state.SetLives(7)
	if state.Lives != 3 {
		t.Errorf("expected 3 lives, got %d", state.Lives)
	}
}

func TestAchievementsDedup(t *testing.T) {
	a := NewAchievements()
	if !a.Add("Primeira Morte") {
		t.Fatal("first add should succeed")
	}
	if a.Add("Primeira Morte") {
		t.Error("duplicate add should be rejected")
	}
	a.Add("Persistente")
	titles := a.Titles()
	if len(titles) != 2 || titles[0] != "Primeira Morte" || titles[1] != "Persistente" {
		t.Errorf("unexpected titles %v", titles)
	}
	titles[0] = "mutated"
	if !a.Has("Primeira Morte") {
		t.Error("Titles should return a copy")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"NORMAL", DifficultyNormal, false},
		{" hard ", DifficultyHard, false},
		{"", DifficultyNormal, false},
		{"medium", DifficultyNormal, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %s, want %s", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != "" {
				if back, _ := ParseDifficulty(got.String()); back != got {
					t.Errorf("round trip of %s failed", got)
				}
			}
		})
	}
}
