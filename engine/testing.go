package engine

import (
	"time"

	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/events"
)

// NewTestGameContext creates a context on a mock clock and scripted dice
// The clock starts at a fixed instant so cooldown math is reproducible
func NewTestGameContext(rolls ...float64) (*GameContext, *MockTimeProvider, *ScriptedRand) {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rng := NewScriptedRand(rolls...)
	ctx := NewGameContext(constants.DefaultPlayWidth, constants.DefaultPlayHeight, clock, rng, DifficultyNormal)
	return ctx, clock, rng
}

// DrainEvents consumes queued events and returns those of type t (all when t < 0)
func DrainEvents(ctx *GameContext, t events.EventType) []events.GameEvent {
	var out []events.GameEvent
	for _, ev := range ctx.Events.Consume() {
		if t < 0 || ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
