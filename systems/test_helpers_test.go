package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/troll-dodge/components"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/events"
)

// newRunningContext returns a context already in Running with no timers pending
func newRunningContext(t *testing.T, rolls ...float64) (*engine.GameContext, *engine.MockTimeProvider, *engine.ScriptedRand) {
	t.Helper()
	ctx, clock, rng := engine.NewTestGameContext(rolls...)
	if !ctx.State.TransitionPhase(engine.PhaseRunning) {
		t.Fatal("failed to enter Running")
	}
	return ctx, clock, rng
}

// advance moves the clock and fires due timers
func advance(ctx *engine.GameContext, clock *engine.MockTimeProvider, d time.Duration) {
	clock.Advance(d)
	ctx.Scheduler.RunDue(clock.Now())
}

// messages drains the queue and returns message texts in order
func messages(ctx *engine.GameContext) []string {
	var out []string
	for _, ev := range engine.DrainEvents(ctx, events.EventMessage) {
		out = append(out, ev.Payload.(*events.MessagePayload).Text)
	}
	return out
}

func containsText(list []string, text string) bool {
	for _, s := range list {
		if s == text {
			return true
		}
	}
	return false
}

// collectibleAtPlayer places a collectible whose box overlaps the player at its start position
func collectibleAtPlayer(ctx *engine.GameContext, isTroll bool) *components.Collectible {
	c := &components.Collectible{
		ID:      ctx.NextEntityID(),
		X:       ctx.PlayWidth - ctx.Player.X - 20,
		Top:     ctx.Player.Y,
		Size:    20,
		Speed:   2,
		IsTroll: isTroll,
	}
	ctx.Collectibles = append(ctx.Collectibles, c)
	return c
}

// obstacleAtPlayer places an obstacle of kind overlapping the player
func obstacleAtPlayer(ctx *engine.GameContext, kind components.ObstacleKind) *components.Obstacle {
	o := &components.Obstacle{
		ID:     ctx.NextEntityID(),
		Kind:   kind,
		X:      ctx.PlayWidth - ctx.Player.X - 30,
		Top:    ctx.Player.Y,
		Width:  30,
		Height: 30,
		Speed:  2,
	}
	ctx.Obstacles = append(ctx.Obstacles, o)
	return o
}
