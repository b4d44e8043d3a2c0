package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/troll-dodge/components"
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/events"
)

func TestFakeQuitStartsIdleGame(t *testing.T) {
	ctx, _, _ := engine.NewTestGameContext()
	FakeQuit(ctx)
	if !ctx.State.IsRunning() {
		t.Fatal("fake quit should start an idle game")
	}
	if len(ctx.Obstacles) != 1 {
		t.Fatalf("expected one spawned obstacle, got %d", len(ctx.Obstacles))
	}
	speed := ctx.Obstacles[0].Speed
	FakeQuit(ctx)
	if got := ctx.Obstacles[0].Speed; got != speed*1.2 {
		t.Errorf("speed = %v, want %v", got, speed*1.2)
	}
}

func TestEasyModeWhileRunning(t *testing.T) {
	ctx, _, _ := newRunningContext(t)
	o := &components.Obstacle{ID: 1, Speed: 2, Kind: components.ObstacleNormal}
	c := &components.Collectible{ID: 2, Speed: 2}
	ctx.Obstacles = append(ctx.Obstacles, o)
	ctx.Collectibles = append(ctx.Collectibles, c)

	ActivateEasyMode(ctx)

	if !ctx.Troll.EasyModeActive {
		t.Fatal("easy mode flag not set")
	}
	if o.Speed != 4 || o.Kind != components.ObstacleColorChanging {
		t.Errorf("obstacle not sped up: %+v", o)
	}
	if !c.Fleeing {
		t.Error("collectible not fleeing")
	}
	if !ctx.Troll.ControlsInverted {
		t.Error("easy mode should toggle inversion")
	}
}

func TestEasyModeWhileIdle(t *testing.T) {
	ctx, _, _ := engine.NewTestGameContext()
	ActivateEasyMode(ctx)
	if !ctx.Troll.EasyModeActive || ctx.Troll.ControlsInverted {
		t.Error("idle easy mode should only set the flag")
	}
}

func TestHelpLagKeepsScoreLagBanner(t *testing.T) {
	ctx, clock, _ := newRunningContext(t, 0.0, 0.9)
	ShowHelp(ctx)
	StartFakeLag(ctx)
	engine.DrainEvents(ctx, -1)

	lagFlags := func() []bool {
		var out []bool
		for _, ev := range engine.DrainEvents(ctx, events.EventVisualFlag) {
			if p := ev.Payload.(*events.VisualFlagPayload); p.Flag == events.FlagFakeLag {
				out = append(out, p.On)
			}
		}
		return out
	}

	advance(ctx, clock, constants.HelpLagDuration)
	if got := lagFlags(); len(got) != 1 || !got[0] {
		t.Fatalf("help lag expiry during score lag: flags %v, want [true]", got)
	}

	advance(ctx, clock, constants.FakeLagDuration-constants.HelpLagDuration)
	if got := lagFlags(); len(got) != 1 || got[0] {
		t.Errorf("score lag expiry: flags %v, want [false]", got)
	}
}

func TestShowHelpBranches(t *testing.T) {
	tests := []struct {
		name  string
		roll  float64
		check func(t *testing.T, ctx *engine.GameContext, flags []events.GameEvent, msgs []string)
	}{
		{"inversion", 0.1, func(t *testing.T, ctx *engine.GameContext, _ []events.GameEvent, _ []string) {
			if !ctx.Troll.ControlsInverted {
				t.Error("expected inversion")
			}
		}},
		{"glitch", 0.45, func(t *testing.T, _ *engine.GameContext, flags []events.GameEvent, msgs []string) {
			if flags[0].Payload.(*events.VisualFlagPayload).Flag != events.FlagGlitch {
				t.Errorf("expected glitch flag, got %v", flags[0].Payload)
			}
			if !containsText(msgs, content.HelpGlitch) {
				t.Error("glitch taunt missing")
			}
		}},
		{"lag", 0.9, func(t *testing.T, ctx *engine.GameContext, flags []events.GameEvent, _ []string) {
			if flags[0].Payload.(*events.VisualFlagPayload).Flag != events.FlagFakeLag {
				t.Errorf("expected lag flag, got %v", flags[0].Payload)
			}
			if ctx.Troll.FakeLagActive {
				t.Error("help lag must not arm the score-based lag")
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := newRunningContext(t, 0.0, tt.roll)
			ShowHelp(ctx)
			all := engine.DrainEvents(ctx, -1)
			var flags []events.GameEvent
			var msgs []string
			for _, ev := range all {
				switch p := ev.Payload.(type) {
				case *events.VisualFlagPayload:
					flags = append(flags, ev)
				case *events.MessagePayload:
					msgs = append(msgs, p.Text)
				}
			}
			if len(msgs) == 0 || msgs[0] != content.HelpMessages[0] {
				t.Fatalf("expected first help tip, got %v", msgs)
			}
			tt.check(t, ctx, flags, msgs)
		})
	}
}

func TestFakeCursor(t *testing.T) {
	ctx, clock, _ := newRunningContext(t, 0.06)
	if MaybeFakeCursor(ctx, 100, 100) {
		t.Fatal("cursor shown on roll 0.06")
	}

	ctx.Rand.(*engine.ScriptedRand).Push(0.01, 0.0, 1.0)
	if !MaybeFakeCursor(ctx, 100, 100) {
		t.Fatal("cursor not shown on roll 0.01")
	}
	evs := engine.DrainEvents(ctx, events.EventFakeCursor)
	p := evs[0].Payload.(*events.CursorPayload)
	if !p.Visible || p.X != 50 || p.Y != 150 {
		t.Errorf("unexpected cursor %+v", p)
	}

	advance(ctx, clock, time.Second)
	evs = engine.DrainEvents(ctx, events.EventFakeCursor)
	if len(evs) != 1 || evs[0].Payload.(*events.CursorPayload).Visible {
		t.Error("cursor not hidden after 1s")
	}
}

func TestAdjustVolumeClamps(t *testing.T) {
	ctx, _, _ := engine.NewTestGameContext()
	AdjustVolume(ctx, 80)
	if ctx.Volume != 100 {
		t.Errorf("volume = %d, want 100", ctx.Volume)
	}
	AdjustVolume(ctx, -150)
	if ctx.Volume != 0 {
		t.Errorf("volume = %d, want 0", ctx.Volume)
	}
	if v := engine.DrainEvents(ctx, events.EventVolume); len(v) != 2 {
		t.Errorf("expected 2 volume events, got %d", len(v))
	}
}

func TestSettingsAndRanking(t *testing.T) {
	ctx, _, _ := engine.NewTestGameContext()
	ToggleSettings(ctx)
	SetDifficulty(ctx, engine.DifficultyHard)
	ToggleColorBlind(ctx)
	ToggleDarkModeSetting(ctx)

	settings := engine.DrainEvents(ctx, events.EventSettings)
	last := settings[len(settings)-1].Payload.(*events.SettingsPayload)
	if !last.Visible || last.Difficulty != "hard" || !last.ColorBlind || !last.DarkMode {
		t.Errorf("unexpected settings payload %+v", last)
	}
	if ctx.Troll.Difficulty != engine.DifficultyHard {
		t.Error("difficulty not applied")
	}

	ctx.State.Score = 30
	ToggleRanking(ctx)
	r := engine.DrainEvents(ctx, events.EventRanking)
	if p := r[0].Payload.(*events.RankingPayload); !p.Visible || p.Score != 30 {
		t.Errorf("unexpected ranking payload %+v", p)
	}
}

func TestMotivationalTimer(t *testing.T) {
	ctx, clock, rng := engine.NewTestGameContext()
	StartMotivationalTimer(ctx)

	advance(ctx, clock, 6*time.Second)
	if rng.Calls() != 0 {
		t.Fatalf("timer rolled while idle")
	}

	ctx.State.TransitionPhase(engine.PhaseRunning)
	rng.Push(0.1, 0.0)
	advance(ctx, clock, 6*time.Second)
	if !containsText(messages(ctx), content.MotivationalMessages[0]) {
		t.Error("expected motivational taunt")
	}
}

func TestFocusTaunts(t *testing.T) {
	ctx, _, _ := engine.NewTestGameContext()
	FocusChanged(ctx, false)
	if msgs := messages(ctx); len(msgs) != 0 {
		t.Errorf("idle focus loss should be quiet, got %v", msgs)
	}
	FocusChanged(ctx, true)
	if !containsText(messages(ctx), content.TauntFocusBack) {
		t.Error("focus return taunt missing")
	}
}

func TestMovePlayerInvertedAndClamped(t *testing.T) {
	ctx, _, _ := newRunningContext(t)
	ctx.Troll.ControlsInverted = true
	MovePlayer(ctx, DirLeft)
	if ctx.Player.X != 70 {
		t.Errorf("inverted left should move right, x=%v", ctx.Player.X)
	}

	ctx.Troll.ControlsInverted = false
	ctx.Player.X = 5
	MovePlayer(ctx, DirLeft)
	if ctx.Player.X != 0 {
		t.Errorf("expected clamp at 0, got %v", ctx.Player.X)
	}

	if ctx.Trails.Available() != 28 {
		t.Errorf("expected 2 trail particles in use, %d free", ctx.Trails.Available())
	}
}
