package systems

import (
	"fmt"
	"log"

	"github.com/lixenwraith/troll-dodge/components"
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/events"
)

// FakeQuit refuses to quit: starts or resumes the round and speeds up every obstacle
func FakeQuit(ctx *engine.GameContext) {
	ctx.Message(content.QuitMsg)
	switch ctx.State.Phase {
	case engine.PhaseIdle:
		StartGame(ctx)
	case engine.PhasePaused:
		PauseGame(ctx)
	}
	for _, o := range ctx.Obstacles {
		o.Speed *= constants.FakeQuitSpeedFactor
	}
}

// ActivateEasyMode makes everything harder; live entities are affected only while running
func ActivateEasyMode(ctx *engine.GameContext) {
	ctx.Troll.EasyModeActive = true
	ctx.Message(content.EasyModeMsg)
	if !ctx.State.IsRunning() {
		return
	}
	for _, o := range ctx.Obstacles {
		o.Speed *= constants.EasyModeSpeedFactor
		if o.Kind == components.ObstacleNormal {
			o.Kind = components.ObstacleColorChanging
		}
	}
	ToggleInversion(ctx)
	for _, c := range ctx.Collectibles {
		c.Fleeing = true
	}
}

// FakeSave pretends to save, then wipes all progress after a delay
func FakeSave(ctx *engine.GameContext) {
	ctx.Message(content.SaveStart)
	ctx.After(constants.FakeSaveDelay, func() { ResetGame(ctx) })
}

// ToggleSettings opens or closes the settings panel
func ToggleSettings(ctx *engine.GameContext) {
	ctx.SettingsOpen = !ctx.SettingsOpen
	emitSettings(ctx)
	if ctx.SettingsOpen {
		ctx.Message(content.SettingsOpened)
	}
}

// SetDifficulty changes the difficulty and announces it, truthfully or not
func SetDifficulty(ctx *engine.GameContext, d engine.Difficulty) {
	ctx.Message(content.DifficultyMessage(d.String()))
	ctx.Troll.Difficulty = d
	log.Printf("difficulty set to %s", d)
	emitSettings(ctx)
}

// ToggleDarkModeSetting flips dark mode from the settings panel
func ToggleDarkModeSetting(ctx *engine.GameContext) {
	SetDarkMode(ctx, !ctx.Troll.DarkMode)
	emitSettings(ctx)
}

// ToggleColorBlind flips the colorblind palette
func ToggleColorBlind(ctx *engine.GameContext) {
	troll := ctx.Troll
	troll.ColorBlindMode = !troll.ColorBlindMode
	ctx.SetFlag(events.FlagColorBlind, troll.ColorBlindMode)
	if troll.ColorBlindMode {
		ctx.Message(content.ColorBlindOn)
	} else {
		ctx.Message(content.ColorBlindOff)
	}
	emitSettings(ctx)
}

// AdjustVolume moves the fake volume slider; it only ever affects the sound manager gain
func AdjustVolume(ctx *engine.GameContext, delta int) {
	v := ctx.Volume + delta
	if v < 0 {
		v = 0
	} else if v > 100 {
		v = 100
	}
	ctx.Volume = v
	ctx.PushEvent(events.EventVolume, &events.VolumePayload{Volume: v})
	ctx.Message(fmt.Sprintf(content.VolumeFormat, v))
	emitSettings(ctx)
}

func emitSettings(ctx *engine.GameContext) {
	ctx.PushEvent(events.EventSettings, &events.SettingsPayload{
		Visible:    ctx.SettingsOpen,
		Difficulty: ctx.Troll.Difficulty.String(),
		DarkMode:   ctx.Troll.DarkMode,
		ColorBlind: ctx.Troll.ColorBlindMode,
		Volume:     ctx.Volume,
	})
}

// ToggleRanking shows or hides the fake leaderboard with the current score pinned last
func ToggleRanking(ctx *engine.GameContext) {
	ctx.RankingVisible = !ctx.RankingVisible
	ctx.PushEvent(events.EventRanking, &events.RankingPayload{Visible: ctx.RankingVisible, Score: ctx.State.Score})
	if ctx.RankingVisible {
		ctx.Message(content.RankingShown)
	}
}

// ShowHelp offers a useless tip, then punishes the request
// One roll: inversion toggle, glitch, or a short fake lag
func ShowHelp(ctx *engine.GameContext) {
	ctx.Message(content.Pick(ctx.Rand, content.HelpMessages))
	roll := ctx.Rand.Float64()
	switch {
	case roll < constants.HelpInversionRoll:
		ToggleInversion(ctx)
	case roll < constants.HelpGlitchRoll:
		ctx.PulseFlag(events.FlagGlitch, constants.GlitchDuration)
		ctx.Message(content.HelpGlitch)
	default:
		// The banner stays up if a score-triggered lag is still running
		ctx.SetFlag(events.FlagFakeLag, true)
		ctx.After(constants.HelpLagDuration, func() {
			ctx.SetFlag(events.FlagFakeLag, ctx.Troll.FakeLagActive)
		})
	}
}

// MaybeFakeCursor occasionally shows a decoy cursor near a pointer position in play-area pixels
func MaybeFakeCursor(ctx *engine.GameContext, x, y float64) bool {
	if !ctx.Chance(constants.FakeCursorChance) {
		return false
	}
	fx := x + ctx.Rand.Float64()*constants.FakeCursorJitter - constants.FakeCursorJitter/2
	fy := y + ctx.Rand.Float64()*constants.FakeCursorJitter - constants.FakeCursorJitter/2
	ctx.PushEvent(events.EventFakeCursor, &events.CursorPayload{X: fx, Y: fy, Visible: true})
	ctx.After(constants.FakeCursorDuration, func() {
		ctx.PushEvent(events.EventFakeCursor, &events.CursorPayload{Visible: false})
	})
	return true
}

// Taunt shows an anti-cheat line; no behavior is blocked
func Taunt(ctx *engine.GameContext, text string) {
	ctx.Message(text)
}

// FocusChanged taunts a player leaving a running game and anyone returning
func FocusChanged(ctx *engine.GameContext, focused bool) {
	switch {
	case !focused && ctx.State.IsRunning():
		ctx.Message(content.TauntFocusLost)
	case focused:
		ctx.Message(content.TauntFocusBack)
	}
}

// StartMotivationalTimer rolls a taunt every interval while running, for the life of the process
func StartMotivationalTimer(ctx *engine.GameContext) {
	ctx.After(constants.MotivationalInterval, func() {
		if ctx.State.IsRunning() && ctx.Chance(constants.MotivationalChance) {
			ctx.Message(content.Pick(ctx.Rand, content.MotivationalMessages))
		}
		StartMotivationalTimer(ctx)
	})
}
