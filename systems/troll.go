package systems

import (
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/events"
)

// TrollSystem applies the per-tick random perturbations
//
// Checks run in a fixed order, each independent of the others:
//  1. Control inversion (cooldown-gated, difficulty-scaled)
//  2. Hidden wall relocation
//  3. Fake lag (score-gated, no roll)
//  4. Dark-mode flip
//  5. Control freeze
type TrollSystem struct{}

// NewTrollSystem creates the perturbation engine
func NewTrollSystem() *TrollSystem {
	return &TrollSystem{}
}

// Update evaluates all perturbations once
func (s *TrollSystem) Update(ctx *engine.GameContext) {
	troll := ctx.Troll
	now := ctx.Now()

	if now.Sub(troll.LastTrollTime) >= constants.InversionCooldown && ctx.Chance(inversionChance(troll.Difficulty)) {
		ToggleInversion(ctx)
	}

	if ctx.Chance(constants.WallRelocateRoll) {
		RelocateWall(ctx)
	}

	if ctx.State.Score >= troll.LastLagScore+constants.LagScoreStep && !troll.FakeLagActive {
		StartFakeLag(ctx)
	}

	if ctx.Chance(darkFlipChance(troll.Difficulty)) {
		SetDarkMode(ctx, !troll.DarkMode)
	}

	if ctx.Chance(constants.FreezeChance) {
		FreezeControls(ctx)
	}
}

func inversionChance(d engine.Difficulty) float64 {
	switch d {
	case engine.DifficultyEasy:
		return constants.InversionChanceEasy
	case engine.DifficultyHard:
		return constants.InversionChanceHard
	default:
		return constants.InversionChanceNormal
	}
}

func darkFlipChance(d engine.Difficulty) float64 {
	if d == engine.DifficultyHard {
		return constants.DarkFlipChanceHard
	}
	return constants.DarkFlipChanceOther
}

// ToggleInversion flips the control mapping and resets the cooldown anchor
func ToggleInversion(ctx *engine.GameContext) {
	SetInversion(ctx, !ctx.Troll.ControlsInverted)
}

// SetInversion forces the control mapping and resets the cooldown anchor
func SetInversion(ctx *engine.GameContext, on bool) {
	troll := ctx.Troll
	troll.LastTrollTime = ctx.Now()
	if troll.ControlsInverted == on {
		return
	}
	troll.ControlsInverted = on
	if on {
		ctx.Message(content.InversionOn)
	} else {
		ctx.Message(content.InversionOff)
	}
	ctx.SetFlag(events.FlagInverted, on)
}

// RelocateWall moves the hidden wall to a random spot inside the play area
func RelocateWall(ctx *engine.GameContext) {
	w := &ctx.Wall
	w.Top = ctx.Rand.Float64() * (ctx.PlayHeight - constants.WallTopMargin)
	w.Right = ctx.Rand.Float64()*(ctx.PlayWidth-constants.WallRightMargin) + constants.WallRightMinimum
}

// StartFakeLag shows the connection-lost banner and records the score anchor
func StartFakeLag(ctx *engine.GameContext) {
	troll := ctx.Troll
	troll.FakeLagActive = true
	troll.LastLagScore = ctx.State.Score
	ctx.SetFlag(events.FlagFakeLag, true)
	ctx.After(constants.FakeLagDuration, func() {
		troll.FakeLagActive = false
		ctx.SetFlag(events.FlagFakeLag, false)
		ctx.Message(content.LagRestored)
	})
}

// SetDarkMode applies the palette switch and announces it
func SetDarkMode(ctx *engine.GameContext, on bool) {
	ctx.Troll.DarkMode = on
	ctx.SetFlag(events.FlagDarkMode, on)
	if on {
		ctx.Message(content.DarkModeOn)
	} else {
		ctx.Message(content.DarkModeOff)
	}
}

// FreezeControls blocks player movement for the freeze window
// A freeze already in progress is left alone
func FreezeControls(ctx *engine.GameContext) {
	troll := ctx.Troll
	if troll.ControlsFrozen {
		return
	}
	troll.ControlsFrozen = true
	ctx.SetFlag(events.FlagFrozen, true)
	ctx.Message(content.FreezeOn)
	ctx.After(constants.FreezeDuration, func() {
		troll.ControlsFrozen = false
		ctx.SetFlag(events.FlagFrozen, false)
		ctx.Message(content.FreezeOff)
	})
}
