package systems

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/events"
)

// transition moves the phase and announces it; invalid edges are rejected silently
func transition(ctx *engine.GameContext, to engine.GamePhase) bool {
	from := ctx.State.Phase
	if !ctx.State.TransitionPhase(to) {
		return false
	}
	ctx.PushEvent(events.EventPhaseChanged, &events.PhasePayload{From: from.String(), To: to.String()})
	return true
}

// StartGame begins a round from Idle: full lives, fresh spawn chains, delayed fake opponent
func StartGame(ctx *engine.GameContext) bool {
	if !transition(ctx, engine.PhaseRunning) {
		return false
	}
	state := ctx.State
	state.SetLives(constants.MaxLives)
	state.FinalShown = false
	ctx.RoundID = uuid.NewString()
	ctx.Epoch++
	log.Printf("round %s: start (attempts=%d difficulty=%s)", ctx.RoundID, state.Attempts, ctx.Troll.Difficulty)

	ctx.EmitLives()
	ctx.EmitScore()
	ctx.Message(content.GameStart)
	StartSpawners(ctx)

	round := ctx.RoundID
	ctx.After(constants.MultiplayerJoinDelay, func() {
		if ctx.RoundID != round || ctx.State.Phase == engine.PhaseGameOver || ctx.State.Phase == engine.PhaseIdle {
			return
		}
		SetMultiplayer(ctx, true)
		ctx.Message(content.MultiplayerMsg)
	})
	return true
}

// PauseGame toggles Running and Paused
// Resuming opens a new epoch and restarts the spawn chains
func PauseGame(ctx *engine.GameContext) bool {
	switch ctx.State.Phase {
	case engine.PhaseRunning:
		transition(ctx, engine.PhasePaused)
		ctx.Message(content.PauseMsg)
		ctx.SetFlag(events.FlagFakeLag, true)
		return true
	case engine.PhasePaused:
		transition(ctx, engine.PhaseRunning)
		ctx.Message(content.ResumeMsg)
		ctx.SetFlag(events.FlagFakeLag, ctx.Troll.FakeLagActive)
		ctx.Epoch++
		StartSpawners(ctx)
		return true
	}
	return false
}

// HandlePlayerDeath costs a life, or ends the round on the last one
func HandlePlayerDeath(ctx *engine.GameContext) {
	state := ctx.State
	if state.Lives > 1 {
		state.SetLives(state.Lives - 1)
		ctx.EmitLives()
		ctx.PushEvent(events.EventLifeLost, &events.LivesPayload{Lives: state.Lives})
		ctx.Message(content.LifeLost)
		ctx.PlaySound(events.SoundError)
		return
	}
	GameOver(ctx)
}

// GameOver ends the round: counts the attempt, clears the field and shows the fake ending
func GameOver(ctx *engine.GameContext) {
	if !transition(ctx, engine.PhaseGameOver) {
		return
	}
	state := ctx.State
	state.Attempts++
	state.SetLives(0)
	log.Printf("round %s: game over (score=%d level=%d attempts=%d)", ctx.RoundID, state.Score, state.Level, state.Attempts)

	ctx.EmitScore()
	ctx.EmitLives()
	ctx.ClearEntities()

	originX, originY := ctx.Player.X, ctx.Player.Y
	ctx.Player.Reset()
	CreateExplosion(ctx, originX+constants.ExplosionOffset, originY+constants.ExplosionOffset)

	SetMultiplayer(ctx, false)
	ctx.PushEvent(events.EventGameOver, &events.GameOverPayload{
		Score: state.Score,
		Taunt: content.Pick(ctx.Rand, content.TrollMessages),
	})
	ctx.PlaySound(events.SoundSarcastic)
	ctx.PulseFlag(events.FlagScreenShake, constants.ScreenShakeDuration)

	CheckDeathAchievements(ctx)
	ctx.PulseFlag(events.FlagGlitch, constants.GlitchDuration)
}

// CheckDeathAchievements unlocks the milestone title for the current attempt count, once
func CheckDeathAchievements(ctx *engine.GameContext) {
	a, ok := content.AchievementFor(ctx.State.Attempts)
	if !ok || !ctx.State.Achievements.Add(a.Title) {
		return
	}
	ctx.PushEvent(events.EventAchievement, &events.AchievementPayload{Title: a.Title, Description: a.Description})
}

// CreateExplosion radiates pooled particles from an origin
func CreateExplosion(ctx *engine.GameContext, x, y float64) {
	now := ctx.Now()
	for i := 0; i < constants.ExplosionParticleCount; i++ {
		idx, p, ok := ctx.Explosions.Acquire()
		if !ok {
			return
		}
		angle := 2 * math.Pi * float64(i) / constants.ExplosionParticleCount
		distance := constants.ExplosionMinDistance + ctx.Rand.Float64()*constants.ExplosionDistanceRange
		p.X, p.Y = x, y
		p.TargetX = x + math.Cos(angle)*distance
		p.TargetY = y + math.Sin(angle)*distance
		p.Born = now
		p.Lifetime = constants.ExplosionLifetime
		ctx.After(constants.ExplosionLifetime, func() { ctx.Explosions.Release(idx) })
	}
}

// Acknowledge advances the game-over screens: fake, then final, then back to Idle
func Acknowledge(ctx *engine.GameContext) {
	state := ctx.State
	switch state.Phase {
	case engine.PhaseIdle:
		StartGame(ctx)
	case engine.PhaseGameOver:
		if !state.FinalShown {
			ShowFinalGameOver(ctx)
			return
		}
		RestartGame(ctx)
	}
}

// ShowFinalGameOver replaces the fake ending with the real one
func ShowFinalGameOver(ctx *engine.GameContext) {
	ctx.State.FinalShown = true
	ctx.PushEvent(events.EventFinalGameOver, nil)
	ctx.PulseFlag(events.FlagGlitch, constants.FinalGlitchDuration)
}

// RestartGame returns to Idle with a fresh score; attempts and achievements persist
func RestartGame(ctx *engine.GameContext) bool {
	if !transition(ctx, engine.PhaseIdle) {
		return false
	}
	state := ctx.State
	state.Score = 0
	state.Level = 1
	state.SetLives(constants.MaxLives)
	state.FinalShown = false

	ctx.Troll.EasyModeActive = false
	if ctx.Troll.ControlsInverted {
		ctx.Troll.ControlsInverted = false
		ctx.SetFlag(events.FlagInverted, false)
	}

	ctx.EmitScore()
	ctx.EmitLives()
	ctx.Message(content.RestartMsg)
	return true
}

// ResetGame wipes progress including attempts and drops back to Idle from any phase
func ResetGame(ctx *engine.GameContext) {
	if ctx.State.Phase != engine.PhaseIdle {
		transition(ctx, engine.PhaseIdle)
	}
	state := ctx.State
	state.Score = 0
	state.Level = 1
	state.Attempts = 0
	state.FinalShown = false
	state.SetLives(constants.MaxLives)
	ctx.Epoch++

	ctx.Player.Reset()
	ctx.ClearEntities()
	SetMultiplayer(ctx, false)
	log.Printf("round %s: progress reset", ctx.RoundID)

	ctx.EmitScore()
	ctx.EmitLives()
	ctx.Message(content.SaveDone)
}

// LevelUp increments the level and fires the level 5 and level 10 one-shots
func LevelUp(ctx *engine.GameContext) {
	state := ctx.State
	state.Level++
	ctx.EmitScore()
	ctx.PushEvent(events.EventLevelUp, &events.LevelPayload{Level: state.Level})
	ctx.Message(fmt.Sprintf(content.LevelUpFormat, state.Level))

	switch state.Level {
	case constants.CountdownLevel:
		StartCountdown(ctx)
	case constants.UltimateLevel:
		ActivateUltimateMode(ctx)
	}
}

// StartCountdown runs the fake last-chance countdown
// Labels step down once per second, then a joke is held before the closing taunt
func StartCountdown(ctx *engine.GameContext) {
	for i := 0; i < constants.CountdownStart; i++ {
		label := strconv.Itoa(constants.CountdownStart - i)
		ctx.After(constants.CountdownStep*time.Duration(i), func() {
			ctx.PushEvent(events.EventCountdown, &events.CountdownPayload{Label: label, Visible: true})
		})
	}
	jokeAt := constants.CountdownStep * constants.CountdownStart
	ctx.After(jokeAt, func() {
		ctx.PushEvent(events.EventCountdown, &events.CountdownPayload{Label: content.CountdownJoke, Visible: true})
	})
	ctx.After(jokeAt+constants.CountdownHold, func() {
		ctx.PushEvent(events.EventCountdown, &events.CountdownPayload{Visible: false})
		ctx.Message(content.CountdownTaunt)
	})
}

// ActivateUltimateMode doubles every live entity's speed, makes all pickups flee and forces inversion on
func ActivateUltimateMode(ctx *engine.GameContext) {
	log.Printf("round %s: ultimate mode", ctx.RoundID)
	ctx.Message(content.UltimateMode)
	SetInversion(ctx, true)
	for _, o := range ctx.Obstacles {
		o.Speed *= constants.UltimateSpeedFactor
	}
	for _, c := range ctx.Collectibles {
		c.Speed *= constants.UltimateSpeedFactor
		c.Fleeing = true
	}
}

// SetMultiplayer shows or hides the fake opponent
func SetMultiplayer(ctx *engine.GameContext, on bool) {
	if ctx.MultiplayerActive == on {
		return
	}
	ctx.MultiplayerActive = on
	ctx.PushEvent(events.EventMultiplayer, &events.TogglePayload{On: on})
}
