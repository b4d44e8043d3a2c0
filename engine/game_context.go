package engine

import (
	"time"

	"github.com/lixenwraith/troll-dodge/components"
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/events"
)

// GameContext holds all game state for one process
// Every system receives it explicitly; nothing in the core is package-global
type GameContext struct {
	// Progression and troll perturbation state
	State *GameState
	Troll *TrollState

	// Entities
	Player       components.Player
	Obstacles    []*components.Obstacle
	Collectibles []*components.Collectible
	Wall         components.Wall

	// Pooled transient visuals
	Trails     *components.ParticlePool
	Explosions *components.ParticlePool

	// Play area in pixels
	PlayWidth, PlayHeight float64

	// Injected collaborators
	TimeProvider TimeProvider
	Rand         Rand
	Scheduler    *Scheduler
	Events       *events.EventQueue

	// RoundID tags log lines for the current round
	RoundID string

	// Epoch changes whenever the loop (re)starts; self-rescheduling chains compare it to stop stale copies
	Epoch uint64

	// Cosmetic troll surfaces
	MultiplayerActive bool
	SettingsOpen      bool
	RankingVisible    bool
	Volume            int

	frame  int64
	nextID components.EntityID
}

// NewGameContext creates a context with a fresh state and the given collaborators
func NewGameContext(width, height float64, tp TimeProvider, rng Rand, difficulty Difficulty) *GameContext {
	return &GameContext{
		State:        NewGameState(),
		Troll:        NewTrollState(difficulty),
		Player:       components.NewPlayer(),
		Wall:         components.NewWall(),
		Trails:       components.NewParticlePool(components.ParticleTrail, constants.ParticlePoolSize),
		Explosions:   components.NewParticlePool(components.ParticleExplosion, constants.ParticlePoolSize),
		PlayWidth:    width,
		PlayHeight:   height,
		TimeProvider: tp,
		Rand:         rng,
		Scheduler:    NewScheduler(),
		Events:       events.NewEventQueue(),
		Volume:       50,
	}
}

// Now returns the context clock
func (g *GameContext) Now() time.Time {
	return g.TimeProvider.Now()
}

// Chance rolls once and reports whether the roll landed under p
func (g *GameContext) Chance(p float64) bool {
	return g.Rand.Float64() < p
}

// NextEntityID allocates a handle for a new entity
func (g *GameContext) NextEntityID() components.EntityID {
	g.nextID++
	return g.nextID
}

// Frame returns the current frame number
func (g *GameContext) Frame() int64 {
	return g.frame
}

// IncrementFrame advances and returns the frame number
func (g *GameContext) IncrementFrame() int64 {
	g.frame++
	return g.frame
}

// After schedules fn on the loop goroutine after d
func (g *GameContext) After(d time.Duration, fn func()) {
	g.Scheduler.At(g.Now().Add(d), fn)
}

// ===== EVENT HELPERS =====

// PushEvent queues an effect event stamped with frame and time
func (g *GameContext) PushEvent(t events.EventType, payload any) {
	g.Events.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     g.frame,
		Timestamp: g.Now(),
	})
}

// Message shows text for the default duration
func (g *GameContext) Message(text string) {
	g.MessageFor(text, constants.MessageDuration)
}

// MessageFor shows text for d
func (g *GameContext) MessageFor(text string, d time.Duration) {
	g.PushEvent(events.EventMessage, &events.MessagePayload{Text: text, Duration: d})
}

// SetFlag emits a visual flag toggle
func (g *GameContext) SetFlag(flag events.VisualFlag, on bool) {
	g.PushEvent(events.EventVisualFlag, &events.VisualFlagPayload{Flag: flag, On: on})
}

// PulseFlag turns a flag on now and off after d
func (g *GameContext) PulseFlag(flag events.VisualFlag, d time.Duration) {
	g.SetFlag(flag, true)
	g.After(d, func() { g.SetFlag(flag, false) })
}

// PlaySound requests a sound effect
func (g *GameContext) PlaySound(kind events.SoundKind) {
	g.PushEvent(events.EventSound, &events.SoundPayload{Kind: kind})
}

// EmitScore syncs the numeric HUD
func (g *GameContext) EmitScore() {
	g.PushEvent(events.EventScoreChanged, &events.ScorePayload{
		Score:    g.State.Score,
		Attempts: g.State.Attempts,
		Level:    g.State.Level,
	})
}

// EmitLives syncs the lives display
func (g *GameContext) EmitLives() {
	g.PushEvent(events.EventLivesChanged, &events.LivesPayload{Lives: g.State.Lives})
}

// ===== ENTITY HELPERS =====

// ClearEntities drops every live obstacle and collectible
func (g *GameContext) ClearEntities() {
	g.Obstacles = g.Obstacles[:0]
	g.Collectibles = g.Collectibles[:0]
}

// RemoveObstacle detaches one obstacle by ID, returning false if already gone
func (g *GameContext) RemoveObstacle(id components.EntityID) bool {
	for i, o := range g.Obstacles {
		if o.ID == id {
			g.Obstacles = append(g.Obstacles[:i], g.Obstacles[i+1:]...)
			return true
		}
	}
	return false
}

// StepForDifficulty returns the player move distance
func (g *GameContext) StepForDifficulty() float64 {
	switch g.Troll.Difficulty {
	case DifficultyEasy:
		return constants.PlayerStepEasy
	case DifficultyHard:
		return constants.PlayerStepHard
	default:
		return constants.PlayerStepNormal
	}
}
