package systems

import (
	"github.com/lixenwraith/troll-dodge/components"
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/events"
	"github.com/lixenwraith/troll-dodge/vmath"
)

// CollisionSystem resolves player contact with obstacles, collectibles and the hidden wall
type CollisionSystem struct{}

// NewCollisionSystem creates the collision resolver
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Update resolves all contacts for the current positions
func (s *CollisionSystem) Update(ctx *engine.GameContext) {
	CheckCollisions(ctx)
}

// CheckCollisions tests the player box against every live entity and applies effects
// Resolution stops as soon as the round ends
func CheckCollisions(ctx *engine.GameContext) {
	player := ctx.Player.Bounds()

	// Obstacles are resolved against a snapshot; consumed ones are detached by ID
	snapshot := make([]*components.Obstacle, len(ctx.Obstacles))
	copy(snapshot, ctx.Obstacles)
	for _, o := range snapshot {
		if !vmath.Collide(player, o.Bounds(ctx.PlayWidth)) {
			continue
		}
		switch o.Kind {
		case components.ObstacleDark:
			SetDarkMode(ctx, true)
			ctx.After(constants.DarkObstacleDuration, func() { SetDarkMode(ctx, false) })
			ctx.RemoveObstacle(o.ID)
		case components.ObstacleLightning:
			ctx.PulseFlag(events.FlagScreenShake, constants.ScreenShakeDuration)
			ctx.RemoveObstacle(o.ID)
		default:
			HandlePlayerDeath(ctx)
		}
		if !ctx.State.IsRunning() {
			return
		}
	}

	var picked []*components.Collectible
	live := ctx.Collectibles[:0]
	for _, c := range ctx.Collectibles {
		if vmath.Collide(player, c.Bounds(ctx.PlayWidth)) {
			picked = append(picked, c)
			continue
		}
		live = append(live, c)
	}
	clearTail(len(live), ctx.Collectibles)
	ctx.Collectibles = live
	for _, c := range picked {
		CollectPoint(ctx, c.IsTroll)
	}

	if vmath.Collide(player, ctx.Wall.Bounds(ctx.PlayWidth)) && ctx.Chance(constants.WallDeathChance) {
		RevealWall(ctx)
		ctx.Message(content.WallHit)
		HandlePlayerDeath(ctx)
	}
}

// CollectPoint applies a pickup: troll pickups cost points and may invert controls
// Any pickup landing on a positive multiple of PointsPerLevel levels up
func CollectPoint(ctx *engine.GameContext, isTroll bool) {
	state := ctx.State
	if isTroll {
		state.AddScore(-constants.TrollPenalty)
		ctx.PlaySound(events.SoundError)
		ctx.Message(content.TrollPickup)
		if ctx.Chance(constants.TrollInversionChance) {
			ToggleInversion(ctx)
		}
	} else {
		state.AddScore(constants.PointsPerCollectible)
		ctx.PlaySound(events.SoundCollect)
		ctx.Message(content.Pick(ctx.Rand, content.CollectMessages))
	}

	ctx.EmitScore()
	if state.Score > 0 && state.Score%constants.PointsPerLevel == 0 {
		LevelUp(ctx)
	}
}

// RevealWall flashes the hidden wall for the reveal window
func RevealWall(ctx *engine.GameContext) {
	ctx.Wall.Revealed = true
	ctx.SetFlag(events.FlagWallReveal, true)
	ctx.After(constants.WallRevealDuration, func() {
		ctx.Wall.Revealed = false
		ctx.SetFlag(events.FlagWallReveal, false)
	})
}
