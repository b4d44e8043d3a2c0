package systems

import (
	"time"

	"github.com/lixenwraith/troll-dodge/components"
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/engine"
)

// StartSpawners begins both self-rescheduling spawn chains for the current epoch
// Chains stop on their own once the game leaves Running or the epoch moves on
func StartSpawners(ctx *engine.GameContext) {
	epoch := ctx.Epoch
	spawnObstacleChain(ctx, epoch)
	spawnCollectibleChain(ctx, epoch)
}

func spawnObstacleChain(ctx *engine.GameContext, epoch uint64) {
	if ctx.Epoch != epoch || !ctx.State.IsRunning() {
		return
	}
	SpawnObstacle(ctx)
	ctx.After(ObstacleDelay(ctx.State.Level), func() { spawnObstacleChain(ctx, epoch) })
}

func spawnCollectibleChain(ctx *engine.GameContext, epoch uint64) {
	if ctx.Epoch != epoch || !ctx.State.IsRunning() {
		return
	}
	SpawnCollectible(ctx)
	delay := constants.CollectibleMinDelayMs + ctx.Rand.Float64()*constants.CollectibleDelayRangeMs
	ctx.After(time.Duration(delay*float64(time.Millisecond)), func() { spawnCollectibleChain(ctx, epoch) })
}

// ObstacleDelay returns the gap before the next obstacle for a level
func ObstacleDelay(level int) time.Duration {
	ms := constants.ObstacleBaseDelayMs - level*constants.ObstacleLevelDelayMs
	if ms < constants.ObstacleMinDelayMs {
		ms = constants.ObstacleMinDelayMs
	}
	return time.Duration(ms) * time.Millisecond
}

// SpawnObstacle materializes one obstacle at the entry edge
// Roll order: kind, width, height, top, speed
func SpawnObstacle(ctx *engine.GameContext) *components.Obstacle {
	kind := obstacleKind(ctx.Rand.Float64())
	width := constants.ObstacleMinWidth + ctx.Rand.Float64()*constants.ObstacleWidthRange
	height := constants.ObstacleMinHeight + ctx.Rand.Float64()*constants.ObstacleHeightRange
	top := ctx.Rand.Float64() * (ctx.PlayHeight - height - constants.ObstacleTopMargin)

	base := constants.ObstacleMinSpeed + ctx.Rand.Float64()*constants.ObstacleSpeedRange
	speed := base * speedMultiplier(ctx.Troll.Difficulty)
	if ctx.Troll.EasyModeActive {
		speed = base * constants.EasyModeSpeedFactor
	}

	o := &components.Obstacle{
		ID:     ctx.NextEntityID(),
		Kind:   kind,
		X:      constants.ObstacleSpawnX,
		Top:    top,
		Width:  width,
		Height: height,
		Speed:  speed,
	}
	ctx.Obstacles = append(ctx.Obstacles, o)
	return o
}

// SpawnCollectible materializes one pickup at the entry edge
// Roll order: troll, top, flee (normal and hard only), speed
func SpawnCollectible(ctx *engine.GameContext) *components.Collectible {
	isTroll := ctx.Chance(constants.TrollCollectibleChance)
	top := ctx.Rand.Float64() * (ctx.PlayHeight - constants.CollectibleTopMargin)

	fleeing := false
	switch ctx.Troll.Difficulty {
	case engine.DifficultyNormal:
		fleeing = ctx.Chance(constants.FleeChanceNormal)
	case engine.DifficultyHard:
		fleeing = ctx.Chance(constants.FleeChanceHard)
	}
	if ctx.Troll.EasyModeActive {
		fleeing = true
	}

	c := &components.Collectible{
		ID:      ctx.NextEntityID(),
		X:       constants.CollectibleSpawnX,
		Top:     top,
		Size:    constants.CollectibleSize,
		Speed:   constants.CollectibleMinSpeed + ctx.Rand.Float64()*constants.CollectibleSpeedRange,
		Fleeing: fleeing,
		IsTroll: isTroll,
	}
	ctx.Collectibles = append(ctx.Collectibles, c)
	return c
}

func obstacleKind(roll float64) components.ObstacleKind {
	switch {
	case roll < constants.ObstacleColorChangingRoll:
		return components.ObstacleColorChanging
	case roll < constants.ObstacleDarkRoll:
		return components.ObstacleDark
	case roll < constants.ObstacleLightningRoll:
		return components.ObstacleLightning
	default:
		return components.ObstacleNormal
	}
}

func speedMultiplier(d engine.Difficulty) float64 {
	switch d {
	case engine.DifficultyEasy:
		return constants.SpeedMultiplierEasy
	case engine.DifficultyHard:
		return constants.SpeedMultiplierHard
	default:
		return constants.SpeedMultiplierNormal
	}
}
