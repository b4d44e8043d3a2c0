package systems

import (
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/vmath"
)

// Direction is a requested player move before inversion is applied
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Opposite returns the mirrored direction used while controls are inverted
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// MovePlayer steps the avatar one difficulty-scaled step and resolves collisions at the new spot
// Ignored unless running and not frozen; returns true when the move was applied
func MovePlayer(ctx *engine.GameContext, dir Direction) bool {
	if !ctx.State.IsRunning() || ctx.Troll.ControlsFrozen {
		return false
	}
	CreatePlayerTrail(ctx)

	if ctx.Troll.ControlsInverted {
		dir = dir.Opposite()
	}
	step := ctx.StepForDifficulty()
	p := &ctx.Player
	maxX := ctx.PlayWidth - constants.PlayerSize
	maxY := ctx.PlayHeight - constants.PlayerSize

	switch dir {
	case DirLeft:
		p.X = vmath.Clamp(p.X-step, 0, maxX)
	case DirRight:
		p.X = vmath.Clamp(p.X+step, 0, maxX)
	case DirUp:
		p.Y = vmath.Clamp(p.Y-step, 0, maxY)
	case DirDown:
		p.Y = vmath.Clamp(p.Y+step, 0, maxY)
	}

	CheckCollisions(ctx)
	return true
}

// CreatePlayerTrail drops a pooled trail mark at the current position
// Silently skipped when the pool is exhausted
func CreatePlayerTrail(ctx *engine.GameContext) {
	idx, p, ok := ctx.Trails.Acquire()
	if !ok {
		return
	}
	p.X = ctx.Player.X + constants.TrailOffset
	p.Y = ctx.Player.Y + constants.TrailOffset
	p.TargetX, p.TargetY = p.X, p.Y
	p.Born = ctx.Now()
	p.Lifetime = constants.TrailLifetime
	ctx.After(constants.TrailLifetime, func() { ctx.Trails.Release(idx) })
}
