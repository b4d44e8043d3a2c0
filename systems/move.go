package systems

import (
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/vmath"
)

// MoveSystem advances obstacles and collectibles and drops those past the exit bound
type MoveSystem struct{}

// NewMoveSystem creates the entity mover
func NewMoveSystem() *MoveSystem {
	return &MoveSystem{}
}

// Update runs one movement step
func (s *MoveSystem) Update(ctx *engine.GameContext) {
	MoveObstacles(ctx)
	MoveCollectibles(ctx)
}

// MoveObstacles translates every obstacle by its speed, filtering in place
func MoveObstacles(ctx *engine.GameContext) {
	limit := ctx.PlayWidth + constants.ObstacleExitMargin
	live := ctx.Obstacles[:0]
	for _, o := range ctx.Obstacles {
		o.X += o.Speed
		if o.X > limit {
			continue
		}
		live = append(live, o)
	}
	clearTail(len(live), ctx.Obstacles)
	ctx.Obstacles = live
}

// MoveCollectibles translates collectibles; fleeing ones first evade a nearby player
func MoveCollectibles(ctx *engine.GameContext) {
	limit := ctx.PlayWidth + constants.CollectibleExitMargin
	player := ctx.Player.Bounds()
	maxTop := ctx.PlayHeight - constants.CollectibleTopMargin

	live := ctx.Collectibles[:0]
	for _, c := range ctx.Collectibles {
		if c.Fleeing && vmath.CornerDistance(player, c.Bounds(ctx.PlayWidth)) < constants.FleeRadius {
			c.Speed *= constants.FleeSpeedFactor
			jitter := (ctx.Rand.Float64() - 0.5) * constants.FleeJitter
			c.Top = vmath.Clamp(c.Top+jitter, 0, maxTop)
		}
		c.X += c.Speed
		if c.X > limit {
			continue
		}
		live = append(live, c)
	}
	clearTail(len(live), ctx.Collectibles)
	ctx.Collectibles = live
}

// clearTail nils the slots past n so dropped entities are not retained by the backing array
func clearTail[T any](n int, s []*T) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
