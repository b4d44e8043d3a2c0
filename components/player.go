package components

import (
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/vmath"
)

// Player is the avatar position in play-area pixels (top-left corner)
type Player struct {
	X, Y float64
}

// NewPlayer places the avatar at the round-start position
func NewPlayer() Player {
	return Player{X: constants.PlayerStartX, Y: constants.PlayerStartY}
}

// Bounds returns the player's bounding box
func (p Player) Bounds() vmath.Rect {
	return vmath.RectFromBox(p.X, p.Y, constants.PlayerSize, constants.PlayerSize)
}

// Reset returns the avatar to the round-start position
func (p *Player) Reset() {
	p.X = constants.PlayerStartX
	p.Y = constants.PlayerStartY
}
