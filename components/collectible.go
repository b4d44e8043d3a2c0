package components

import "github.com/lixenwraith/troll-dodge/vmath"

// Collectible is a scoring pickup sharing the obstacle coordinate convention
type Collectible struct {
	ID      EntityID
	X       float64
	Top     float64
	Size    float64
	Speed   float64
	Fleeing bool // Evades the player inside the flee radius
	IsTroll bool // Subtracts score instead of adding
}

// Bounds returns the screen-space box for a play area of the given width
func (c *Collectible) Bounds(playWidth float64) vmath.Rect {
	right := playWidth - c.X
	return vmath.Rect{Left: right - c.Size, Right: right, Top: c.Top, Bottom: c.Top + c.Size}
}
