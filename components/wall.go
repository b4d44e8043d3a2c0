package components

import (
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/vmath"
)

// Wall is the invisible hazard; Right is measured from the play area's right edge
type Wall struct {
	Right, Top    float64
	Width, Height float64
	Revealed      bool
}

// NewWall places the wall at its initial position
func NewWall() Wall {
	return Wall{
		Right:  constants.WallStartRight,
		Top:    constants.WallStartTop,
		Width:  constants.WallWidth,
		Height: constants.WallHeight,
	}
}

// Bounds returns the screen-space box for a play area of the given width
func (w Wall) Bounds(playWidth float64) vmath.Rect {
	right := playWidth - w.Right
	return vmath.Rect{Left: right - w.Width, Right: right, Top: w.Top, Bottom: w.Top + w.Height}
}
