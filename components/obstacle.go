package components

import "github.com/lixenwraith/troll-dodge/vmath"

// ObstacleKind selects collision behavior and visuals
type ObstacleKind int

const (
	ObstacleNormal        ObstacleKind = iota // Damages on contact
	ObstacleColorChanging                     // Damages on contact, cycles color
	ObstacleDark                              // Consumed on contact, triggers dark mode
	ObstacleLightning                         // Consumed on contact, triggers screen shake
)

// String returns the kind name used in logs
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleColorChanging:
		return "color-changing"
	case ObstacleDark:
		return "dark"
	case ObstacleLightning:
		return "lightning"
	default:
		return "normal"
	}
}

// Harmless reports whether contact is consumed without damage
func (k ObstacleKind) Harmless() bool {
	return k == ObstacleDark || k == ObstacleLightning
}

// Obstacle drifts from the right edge leftwards
// X is the distance of the right edge from the play area's right edge and grows every tick
type Obstacle struct {
	ID            EntityID
	Kind          ObstacleKind
	X             float64
	Top           float64
	Width, Height float64
	Speed         float64
}

// Bounds returns the screen-space box for a play area of the given width
func (o *Obstacle) Bounds(playWidth float64) vmath.Rect {
	right := playWidth - o.X
	return vmath.Rect{Left: right - o.Width, Right: right, Top: o.Top, Bottom: o.Top + o.Height}
}
