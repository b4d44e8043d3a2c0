package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/troll-dodge/components"
)

// Palette is the set of colors used for one display mode
type Palette struct {
	Background  tcell.Color
	Text        tcell.Color
	HUD         tcell.Color
	Player      tcell.Color
	Obstacle    tcell.Color
	DarkOrb     tcell.Color
	Lightning   tcell.Color
	Collectible tcell.Color
	TrollPickup tcell.Color
	Wall        tcell.Color
	Trail       tcell.Color
	Explosion   tcell.Color
	Banner      tcell.Color
	Bubble      tcell.Color

	// Cycle drives color-changing obstacles
	Cycle []tcell.Color
}

var (
	// DefaultPalette is the light arcade look
	DefaultPalette = Palette{
		Background:  tcell.NewRGBColor(26, 27, 38),
		Text:        tcell.NewRGBColor(230, 230, 230),
		HUD:         tcell.NewRGBColor(135, 206, 250),
		Player:      tcell.NewRGBColor(80, 200, 255),
		Obstacle:    tcell.NewRGBColor(255, 80, 80),
		DarkOrb:     tcell.NewRGBColor(90, 90, 110),
		Lightning:   tcell.NewRGBColor(255, 255, 0),
		Collectible: tcell.NewRGBColor(255, 215, 0),
		TrollPickup: tcell.NewRGBColor(255, 0, 255),
		Wall:        tcell.NewRGBColor(200, 50, 50),
		Trail:       tcell.NewRGBColor(120, 160, 200),
		Explosion:   tcell.NewRGBColor(255, 165, 0),
		Banner:      tcell.NewRGBColor(255, 120, 120),
		Bubble:      tcell.NewRGBColor(144, 238, 144),
		Cycle: []tcell.Color{
			tcell.NewRGBColor(255, 80, 80),
			tcell.NewRGBColor(80, 255, 80),
			tcell.NewRGBColor(80, 80, 255),
			tcell.NewRGBColor(255, 255, 80),
		},
	}

	// DarkPalette dims everything except obstacles
	DarkPalette = Palette{
		Background:  tcell.NewRGBColor(0, 0, 0),
		Text:        tcell.NewRGBColor(90, 90, 90),
		HUD:         tcell.NewRGBColor(70, 70, 70),
		Player:      tcell.NewRGBColor(40, 40, 60),
		Obstacle:    tcell.NewRGBColor(255, 80, 80),
		DarkOrb:     tcell.NewRGBColor(15, 15, 15),
		Lightning:   tcell.NewRGBColor(120, 120, 0),
		Collectible: tcell.NewRGBColor(60, 50, 0),
		TrollPickup: tcell.NewRGBColor(60, 0, 60),
		Wall:        tcell.NewRGBColor(60, 10, 10),
		Trail:       tcell.NewRGBColor(30, 30, 30),
		Explosion:   tcell.NewRGBColor(120, 80, 0),
		Banner:      tcell.NewRGBColor(150, 60, 60),
		Bubble:      tcell.NewRGBColor(60, 100, 60),
		Cycle: []tcell.Color{
			tcell.NewRGBColor(120, 40, 40),
			tcell.NewRGBColor(40, 120, 40),
		},
	}

	// ColorBlindPalette makes colors worse, not better
	ColorBlindPalette = Palette{
		Background:  tcell.NewRGBColor(40, 60, 40),
		Text:        tcell.NewRGBColor(200, 120, 120),
		HUD:         tcell.NewRGBColor(120, 200, 120),
		Player:      tcell.NewRGBColor(110, 140, 90),
		Obstacle:    tcell.NewRGBColor(90, 150, 80),
		DarkOrb:     tcell.NewRGBColor(80, 110, 70),
		Lightning:   tcell.NewRGBColor(140, 160, 80),
		Collectible: tcell.NewRGBColor(150, 120, 80),
		TrollPickup: tcell.NewRGBColor(150, 120, 80),
		Wall:        tcell.NewRGBColor(70, 100, 60),
		Trail:       tcell.NewRGBColor(80, 100, 70),
		Explosion:   tcell.NewRGBColor(200, 90, 90),
		Banner:      tcell.NewRGBColor(90, 200, 90),
		Bubble:      tcell.NewRGBColor(200, 90, 90),
		Cycle: []tcell.Color{
			tcell.NewRGBColor(200, 90, 90),
			tcell.NewRGBColor(90, 200, 90),
		},
	}
)

// PaletteFor selects the palette for the current flags; dark mode wins
func PaletteFor(dark, colorBlind bool) *Palette {
	switch {
	case dark:
		return &DarkPalette
	case colorBlind:
		return &ColorBlindPalette
	default:
		return &DefaultPalette
	}
}

// ObstacleColor returns the obstacle color for a kind at the given frame
func (p *Palette) ObstacleColor(kind components.ObstacleKind, frame int64) tcell.Color {
	switch kind {
	case components.ObstacleColorChanging:
		// Cycle every 8 frames
		return p.Cycle[int(frame/8)%len(p.Cycle)]
	case components.ObstacleDark:
		return p.DarkOrb
	case components.ObstacleLightning:
		return p.Lightning
	default:
		return p.Obstacle
	}
}

// ObstacleGlyph returns the fill rune for a kind
func ObstacleGlyph(kind components.ObstacleKind) rune {
	switch kind {
	case components.ObstacleColorChanging:
		return '▓'
	case components.ObstacleDark:
		return '▒'
	case components.ObstacleLightning:
		return 'ϟ'
	default:
		return '█'
	}
}
