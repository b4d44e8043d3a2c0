package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/troll-dodge/components"
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/events"
	"github.com/mattn/go-runewidth"
)

// HUD labels
const (
	labelScore     = "Pontos"
	labelLives     = "Vidas"
	labelLevel     = "Nível"
	labelAttempts  = "Tentativas"
	labelOpponent  = "👤 MLGPro_2024 online"
	labelInverted  = "⟲ INVERTIDO"
	labelFrozen    = "❄ CONGELADO"
	labelPaused    = "⏸ PAUSADO"
	labelIdle      = "ENTER para começar"
	labelSettings  = "CONFIGURAÇÕES"
	labelRanking   = "RANKING GLOBAL"
	labelGlitchRow = "▚▞▚▞▚▞"
)

// Renderer draws the game onto a tcell screen
// It reads the context directly for entities and the HUD for everything the core emits
type Renderer struct {
	screen tcell.Screen
	hud    *HUD
	layout Layout
}

// NewRenderer creates a renderer sized to the current screen
func NewRenderer(screen tcell.Screen, hud *HUD, pixelW, pixelH float64) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		hud:    hud,
		layout: NewLayout(w, h, pixelW, pixelH),
	}
}

// PointerToPlay maps a terminal cell to play-area pixels
func (r *Renderer) PointerToPlay(x, y int) (float64, float64, bool) {
	return r.layout.ToPixel(x, y)
}

// Resize recomputes the layout for the current screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h, r.layout.pixelW, r.layout.pixelH)
}

// RenderFrame draws one complete frame
func (r *Renderer) RenderFrame(ctx *engine.GameContext) {
	now := ctx.Now()
	pal := PaletteFor(r.hud.Flag(events.FlagDarkMode), r.hud.Flag(events.FlagColorBlind))
	base := tcell.StyleDefault.Background(pal.Background).Foreground(pal.Text)

	r.screen.Fill(' ', base)

	// Screen shake nudges the play area one cell each frame
	shake := 0
	if r.hud.Flag(events.FlagScreenShake) {
		shake = int(ctx.Frame()%2)*2 - 1
	}

	r.drawHUD(pal, base)
	r.drawWall(ctx, pal, base, shake)
	r.drawParticles(ctx, pal, base, shake)
	r.drawCollectibles(ctx, pal, base, shake)
	r.drawObstacles(ctx, pal, base, shake)
	r.drawPlayer(ctx, pal, base, shake)
	r.drawFakeCursor(pal, base)

	if r.hud.Flag(events.FlagGlitch) {
		r.drawGlitch(ctx.Frame(), pal, base)
	}
	if r.hud.Flag(events.FlagFakeLag) {
		r.drawCentered(r.layout.PlayY+r.layout.PlayH/2, content.LagBanner, base.Foreground(pal.Banner).Bold(true))
	}

	r.drawOverlays(now, pal, base)
	r.drawFooter(now, pal, base)

	r.screen.Show()
}

func (r *Renderer) drawHUD(pal *Palette, base tcell.Style) {
	hud := r.hud
	style := base.Foreground(pal.HUD).Bold(true)

	lives := strings.Repeat("♥", max(hud.Lives, 0)) + strings.Repeat("♡", max(constants.MaxLives-hud.Lives, 0))
	line := fmt.Sprintf(" %s: %s  %s: %s  %s: %d  %s: %s",
		labelScore, hud.FormatNumber(hud.Score),
		labelLives, lives,
		labelLevel, hud.Level,
		labelAttempts, hud.FormatNumber(hud.Attempts))
	r.drawText(0, 0, line, style)

	if hud.Multiplayer {
		r.drawText(r.layout.Width-stringWidth(labelOpponent)-1, 0, labelOpponent, base.Foreground(pal.Bubble))
	}

	// Status banners on the second row
	var banners []string
	if hud.Flag(events.FlagInverted) {
		banners = append(banners, labelInverted)
	}
	if hud.Flag(events.FlagFrozen) {
		banners = append(banners, labelFrozen)
	}
	switch hud.Phase {
	case "Paused":
		banners = append(banners, labelPaused)
	case "Idle":
		if !hud.GameOver && !hud.FinalGameOver {
			banners = append(banners, labelIdle)
		}
	}
	r.drawText(1, 1, strings.Join(banners, "  "), base.Foreground(pal.Banner).Bold(true))
}

func (r *Renderer) drawObstacles(ctx *engine.GameContext, pal *Palette, base tcell.Style, shake int) {
	frame := ctx.Frame()
	for _, o := range ctx.Obstacles {
		style := base.Foreground(pal.ObstacleColor(o.Kind, frame))
		r.fillBox(o.Bounds(ctx.PlayWidth).Left, o.Top, o.Width, o.Height, ObstacleGlyph(o.Kind), style, shake)
	}
}

func (r *Renderer) drawCollectibles(ctx *engine.GameContext, pal *Palette, base tcell.Style, shake int) {
	for _, c := range ctx.Collectibles {
		color, glyph := pal.Collectible, '●'
		if c.IsTroll {
			color, glyph = pal.TrollPickup, '◆'
		}
		r.fillBox(c.Bounds(ctx.PlayWidth).Left, c.Top, c.Size, c.Size, glyph, base.Foreground(color), shake)
	}
}

func (r *Renderer) drawWall(ctx *engine.GameContext, pal *Palette, base tcell.Style, shake int) {
	w := ctx.Wall
	if !w.Revealed {
		return
	}
	left := ctx.PlayWidth - w.Right - w.Width
	r.fillBox(left, w.Top, w.Width, w.Height, '#', base.Foreground(pal.Wall).Bold(true), shake)
}

func (r *Renderer) drawPlayer(ctx *engine.GameContext, pal *Palette, base tcell.Style, shake int) {
	p := ctx.Player
	r.fillBox(p.X, p.Y, constants.PlayerSize, constants.PlayerSize, '█', base.Foreground(pal.Player), shake)
}

func (r *Renderer) drawParticles(ctx *engine.GameContext, pal *Palette, base tcell.Style, shake int) {
	now := ctx.Now()
	trail := base.Foreground(pal.Trail)
	ctx.Trails.Each(func(p *components.Particle) {
		x, y := p.Position(now)
		cx, cy := r.layout.ToCell(x, y)
		r.setCell(cx+shake, cy, '·', trail)
	})
	boom := base.Foreground(pal.Explosion).Bold(true)
	ctx.Explosions.Each(func(p *components.Particle) {
		x, y := p.Position(now)
		cx, cy := r.layout.ToCell(x, y)
		r.setCell(cx+shake, cy, '*', boom)
	})
}

func (r *Renderer) drawFakeCursor(pal *Palette, base tcell.Style) {
	c := r.hud.Cursor
	if !c.Visible {
		return
	}
	cx, cy := r.layout.ToCell(c.X, c.Y)
	r.setCell(cx, cy, '↖', base.Foreground(pal.Text).Bold(true))
}

func (r *Renderer) drawGlitch(frame int64, pal *Palette, base tcell.Style) {
	style := base.Foreground(pal.Banner).Reverse(true)
	for y := r.layout.PlayY; y < r.layout.PlayY+r.layout.PlayH; y += 3 {
		x := int((frame*7 + int64(y)*13) % int64(max(r.layout.Width, 1)))
		r.drawText(x, y, labelGlitchRow, style)
	}
}

func (r *Renderer) drawOverlays(now time.Time, pal *Palette, base tcell.Style) {
	hud := r.hud
	mid := r.layout.PlayY + r.layout.PlayH/2
	title := base.Foreground(pal.Banner).Bold(true)
	text := base.Foreground(pal.Text)

	switch {
	case hud.FinalGameOver:
		r.drawCentered(mid-1, content.FinalOverTitle, title)
		r.drawCentered(mid+1, content.RealRestartHint, text)
	case hud.GameOver:
		r.drawCentered(mid-2, content.GameOverTitle, title)
		r.drawCentered(mid, fmt.Sprintf("%s: %s", labelScore, hud.FormatNumber(hud.GameOverScore)), text)
		r.drawCentered(mid+1, hud.GameOverTaunt, text)
		r.drawCentered(mid+3, content.FakeRestartHint, text)
	}

	if hud.CountdownVisible {
		r.drawCentered(mid, hud.Countdown, title.Reverse(true))
	}

	if a, ok := hud.Achievement(now); ok {
		r.drawCentered(r.layout.PlayY, "🏆 "+a.Title, base.Foreground(pal.Collectible).Bold(true))
		r.drawCentered(r.layout.PlayY+1, a.Description, text)
	}

	if hud.RankingVisible {
		y := r.layout.PlayY + 2
		r.drawText(2, y, labelRanking, title)
		for i, row := range hud.RankingRows() {
			r.drawText(2, y+1+i, row, text)
		}
	}

	if hud.Settings.Visible {
		s := hud.Settings
		x := r.layout.Width - 30
		y := r.layout.PlayY + 2
		r.drawText(x, y, labelSettings, title)
		r.drawText(x, y+1, fmt.Sprintf("[1/2/3] %s", s.Difficulty), text)
		r.drawText(x, y+2, fmt.Sprintf("[n] escuro: %s", onOff(s.DarkMode)), text)
		r.drawText(x, y+3, fmt.Sprintf("[b] daltonismo: %s", onOff(s.ColorBlind)), text)
		r.drawText(x, y+4, fmt.Sprintf("[+/-] volume: %d%%", s.Volume), text)
	}
}

func (r *Renderer) drawFooter(now time.Time, pal *Palette, base tcell.Style) {
	if msg := r.hud.Message(now); msg != "" {
		r.drawCentered(r.layout.Height-2, "💬 "+msg, base.Foreground(pal.Bubble).Bold(true))
	}
	r.drawText(0, r.layout.Height-1, constants.KeyHelpText, base.Foreground(pal.HUD).Reverse(true))
}

// fillBox paints the visible part of a pixel-space box as cells
// Boxes entirely outside the play area are skipped
func (r *Renderer) fillBox(left, top, w, h float64, ch rune, style tcell.Style, shake int) {
	x0, y0, x1, y1, ok := r.layout.CellRect(left, top, w, h)
	if !ok {
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.setCell(x+shake, y, ch, style)
		}
	}
}

func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	if !r.layout.Contains(x, y) {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawText writes s from (x, y), advancing by display width
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.setCell(x, y, ch, style)
		x += w
	}
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	if s == "" {
		return
	}
	x := (r.layout.Width - stringWidth(s)) / 2
	r.drawText(max(x, 0), y, s, style)
}

func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}

func onOff(b bool) string {
	if b {
		return "ligado"
	}
	return "desligado"
}
