package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/troll-dodge/components"
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/events"
)

func newTestRenderer(t *testing.T) (*Renderer, *HUD, tcell.SimulationScreen, *engine.GameContext) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	ctx, _, _ := engine.NewTestGameContext()
	hud := NewHUD()
	return NewRenderer(screen, hud, ctx.PlayWidth, ctx.PlayHeight), hud, screen, ctx
}

func cellAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, _, h := screen.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = rowText(screen, y)
	}
	return strings.Join(rows, "\n")
}

func TestRendererDrawsPlayerAndHUD(t *testing.T) {
	r, hud, screen, ctx := newTestRenderer(t)
	hud.HandleEvent(ev(events.EventScoreChanged, &events.ScorePayload{Score: 1234, Level: 3}, ctx.Now()))

	r.RenderFrame(ctx)

	// Player starts at (50, 250) which maps to cell (5, 12)
	if got := cellAt(screen, 5, 12); got != '█' {
		t.Errorf("player cell = %q, want '█'", got)
	}
	top := rowText(screen, 0)
	if !strings.Contains(top, "Pontos: 1.234") || !strings.Contains(top, "Nível: 3") {
		t.Errorf("HUD row = %q", top)
	}
	if !strings.Contains(rowText(screen, 1), labelIdle) {
		t.Errorf("idle hint missing: %q", rowText(screen, 1))
	}
	if !strings.Contains(rowText(screen, 23), "WASD") {
		t.Errorf("key help missing: %q", rowText(screen, 23))
	}
}

func TestRendererDrawsObstacleByKind(t *testing.T) {
	r, _, screen, ctx := newTestRenderer(t)
	ctx.Obstacles = append(ctx.Obstacles, &components.Obstacle{
		ID: 1, Kind: components.ObstacleLightning, X: 100, Top: 100, Width: 40, Height: 50,
	})

	r.RenderFrame(ctx)

	// left = 800 - 100 - 40 = 660 -> column 66; top 100 -> row 2 + 4
	if got := cellAt(screen, 66, 6); got != ObstacleGlyph(components.ObstacleLightning) {
		t.Errorf("obstacle cell = %q", got)
	}
}

func TestRendererSkipsOffscreenEntities(t *testing.T) {
	r, _, screen, ctx := newTestRenderer(t)
	lightning := ObstacleGlyph(components.ObstacleLightning)
	ctx.Obstacles = append(ctx.Obstacles,
		// Just spawned: left = 800 + 50 - 40, past the right edge
		&components.Obstacle{ID: 1, Kind: components.ObstacleLightning, X: -50, Top: 100, Width: 40, Height: 50},
		// Travelled out: left = 800 - 900 - 40, past the left edge
		&components.Obstacle{ID: 2, Kind: components.ObstacleLightning, X: 900, Top: 300, Width: 40, Height: 50},
	)
	ctx.Collectibles = append(ctx.Collectibles,
		&components.Collectible{ID: 3, X: -30, Top: 200, Size: 20},
		&components.Collectible{ID: 4, X: 870, Top: 200, Size: 20},
	)

	r.RenderFrame(ctx)

	text := screenText(screen)
	if strings.ContainsRune(text, lightning) {
		t.Error("off-screen obstacle was drawn")
	}
	if strings.ContainsRune(text, '●') {
		t.Error("off-screen collectible was drawn")
	}
}

func TestRendererClipsPartialEntities(t *testing.T) {
	r, _, screen, ctx := newTestRenderer(t)
	lightning := ObstacleGlyph(components.ObstacleLightning)
	// left = 800 + 20 - 40 = 780: half inside at the right edge
	ctx.Obstacles = append(ctx.Obstacles,
		&components.Obstacle{ID: 1, Kind: components.ObstacleLightning, X: -20, Top: 100, Width: 40, Height: 50})

	r.RenderFrame(ctx)

	if cellAt(screen, 78, 6) != lightning || cellAt(screen, 79, 6) != lightning {
		t.Errorf("visible part not drawn: %q", rowText(screen, 6))
	}
	if strings.Count(rowText(screen, 6), string(lightning)) != 2 {
		t.Errorf("clipped obstacle row = %q", rowText(screen, 6))
	}
}

func TestRendererWallOnlyWhenRevealed(t *testing.T) {
	r, _, screen, ctx := newTestRenderer(t)
	r.RenderFrame(ctx)
	if strings.ContainsRune(screenText(screen), '#') {
		t.Fatal("hidden wall was drawn")
	}

	ctx.Wall.Revealed = true
	r.RenderFrame(ctx)
	if !strings.ContainsRune(screenText(screen), '#') {
		t.Error("revealed wall not drawn")
	}
}

func TestRendererOverlays(t *testing.T) {
	r, hud, screen, ctx := newTestRenderer(t)
	now := ctx.Now()

	hud.HandleEvent(ev(events.EventMessage, &events.MessagePayload{Text: "Bem vindo", Duration: time.Second}, now))
	hud.HandleEvent(ev(events.EventGameOver, &events.GameOverPayload{Score: 10, Taunt: "fraco"}, now))
	r.RenderFrame(ctx)

	text := screenText(screen)
	for _, want := range []string{content.GameOverTitle, "fraco", content.FakeRestartHint, "Bem vindo"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}

	hud.HandleEvent(ev(events.EventFinalGameOver, nil, now))
	r.RenderFrame(ctx)
	text = screenText(screen)
	if !strings.Contains(text, content.FinalOverTitle) || strings.Contains(text, "fraco") {
		t.Error("final game over screen not shown in place of the fake one")
	}
}

func TestRendererBannersAndLag(t *testing.T) {
	r, hud, screen, ctx := newTestRenderer(t)
	now := ctx.Now()
	hud.HandleEvent(ev(events.EventPhaseChanged, &events.PhasePayload{From: "Idle", To: "Running"}, now))
	hud.HandleEvent(ev(events.EventVisualFlag, &events.VisualFlagPayload{Flag: events.FlagInverted, On: true}, now))
	hud.HandleEvent(ev(events.EventVisualFlag, &events.VisualFlagPayload{Flag: events.FlagFakeLag, On: true}, now))

	r.RenderFrame(ctx)

	if row := rowText(screen, 1); !strings.Contains(row, "INVERTIDO") || strings.Contains(row, labelIdle) {
		t.Errorf("banner row = %q", row)
	}
	if !strings.Contains(screenText(screen), "RECONECTANDO") {
		t.Error("lag banner missing")
	}
}

func TestRendererPanels(t *testing.T) {
	r, hud, screen, ctx := newTestRenderer(t)
	now := ctx.Now()
	hud.HandleEvent(ev(events.EventRanking, &events.RankingPayload{Visible: true, Score: 5}, now))
	hud.HandleEvent(ev(events.EventSettings, &events.SettingsPayload{Visible: true, Difficulty: "hard", Volume: 30}, now))
	hud.HandleEvent(ev(events.EventMultiplayer, &events.TogglePayload{On: true}, now))

	r.RenderFrame(ctx)
	text := screenText(screen)
	for _, want := range []string{labelRanking, "ProGamer2024", labelSettings, "hard", "volume: 30%", "MLGPro_2024"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestRendererPointerMapping(t *testing.T) {
	r, _, _, _ := newTestRenderer(t)
	px, py, ok := r.PointerToPlay(40, 12)
	if !ok || px != 400 || py != 250 {
		t.Errorf("PointerToPlay(40, 12) = (%v, %v, %v)", px, py, ok)
	}
}

func TestPaletteSelection(t *testing.T) {
	if PaletteFor(true, true) != &DarkPalette {
		t.Error("dark mode should win over colorblind")
	}
	if PaletteFor(false, true) != &ColorBlindPalette {
		t.Error("colorblind palette not selected")
	}
	if PaletteFor(false, false) != &DefaultPalette {
		t.Error("default palette not selected")
	}

	// Color-changing obstacles cycle across frames
	p := &DefaultPalette
	if p.ObstacleColor(components.ObstacleColorChanging, 0) == p.ObstacleColor(components.ObstacleColorChanging, 8) {
		t.Error("color-changing obstacle did not change color")
	}
	if p.ObstacleColor(components.ObstacleNormal, 0) != p.Obstacle {
		t.Error("normal obstacle color wrong")
	}
}
