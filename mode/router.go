package mode

import (
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/input"
	"github.com/lixenwraith/troll-dodge/systems"
)

// PointerMapper converts a terminal cell to play-area pixels
// ok is false when the cell lies outside the play area
type PointerMapper func(x, y int) (px, py float64, ok bool)

// Router interprets Intents and executes game logic
// Runs on the loop goroutine; it is the only writer besides the driver
type Router struct {
	ctx     *engine.GameContext
	machine *input.Machine
	pointer PointerMapper

	moveLUT map[input.Direction]systems.Direction
}

// NewRouter creates a router bound to the context and input machine
// pointer may be nil, disabling the fake cursor
func NewRouter(ctx *engine.GameContext, machine *input.Machine, pointer PointerMapper) *Router {
	return &Router{
		ctx:     ctx,
		machine: machine,
		pointer: pointer,
		moveLUT: map[input.Direction]systems.Direction{
			input.DirLeft:  systems.DirLeft,
			input.DirRight: systems.DirRight,
			input.DirUp:    systems.DirUp,
			input.DirDown:  systems.DirDown,
		},
	}
}

// Handle processes an Intent and returns false if the program should exit
func (r *Router) Handle(intent *input.Intent) bool {
	if intent == nil {
		return true
	}
	ctx := r.ctx

	switch intent.Type {
	// System
	case input.IntentQuit:
		return false
	case input.IntentResize:
		// Layout is recomputed by the renderer each frame

	// Play
	case input.IntentMove:
		systems.MovePlayer(ctx, r.moveLUT[intent.Direction])
	case input.IntentAcknowledge:
		systems.Acknowledge(ctx)
	case input.IntentPause:
		systems.PauseGame(ctx)

	// Troll buttons
	case input.IntentFakeQuit:
		systems.FakeQuit(ctx)
	case input.IntentEasyMode:
		systems.ActivateEasyMode(ctx)
	case input.IntentFakeSave:
		systems.FakeSave(ctx)
	case input.IntentSettings:
		systems.ToggleSettings(ctx)
		r.machine.SetSettingsOpen(ctx.SettingsOpen)
	case input.IntentRanking:
		systems.ToggleRanking(ctx)
	case input.IntentHelp:
		systems.ShowHelp(ctx)

	// Settings panel
	case input.IntentDifficulty:
		systems.SetDifficulty(ctx, engine.Difficulty(intent.Value))
	case input.IntentToggleDarkMode:
		systems.ToggleDarkModeSetting(ctx)
	case input.IntentToggleColorBlind:
		systems.ToggleColorBlind(ctx)
	case input.IntentVolume:
		systems.AdjustVolume(ctx, intent.Value)

	// Cosmetic
	case input.IntentTaunt:
		systems.Taunt(ctx, tauntText(intent.Taunt))
	case input.IntentFocus:
		systems.FocusChanged(ctx, intent.Focused)
	case input.IntentPointer:
		if r.pointer == nil {
			return true
		}
		if px, py, ok := r.pointer(intent.X, intent.Y); ok {
			systems.MaybeFakeCursor(ctx, px, py)
		}
	}
	return true
}

func tauntText(k input.TauntKind) string {
	switch k {
	case input.TauntRightClick:
		return content.TauntRightClick
	case input.TauntPaste:
		return content.TauntPaste
	default:
		return content.TauntDevTools
	}
}
