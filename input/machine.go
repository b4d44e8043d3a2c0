package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic Intents
type Machine struct {
	keyTable     *KeyTable
	settingsOpen bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// SetSettingsOpen enables the settings panel bindings
// Called by the router when the panel is toggled
func (m *Machine) SetSettingsOpen(open bool) {
	m.settingsOpen = open
}

// SettingsOpen reports whether panel bindings are active
func (m *Machine) SettingsOpen() bool {
	return m.settingsOpen
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventPaste:
		if ev.Start() {
			return &Intent{Type: IntentTaunt, Taunt: TauntPaste}
		}
	case *tcell.EventFocus:
		return &Intent{Type: IntentFocus, Focused: ev.Focused}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch {
	case ev.Key() == tcell.KeyF12:
		return &Intent{Type: IntentTaunt, Taunt: TauntDevTools}
	case ev.Key() == tcell.KeyF4 && ev.Modifiers()&tcell.ModAlt != 0:
		return &Intent{Type: IntentTaunt, Taunt: TauntDevTools}
	}

	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if m.settingsOpen {
			if entry, ok := m.keyTable.SettingsRunes[r]; ok {
				return entry.intent()
			}
		}
		if entry, ok := m.keyTable.Runes[r]; ok {
			return entry.intent()
		}
		return nil
	}

	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return entry.intent()
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.Button2 != 0:
		return &Intent{Type: IntentTaunt, Taunt: TauntRightClick}
	case buttons == tcell.ButtonNone:
		return &Intent{Type: IntentPointer, X: x, Y: y}
	}
	return nil
}

func (e KeyEntry) intent() *Intent {
	return &Intent{Type: e.Intent, Direction: e.Direction, Value: e.Value}
}
