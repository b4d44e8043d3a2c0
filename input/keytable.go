package input

import "github.com/gdamore/tcell/v2"

// VolumeStep is the fake slider increment per key press
const VolumeStep = 10

// KeyEntry describes a key's action
type KeyEntry struct {
	Intent    IntentType
	Direction Direction
	Value     int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Play bindings, matched case-insensitively
	Runes map[rune]KeyEntry

	// Settings panel bindings, checked first while the panel is open
	SettingsRunes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEnter:  {Intent: IntentAcknowledge},
			tcell.KeyLeft:   {Intent: IntentMove, Direction: DirLeft},
			tcell.KeyRight:  {Intent: IntentMove, Direction: DirRight},
			tcell.KeyUp:     {Intent: IntentMove, Direction: DirUp},
			tcell.KeyDown:   {Intent: IntentMove, Direction: DirDown},
		},

		Runes: map[rune]KeyEntry{
			'a': {Intent: IntentMove, Direction: DirLeft},
			'd': {Intent: IntentMove, Direction: DirRight},
			'w': {Intent: IntentMove, Direction: DirUp},
			's': {Intent: IntentMove, Direction: DirDown},
			'p': {Intent: IntentPause},
			'x': {Intent: IntentFakeQuit},
			'f': {Intent: IntentEasyMode},
			'v': {Intent: IntentFakeSave},
			'c': {Intent: IntentSettings},
			'r': {Intent: IntentRanking},
			'h': {Intent: IntentHelp},
		},

		SettingsRunes: map[rune]KeyEntry{
			'1': {Intent: IntentDifficulty, Value: 0},
			'2': {Intent: IntentDifficulty, Value: 1},
			'3': {Intent: IntentDifficulty, Value: 2},
			'n': {Intent: IntentToggleDarkMode},
			'b': {Intent: IntentToggleColorBlind},
			'+': {Intent: IntentVolume, Value: VolumeStep},
			'=': {Intent: IntentVolume, Value: VolumeStep},
			'-': {Intent: IntentVolume, Value: -VolumeStep},
		},
	}
}
