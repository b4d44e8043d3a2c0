package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Play
	IntentMove        // Arrows, WASD
	IntentAcknowledge // Enter: start, or advance the game-over screens
	IntentPause       // P

	// Troll action buttons
	IntentFakeQuit // X
	IntentEasyMode // F
	IntentFakeSave // V
	IntentSettings // C
	IntentRanking  // R
	IntentHelp     // H

	// Settings panel (only while open)
	IntentDifficulty       // 1/2/3
	IntentToggleDarkMode   // N
	IntentToggleColorBlind // B
	IntentVolume           // +/-

	// Cosmetic surfaces
	IntentTaunt   // F12, Alt+F4, right click, paste
	IntentFocus   // Terminal focus in/out
	IntentPointer // Mouse motion
)

// Direction is a requested move
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// TauntKind selects the anti-cheat line
type TauntKind uint8

const (
	TauntDevTools TauntKind = iota
	TauntRightClick
	TauntPaste
)

// Intent is a parsed input action
type Intent struct {
	Type      IntentType
	Direction Direction
	Taunt     TauntKind

	// Value carries the difficulty index for IntentDifficulty and the step for IntentVolume
	Value int

	// Focused is set for IntentFocus
	Focused bool

	// X, Y are terminal cell coordinates for IntentPointer
	X, Y int
}
