package constants

import "time"

// Message display durations
const (
	MessageDuration     = 4000 * time.Millisecond
	AchievementDuration = 5000 * time.Millisecond
)

// Terminal layout
const (
	// HUDRows is the number of rows reserved above the play area
	HUDRows = 2
	// FooterRows is the number of rows reserved below the play area (message bubble + key help)
	FooterRows = 2

	LivesGlyphs = "♥♥♥"
)

// Key help footer
const KeyHelpText = " ←↑→↓/WASD mover  ENTER começar  P pausar  X desistir  F fácil  V salvar  C config  R ranking  H ajuda  ESC sair "
