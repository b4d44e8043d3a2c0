package events

import "time"

// VisualFlag names a cosmetic toggle
type VisualFlag int

const (
	FlagDarkMode VisualFlag = iota
	FlagInverted
	FlagScreenShake
	FlagGlitch
	FlagFakeLag
	FlagWallReveal
	FlagColorBlind
	FlagFrozen
	visualFlagCount
)

var flagNames = [visualFlagCount]string{
	FlagDarkMode:    "dark-mode",
	FlagInverted:    "inverted-controls",
	FlagScreenShake: "screen-shake",
	FlagGlitch:      "glitch-effect",
	FlagFakeLag:     "fake-lag",
	FlagWallReveal:  "wall-revealed",
	FlagColorBlind:  "colorblind-mode",
	FlagFrozen:      "frozen",
}

// String returns the flag name
func (f VisualFlag) String() string {
	if f < 0 || f >= visualFlagCount {
		return "unknown"
	}
	return flagNames[f]
}

// VisualFlagCount is the number of defined flags, for presentation arrays
const VisualFlagCount = int(visualFlagCount)

// SoundKind selects a synthesized effect
type SoundKind int

const (
	SoundError SoundKind = iota
	SoundCollect
	SoundSarcastic
	soundKindCount
)

// SoundKindCount is the number of defined effects
const SoundKindCount = int(soundKindCount)

var soundNames = [soundKindCount]string{
	SoundError:     "error",
	SoundCollect:   "collect",
	SoundSarcastic: "sarcastic",
}

// String returns the effect name
func (k SoundKind) String() string {
	if k < 0 || k >= soundKindCount {
		return "unknown"
	}
	return soundNames[k]
}

// MessagePayload carries transient text
type MessagePayload struct {
	Text     string
	Duration time.Duration
}

// ScorePayload carries the numeric HUD state
type ScorePayload struct {
	Score    int
	Attempts int
	Level    int
}

// LivesPayload carries the remaining lives
type LivesPayload struct {
	Lives int
}

// VisualFlagPayload carries a flag toggle
type VisualFlagPayload struct {
	Flag VisualFlag
	On   bool
}

// AchievementPayload carries a newly earned title
type AchievementPayload struct {
	Title       string
	Description string
}

// GameOverPayload carries the final round score and a taunt
type GameOverPayload struct {
	Score int
	Taunt string
}

// PhasePayload carries a phase transition, as phase names to keep events free of engine types
type PhasePayload struct {
	From, To string
}

// LevelPayload carries the new level
type LevelPayload struct {
	Level int
}

// CountdownPayload carries the countdown label; Visible false hides the popup
type CountdownPayload struct {
	Label   string
	Visible bool
}

// SoundPayload selects an effect
type SoundPayload struct {
	Kind SoundKind
}

// RankingPayload carries the fake leaderboard rows
type RankingPayload struct {
	Visible bool
	Score   int
}

// SettingsPayload carries the settings panel state
type SettingsPayload struct {
	Visible    bool
	Difficulty string
	DarkMode   bool
	ColorBlind bool
	Volume     int
}

// TogglePayload carries a simple visibility toggle
type TogglePayload struct {
	On bool
}

// CursorPayload positions the decoy cursor in play-area pixels; Visible false hides it
type CursorPayload struct {
	X, Y    float64
	Visible bool
}

// VolumePayload carries the fake volume slider value (0-100)
type VolumePayload struct {
	Volume int
}
