package render

import (
	"time"

	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/events"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HUD is the presentation-side mirror of core state, fed only by events
// All timed surfaces expire against the event timestamp so the HUD never reads the clock
type HUD struct {
	Score    int
	Attempts int
	Level    int
	Lives    int
	Phase    string

	message      string
	messageUntil time.Time

	flags [events.VisualFlagCount]bool

	achievement      events.AchievementPayload
	achievementUntil time.Time

	GameOver      bool
	FinalGameOver bool
	GameOverScore int
	GameOverTaunt string

	Countdown        string
	CountdownVisible bool

	RankingVisible bool
	RankingScore   int

	Settings    events.SettingsPayload
	Multiplayer bool
	Cursor      events.CursorPayload

	printer *message.Printer
}

// NewHUD creates a HUD in the pre-game state
func NewHUD() *HUD {
	return &HUD{
		Level:   1,
		Lives:   constants.MaxLives,
		Phase:   "Idle",
		printer: message.NewPrinter(language.BrazilianPortuguese),
	}
}

// EventTypes implements events.Handler
func (h *HUD) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventMessage,
		events.EventScoreChanged,
		events.EventLivesChanged,
		events.EventVisualFlag,
		events.EventAchievement,
		events.EventGameOver,
		events.EventFinalGameOver,
		events.EventPhaseChanged,
		events.EventCountdown,
		events.EventRanking,
		events.EventSettings,
		events.EventMultiplayer,
		events.EventFakeCursor,
	}
}

// HandleEvent implements events.Handler
func (h *HUD) HandleEvent(ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.MessagePayload:
		h.message = p.Text
		h.messageUntil = ev.Timestamp.Add(p.Duration)
	case *events.ScorePayload:
		h.Score, h.Attempts, h.Level = p.Score, p.Attempts, p.Level
	case *events.LivesPayload:
		h.Lives = p.Lives
	case *events.VisualFlagPayload:
		if int(p.Flag) >= 0 && int(p.Flag) < len(h.flags) {
			h.flags[p.Flag] = p.On
		}
	case *events.AchievementPayload:
		h.achievement = *p
		h.achievementUntil = ev.Timestamp.Add(constants.AchievementDuration)
	case *events.GameOverPayload:
		h.GameOver = true
		h.FinalGameOver = false
		h.GameOverScore = p.Score
		h.GameOverTaunt = p.Taunt
	case *events.PhasePayload:
		h.Phase = p.To
		if p.To != "GameOver" {
			h.GameOver = false
			h.FinalGameOver = false
		}
	case *events.CountdownPayload:
		h.Countdown = p.Label
		h.CountdownVisible = p.Visible
	case *events.RankingPayload:
		h.RankingVisible = p.Visible
		h.RankingScore = p.Score
	case *events.SettingsPayload:
		h.Settings = *p
	case *events.TogglePayload:
		h.Multiplayer = p.On
	case *events.CursorPayload:
		h.Cursor = *p
	case nil:
		if ev.Type == events.EventFinalGameOver {
			h.GameOver = false
			h.FinalGameOver = true
		}
	}
}

// Message returns the current bubble text, empty once expired
func (h *HUD) Message(now time.Time) string {
	if h.message == "" || !now.Before(h.messageUntil) {
		return ""
	}
	return h.message
}

// Flag reports a cosmetic flag
func (h *HUD) Flag(f events.VisualFlag) bool {
	if int(f) < 0 || int(f) >= len(h.flags) {
		return false
	}
	return h.flags[f]
}

// Achievement returns the popup while it is showing
func (h *HUD) Achievement(now time.Time) (events.AchievementPayload, bool) {
	if h.achievement.Title == "" || !now.Before(h.achievementUntil) {
		return events.AchievementPayload{}, false
	}
	return h.achievement, true
}

// FormatNumber groups digits the pt-BR way (999.999)
func (h *HUD) FormatNumber(n int) string {
	return h.printer.Sprintf("%d", n)
}

// RankingRows renders the fake leaderboard lines
func (h *HUD) RankingRows() []string {
	entries := content.Ranking(h.RankingScore)
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Position == 0 {
			rows = append(rows, "...")
			continue
		}
		rows = append(rows, h.printer.Sprintf("%d. %-14s %d", e.Position, e.Name, e.Points))
	}
	return rows
}
