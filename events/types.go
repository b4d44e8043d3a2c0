package events

import "time"

// EventType represents the type of effect event emitted by the core
type EventType int

const (
	// EventMessage shows transient troll text
	// Trigger: most core transitions | Payload: *MessagePayload
	EventMessage EventType = iota

	// EventScoreChanged syncs score/attempts/level display
	// Trigger: pickup, level-up, game over, restart | Payload: *ScorePayload
	EventScoreChanged

	// EventLivesChanged syncs the lives display
	// Trigger: start, damage, restart | Payload: *LivesPayload
	EventLivesChanged

	// EventLifeLost signals non-fatal damage
	// Trigger: obstacle or wall hit with lives > 1 | Payload: *LivesPayload
	EventLifeLost

	// EventVisualFlag toggles a cosmetic flag
	// Trigger: troll engine, collisions, timers | Payload: *VisualFlagPayload
	EventVisualFlag

	// EventAchievement unlocks a title once per process
	// Trigger: game over at milestone attempts | Payload: *AchievementPayload
	EventAchievement

	// EventGameOver shows the fake game-over variant
	// Trigger: last life lost | Payload: *GameOverPayload
	EventGameOver

	// EventFinalGameOver shows the real game-over screen
	// Trigger: acknowledging the fake game over | Payload: nil
	EventFinalGameOver

	// EventPhaseChanged signals a game phase transition
	// Payload: *PhasePayload
	EventPhaseChanged

	// EventLevelUp signals level increment
	// Payload: *LevelPayload
	EventLevelUp

	// EventCountdown drives the fake countdown popup
	// Trigger: level 5 | Payload: *CountdownPayload
	EventCountdown

	// EventSound requests a sound effect
	// Consumer: SoundManager | Payload: *SoundPayload
	EventSound

	// EventRanking toggles the fake leaderboard
	// Payload: *RankingPayload
	EventRanking

	// EventSettings toggles the settings panel
	// Payload: *SettingsPayload
	EventSettings

	// EventMultiplayer shows or hides the fake opponent
	// Payload: *TogglePayload
	EventMultiplayer

	// EventFakeCursor shows a decoy cursor
	// Payload: *CursorPayload
	EventFakeCursor

	// EventVolume reports the fake volume slider value
	// Payload: *VolumePayload
	EventVolume

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventMessage:       "Message",
	EventScoreChanged:  "ScoreChanged",
	EventLivesChanged:  "LivesChanged",
	EventLifeLost:      "LifeLost",
	EventVisualFlag:    "VisualFlag",
	EventAchievement:   "Achievement",
	EventGameOver:      "GameOver",
	EventFinalGameOver: "FinalGameOver",
	EventPhaseChanged:  "PhaseChanged",
	EventLevelUp:       "LevelUp",
	EventCountdown:     "Countdown",
	EventSound:         "Sound",
	EventRanking:       "Ranking",
	EventSettings:      "Settings",
	EventMultiplayer:   "Multiplayer",
	EventFakeCursor:    "FakeCursor",
	EventVolume:        "Volume",
}

// String returns the event name used in logs
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single effect event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
