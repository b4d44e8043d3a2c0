package constants

import "time"

// Scoring and progression
const (
	PointsPerCollectible = 10
	TrollPenalty         = 20
	PointsPerLevel       = 100
	CountdownLevel       = 5
	UltimateLevel        = 10
	UltimateSpeedFactor  = 2.0
	FakeQuitSpeedFactor  = 1.2
	TrollInversionChance = 0.5
)

// Troll perturbation thresholds, evaluated once per tick
const (
	InversionCooldown = 8 * time.Second

	InversionChanceEasy   = 0.02
	InversionChanceNormal = 0.08
	InversionChanceHard   = 0.15

	DarkFlipChanceHard  = 0.002
	DarkFlipChanceOther = 0.0005

	FreezeChance = 0.001

	LagScoreStep = 50

	MotivationalChance = 0.15
	FakeCursorChance   = 0.05
	FakeCursorJitter   = 100.0

	HelpInversionRoll = 0.3
	HelpGlitchRoll    = 0.6
)

// Timed visual windows
const (
	DarkObstacleDuration = 3000 * time.Millisecond
	ScreenShakeDuration  = 500 * time.Millisecond
	WallRevealDuration   = 200 * time.Millisecond
	FakeLagDuration      = 3000 * time.Millisecond
	HelpLagDuration      = 2000 * time.Millisecond
	FreezeDuration       = 1000 * time.Millisecond
	GlitchDuration       = 500 * time.Millisecond
	FinalGlitchDuration  = 300 * time.Millisecond
	TrailLifetime        = 500 * time.Millisecond
	ExplosionLifetime    = 1000 * time.Millisecond
	FakeSaveDelay        = 2000 * time.Millisecond
	FakeCursorDuration   = 1000 * time.Millisecond
	CountdownStep        = 1000 * time.Millisecond
	CountdownHold        = 2000 * time.Millisecond
	CountdownStart       = 3
)
