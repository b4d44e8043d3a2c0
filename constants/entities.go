package constants

// Player geometry and movement
const (
	PlayerSize   = 30.0
	PlayerStartX = 50.0
	PlayerStartY = 250.0
	MaxLives     = 3

	PlayerStepEasy   = 15.0
	PlayerStepNormal = 20.0
	PlayerStepHard   = 25.0
)

// Obstacle spawning
const (
	ObstacleSpawnX       = -50.0
	ObstacleMinWidth     = 20.0
	ObstacleWidthRange   = 30.0
	ObstacleMinHeight    = 20.0
	ObstacleHeightRange  = 50.0
	ObstacleTopMargin    = 20.0
	ObstacleMinSpeed     = 2.0
	ObstacleSpeedRange   = 3.0
	ObstacleExitMargin   = 100.0
	ObstacleBaseDelayMs  = 2000
	ObstacleLevelDelayMs = 100
	ObstacleMinDelayMs   = 300

	// Kind thresholds on a single roll: [0,0.3) color-changing, [0.3,0.5) dark, [0.5,0.7) lightning
	ObstacleColorChangingRoll = 0.3
	ObstacleDarkRoll          = 0.5
	ObstacleLightningRoll     = 0.7

	SpeedMultiplierEasy   = 1.0
	SpeedMultiplierNormal = 1.5
	SpeedMultiplierHard   = 2.0
	EasyModeSpeedFactor   = 2.0
)

// Collectible spawning and fleeing
const (
	CollectibleSize         = 20.0
	CollectibleSpawnX       = -30.0
	CollectibleTopMargin    = 40.0
	CollectibleMinSpeed     = 1.5
	CollectibleSpeedRange   = 2.0
	CollectibleExitMargin   = 50.0
	CollectibleMinDelayMs   = 3000
	CollectibleDelayRangeMs = 2000
	TrollCollectibleChance  = 0.1

	FleeChanceNormal = 0.5
	FleeChanceHard   = 0.8

	FleeRadius      = 100.0
	FleeSpeedFactor = 1.5
	FleeJitter      = 60.0 // total vertical jitter span, centered on zero
)

// Hidden wall hazard
const (
	WallWidth        = 20.0
	WallHeight       = 100.0
	WallStartRight   = 300.0
	WallStartTop     = 200.0
	WallTopMargin    = 100.0
	WallRightMargin  = 200.0
	WallRightMinimum = 100.0
	WallDeathChance  = 0.15
	WallRelocateRoll = 0.002
)

// Particle pools
const (
	ParticlePoolSize       = 30
	ExplosionParticleCount = 12
	ExplosionMinDistance   = 100.0
	ExplosionDistanceRange = 50.0
	TrailOffset            = 5.0
	ExplosionOffset        = 15.0
)
