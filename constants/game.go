package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the display refresh interval (~60 FPS), one game tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// MotivationalInterval is how often the idle taunt timer rolls while running
	MotivationalInterval = 6 * time.Second

	// MultiplayerJoinDelay is how long after start the fake opponent "joins"
	MultiplayerJoinDelay = 5 * time.Second
)

// Play area defaults, in pixels
const (
	DefaultPlayWidth  = 800
	DefaultPlayHeight = 500
)

// InputQueueSize buffers terminal events between the poller and the loop
const InputQueueSize = 256

// Event queue sizing (power of two for mask indexing)
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
