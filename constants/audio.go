package constants

import "time"

// Audio sample rate and buffer
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
)

// Error Sound: descending sweep
const (
	ErrorSoundDuration  = 500 * time.Millisecond
	ErrorSoundStartFreq = 200.0
	ErrorSoundEndFreq   = 100.0
	ErrorSoundGain      = 0.3
)

// Collect Sound: ascending chirp
const (
	CollectSoundDuration  = 200 * time.Millisecond
	CollectSoundStartFreq = 400.0
	CollectSoundEndFreq   = 800.0
	CollectSoundGain      = 0.2
)

// Sarcastic Sound: three short beeps
const (
	SarcasticBeepCount    = 3
	SarcasticBeepFreq     = 1000.0
	SarcasticBeepDuration = 100 * time.Millisecond
	SarcasticBeepSpacing  = 150 * time.Millisecond
	SarcasticBeepGain     = 0.1
)

// SoundEndGain is the exponential ramp floor shared by all effects
const SoundEndGain = 0.01
