package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/events"
)

// ErrUnavailable is returned when no audio device could be opened
var ErrUnavailable = errors.New("audio: output device unavailable")

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager plays synthesized effects in response to sound events
// Until Initialize succeeds every request is a no-op, so the game runs silent
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      int
	initialized bool
	played      [events.SoundKindCount]int
}

// NewSoundManager creates a new sound manager at half volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 50,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferLength)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops pending sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// HandleEvent implements events.Handler
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventSound:
		if p, ok := ev.Payload.(*events.SoundPayload); ok {
			sm.Play(p.Kind)
		}
	case events.EventVolume:
		if p, ok := ev.Payload.(*events.VolumePayload); ok {
			sm.SetVolume(p.Volume)
		}
	}
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{events.EventSound, events.EventVolume}
}

// SetVolume sets the master volume, 0-100
func (sm *SoundManager) SetVolume(v int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = max(0, min(100, v))
}

// Volume returns the master volume
func (sm *SoundManager) Volume() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Played returns how many times the given effect was requested while initialized
func (sm *SoundManager) Played(kind events.SoundKind) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if int(kind) < 0 || int(kind) >= len(sm.played) {
		return 0
	}
	return sm.played[kind]
}

// Play queues the effect on the mixer
func (sm *SoundManager) Play(kind events.SoundKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := Effect(kind, sampleRate, float64(sm.volume)/100)
	if err != nil {
		log.Printf("audio: %s: %v", kind, err)
		return
	}
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[kind]++
}

// Effect builds the streamer for a sound kind; unknown kinds return nil
func Effect(kind events.SoundKind, rate beep.SampleRate, master float64) (beep.Streamer, error) {
	switch kind {
	case events.SoundError:
		return CreateErrorSound(rate, master), nil
	case events.SoundCollect:
		return CreateCollectSound(rate, master), nil
	case events.SoundSarcastic:
		return CreateSarcasticSound(rate, master)
	default:
		return nil, nil
	}
}
