package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/troll-dodge/constants"
)

// sweep generates a sine whose frequency and gain both ramp exponentially
// from start to end values over a fixed duration
type sweep struct {
	rate      beep.SampleRate
	startFreq float64
	endFreq   float64
	startGain float64
	endGain   float64
	phase     float64
	position  int
	total     int
}

// NewSweep creates an exponential frequency sweep with a decaying gain ramp
func NewSweep(startFreq, endFreq, gain float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		rate:      rate,
		startFreq: startFreq,
		endFreq:   endFreq,
		startGain: gain,
		endGain:   constants.SoundEndGain,
		total:     rate.N(duration),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}
		progress := float64(s.position) / float64(s.total)
		freq := expRamp(s.startFreq, s.endFreq, progress)
		gain := expRamp(s.startGain, s.endGain, progress)

		val := gain * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// gainRamp applies an exponential gain decay to a finite stream
type gainRamp struct {
	streamer  beep.Streamer
	startGain float64
	endGain   float64
	position  int
	total     int
}

// NewGainRamp decays the wrapped stream from gain to SoundEndGain over duration
func NewGainRamp(s beep.Streamer, gain float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &gainRamp{
		streamer:  beep.Take(rate.N(duration), s),
		startGain: gain,
		endGain:   constants.SoundEndGain,
		total:     rate.N(duration),
	}
}

func (g *gainRamp) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := expRamp(g.startGain, g.endGain, float64(g.position)/float64(g.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		g.position++
	}
	return n, ok
}

func (g *gainRamp) Err() error { return g.streamer.Err() }

// expRamp interpolates geometrically between a and b, both > 0
func expRamp(a, b, progress float64) float64 {
	if progress <= 0 {
		return a
	}
	if progress >= 1 {
		return b
	}
	return a * math.Pow(b/a, progress)
}

// newVolume scales a stream by a linear 0..1 factor
// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateErrorSound generates the descending damage sweep
func CreateErrorSound(rate beep.SampleRate, master float64) beep.Streamer {
	s := NewSweep(constants.ErrorSoundStartFreq, constants.ErrorSoundEndFreq,
		constants.ErrorSoundGain, constants.ErrorSoundDuration, rate)
	return newVolume(s, master)
}

// CreateCollectSound generates the ascending pickup chirp
func CreateCollectSound(rate beep.SampleRate, master float64) beep.Streamer {
	s := NewSweep(constants.CollectSoundStartFreq, constants.CollectSoundEndFreq,
		constants.CollectSoundGain, constants.CollectSoundDuration, rate)
	return newVolume(s, master)
}

// CreateSarcasticSound generates three short high beeps
func CreateSarcasticSound(rate beep.SampleRate, master float64) (beep.Streamer, error) {
	gap := constants.SarcasticBeepSpacing - constants.SarcasticBeepDuration
	parts := make([]beep.Streamer, 0, constants.SarcasticBeepCount*2)
	for i := 0; i < constants.SarcasticBeepCount; i++ {
		tone, err := generators.SineTone(rate, constants.SarcasticBeepFreq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, NewGainRamp(tone, constants.SarcasticBeepGain, constants.SarcasticBeepDuration, rate))
		if i < constants.SarcasticBeepCount-1 {
			parts = append(parts, beep.Silence(rate.N(gap)))
		}
	}
	return newVolume(beep.Seq(parts...), master), nil
}
