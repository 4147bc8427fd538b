package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/tomz197/invaders/internal/asset"
)

// sweep is a square wave whose frequency moves linearly from one pitch to another.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	position int
	duration int
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{rate: rate, from: from, to: to, duration: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is white noise for d.
func noise(d time.Duration, rate beep.SampleRate) beep.Streamer {
	return beep.Take(rate.N(d), beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	}))
}

// fadeOut scales s linearly down to silence over d, then ends it.
type fadeOut struct {
	streamer beep.Streamer
	position int
	duration int
}

func newFadeOut(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fadeOut{streamer: s, duration: rate.N(d)}
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	if f.position >= f.duration {
		return 0, false
	}
	if rest := f.duration - f.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.position)/float64(f.duration)
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// withVolume applies a linear 0..1 volume; 0 is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect synthesizes the streamer for a cue. Every effect is finite.
func Effect(cue asset.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case asset.CueShoot:
		d := 120 * time.Millisecond
		s = newFadeOut(newSweep(1400, 350, d, rate), d, rate)
	case asset.CueInvaderKilled:
		d := 150 * time.Millisecond
		tone, err := generators.SineTone(rate, 220)
		if err != nil {
			s = noise(d, rate)
			break
		}
		s = newFadeOut(beep.Mix(
			&effects.Volume{Streamer: beep.Take(rate.N(d), tone), Base: 2, Volume: -1},
			&effects.Volume{Streamer: noise(d, rate), Base: 2, Volume: -1},
		), d, rate)
	case asset.CueExplosion:
		d := 400 * time.Millisecond
		s = newFadeOut(noise(d, rate), d, rate)
	default:
		return beep.Silence(0)
	}
	return withVolume(s, volume)
}
