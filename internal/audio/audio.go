// Package audio plays the game's sound cues.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/invaders/internal/asset"
)

const sampleRate = beep.SampleRate(44100)

// Player plays a sound. Play is fire-and-forget and never blocks the frame.
type Player interface {
	Play(snd *asset.Sound)
}

// Silent discards every sound.
type Silent struct{}

// Play does nothing.
func (Silent) Play(*asset.Sound) {}

// Recorder remembers the cues it was asked to play.
type Recorder struct {
	mu     sync.Mutex
	played []asset.Cue
}

// Play records the cue of snd.
func (r *Recorder) Play(snd *asset.Sound) {
	if snd == nil {
		return
	}
	r.mu.Lock()
	r.played = append(r.played, snd.Cue)
	r.mu.Unlock()
}

// Played returns the recorded cues in order.
func (r *Recorder) Played() []asset.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]asset.Cue(nil), r.played...)
}

// Speaker plays synthesized cues on the default audio device.
type Speaker struct {
	volume float64 // 0..1
}

// NewSpeaker initializes the audio device. volume is a percentage in 0..100.
func NewSpeaker(volume int) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{volume: float64(min(max(volume, 0), 100)) / 100}, nil
}

// Play starts the cue of snd on top of anything already playing.
func (s *Speaker) Play(snd *asset.Sound) {
	if snd == nil || snd.Cue == asset.CueNone {
		return
	}
	speaker.Play(Effect(snd.Cue, sampleRate, s.volume))
}

// Close releases the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}

// Open returns a Speaker when enabled and the device initializes, and Silent otherwise.
// The returned close function is always safe to call.
func Open(enabled bool, volume int, logger *log.Logger) (Player, func()) {
	if !enabled {
		return Silent{}, func() {}
	}
	sp, err := NewSpeaker(volume)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Silent{}, func() {}
	}
	return sp, sp.Close
}
