//go:build !linux

package internal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SoundEvent represents the different chime events in the studio
type SoundEvent int

const (
	SoundRenderComplete SoundEvent = iota
	SoundExportComplete
	SoundError
)

const soundSampleRate = beep.SampleRate(44100)

// chime describes the synthesized tone for one event. Tones are generated
// rather than shipped as audio assets.
type chime struct {
	freq     int
	duration time.Duration
}

var chimes = map[SoundEvent]chime{
	SoundRenderComplete: {freq: 880, duration: 150 * time.Millisecond},
	SoundExportComplete: {freq: 660, duration: 150 * time.Millisecond},
	SoundError:          {freq: 220, duration: 300 * time.Millisecond},
}

// SoundPlayer plays short synthesized chimes for studio events
type SoundPlayer struct {
	enabled bool
	mu      sync.Mutex
}

// NewSoundPlayer creates and initializes a new sound player.
// Speaker initialization failure is fatal.
func NewSoundPlayer(enabled bool) (*SoundPlayer, error) {
	if err := speaker.Init(soundSampleRate, 4096); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	return &SoundPlayer{enabled: enabled}, nil
}

// PlayAsync plays a chime asynchronously without blocking. A nil player
// (failed speaker init) is safe to call.
func (sp *SoundPlayer) PlayAsync(event SoundEvent) {
	if sp == nil {
		return
	}
	sp.mu.Lock()
	enabled := sp.enabled
	sp.mu.Unlock()
	if !enabled {
		return
	}

	c, ok := chimes[event]
	if !ok {
		return
	}

	go func() {
		tone, err := generators.SineTone(soundSampleRate, float64(c.freq))
		if err != nil {
			return
		}

		done := make(chan bool)
		speaker.Play(beep.Seq(
			beep.Take(soundSampleRate.N(c.duration), tone),
			beep.Callback(func() {
				done <- true
			}),
		))

		// Wait for playback to complete with timeout to prevent goroutine leak
		select {
		case <-done:
		case <-time.After(5 * time.Second):
		}
	}()
}

// SetEnabled enables or disables sound playback
func (sp *SoundPlayer) SetEnabled(enabled bool) {
	if sp == nil {
		return
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.enabled = enabled
}

// Close cleans up the sound player resources
func (sp *SoundPlayer) Close() {
	if sp == nil {
		return
	}
	speaker.Clear()
}
