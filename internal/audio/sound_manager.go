// Package audio plays the simulation's sound cues through the system
// speaker. When no output device is available it stays silent.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-fishing/internal/fishing"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager mixes cue sounds onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

var _ fishing.Audio = (*SoundManager)(nil)

// NewSoundManager creates a sound manager at full volume.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1,
	}
}

// Initialize opens the speaker. On failure the manager stays usable and
// silently drops cues.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
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

// Enabled reports whether cues reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// Initialized reports whether the speaker was opened.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetVolume sets the master volume, clamped to [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = math.Max(0, math.Min(1, v))
}

// Volume returns the master volume.
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// SetMuted silences or restores cues.
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = m
}

// Muted reports whether cues are silenced.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayCue implements fishing.Audio.
func (sm *SoundManager) PlayCue(c fishing.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := CueStreamer(c, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
