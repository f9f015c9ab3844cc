package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSquare
)

// Tone describes one enveloped oscillator note.
type Tone struct {
	Wave     Wave
	Freq     float64       // Starting frequency in Hz
	FreqTo   float64       // Target frequency; 0 keeps Freq
	Glide    time.Duration // Exponential ramp to FreqTo over this long
	StepAt   time.Duration // Jump to FreqTo at this offset instead of gliding
	Gain     float64
	GainTo   float64
	Linear   bool // Linear gain ramp; exponential otherwise
	Duration time.Duration
}

// toneStreamer renders a Tone sample by sample.
type toneStreamer struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
}

// NewTone creates a streamer that plays t once and ends.
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{tone: t, rate: rate, total: rate.N(t.Duration)}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		elapsed := float64(s.pos) / float64(s.rate)
		progress := float64(s.pos) / float64(s.total)

		var val float64
		switch s.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveTriangle:
			val = 4*math.Abs(s.phase-0.5) - 1
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		}

		sample := val * s.gain(progress)
		samples[i][0] = sample
		samples[i][1] = sample

		s.phase += s.freq(elapsed) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error {
	return nil
}

func (s *toneStreamer) freq(elapsed float64) float64 {
	t := s.tone
	if t.FreqTo <= 0 {
		return t.Freq
	}
	if t.StepAt > 0 {
		if elapsed >= t.StepAt.Seconds() {
			return t.FreqTo
		}
		return t.Freq
	}
	if t.Glide <= 0 || elapsed >= t.Glide.Seconds() {
		return t.FreqTo
	}
	return t.Freq * math.Pow(t.FreqTo/t.Freq, elapsed/t.Glide.Seconds())
}

func (s *toneStreamer) gain(progress float64) float64 {
	t := s.tone
	if t.Linear || t.Gain <= 0 || t.GainTo <= 0 {
		return t.Gain + (t.GainTo-t.Gain)*progress
	}
	return t.Gain * math.Pow(t.GainTo/t.Gain, progress)
}
