package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-fishing/internal/fishing"
)

// Note frequencies for the catch jingle.
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
)

// cueTones lists the notes of each cue, played back to back.
var cueTones = map[fishing.Cue][]Tone{
	// Swoosh
	fishing.CueCast: {{
		Wave: WaveTriangle, Freq: 400, FreqTo: 800, Glide: 100 * time.Millisecond,
		Gain: 0.3, GainTo: 0.01, Duration: 300 * time.Millisecond,
	}},
	fishing.CueHit: {{
		Wave: WaveSquare, Freq: 600, FreqTo: 800, StepAt: 100 * time.Millisecond,
		Gain: 0.2, GainTo: 0.01, Duration: 200 * time.Millisecond,
	}},
	fishing.CueCatch: {
		{Wave: WaveSine, Freq: noteC5, Gain: 0.2, Linear: true, Duration: 100 * time.Millisecond},
		{Wave: WaveSine, Freq: noteE5, Gain: 0.2, Linear: true, Duration: 100 * time.Millisecond},
		{Wave: WaveSine, Freq: noteG5, Gain: 0.2, Linear: true, Duration: 200 * time.Millisecond},
	},
	// Click
	fishing.CueAlert: {{
		Wave: WaveSine, Freq: 800, Gain: 0.1, GainTo: 0.01, Duration: 50 * time.Millisecond,
	}},
}

// CueStreamer returns a streamer for the cue, or nil for an unknown cue.
func CueStreamer(c fishing.Cue, rate beep.SampleRate) beep.Streamer {
	tones, ok := cueTones[c]
	if !ok {
		return nil
	}
	streamers := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		streamers[i] = NewTone(t, rate)
	}
	if len(streamers) == 1 {
		return streamers[0]
	}
	return beep.Seq(streamers...)
}

// CueDuration returns how long the cue plays.
func CueDuration(c fishing.Cue) time.Duration {
	var d time.Duration
	for _, t := range cueTones[c] {
		d += t.Duration
	}
	return d
}
