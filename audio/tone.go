package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"entropia/model"
)

type tone struct {
	freq     float64
	gain     float64
	duration time.Duration
}

func toneFor(kind model.EventKind) tone {
	switch kind {
	case model.WallHit:
		return tone{freq: 180, gain: 0.15, duration: 60 * time.Millisecond}
	case model.EnemyHit:
		return tone{freq: 660, gain: 0.25, duration: 120 * time.Millisecond}
	case model.PlayerHit:
		return tone{freq: 110, gain: 0.35, duration: 250 * time.Millisecond}
	case model.ShotFired:
		return tone{freq: 880, gain: 0.1, duration: 50 * time.Millisecond}
	default:
		return tone{freq: 440, gain: 0.1, duration: 50 * time.Millisecond}
	}
}

// toneGenerator is a sine with a short attack ramp so tones start without a click.
type toneGenerator struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
}

func newToneGenerator(sr beep.SampleRate, freq, gain float64) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq, gain: gain}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0)
		sample := g.gain * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
