// Package audio plays an optional short tone per generation, pitched by
// population density. Audio is strictly best-effort: when the speaker
// fails to initialize (headless machines, CI), every operation degrades
// to a no-op and the game runs silently.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/maxcabrajac/game-of-life/constant"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// Pulse manages the speaker and schedules generation pulses.
type Pulse struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastPlay    time.Time
}

// NewPulse creates an uninitialized pulse manager.
func NewPulse() *Pulse {
	return &Pulse{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer. Calling it again
// after success is a no-op.
func (p *Pulse) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constant.SpeakerBufferLength)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops all pending pulses. beep exposes no speaker close, so
// clearing the mixer is the full shutdown.
func (p *Pulse) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// Play schedules one pulse. density is the live-cell fraction of the grid
// and sets the pitch: an empty field hums low, a crowded one rings high.
// Pulses closer together than PulseMinGap are dropped so fast tick rates
// stay percussive instead of smearing into a drone.
func (p *Pulse) Play(density float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	now := time.Now()
	if now.Sub(p.lastPlay) < constant.PulseMinGap {
		return
	}
	p.lastPlay = now

	density = math.Max(0, math.Min(1, density))
	freq := constant.PulseMinFreq + constant.PulseFreqSpan*density
	p.mixer.Add(beep.Take(sampleRate.N(constant.PulseDuration), newPulseStreamer(freq)))
}

// pulseStreamer synthesizes a sine tone with a short linear attack and an
// exponential decay. It streams forever; the mixer entry is bounded by
// beep.Take.
type pulseStreamer struct {
	freq float64
	pos  int
}

func newPulseStreamer(freq float64) *pulseStreamer {
	return &pulseStreamer{freq: freq}
}

func (ps *pulseStreamer) Stream(samples [][2]float64) (int, bool) {
	attack := sampleRate.N(constant.PulseAttack)
	for i := range samples {
		t := float64(ps.pos) / float64(constant.AudioSampleRate)
		v := constant.PulseAmplitude * math.Sin(2*math.Pi*ps.freq*t)
		v *= math.Exp(-constant.PulseDecayRate * t)
		if ps.pos < attack {
			v *= float64(ps.pos) / float64(attack)
		}
		samples[i][0] = v
		samples[i][1] = v
		ps.pos++
	}
	return len(samples), true
}

func (ps *pulseStreamer) Err() error {
	return nil
}
