package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// SpeakerBufferLength determines output latency
	SpeakerBufferLength = 100 * time.Millisecond
)

// Generation Pulse
const (
	// PulseDuration is the length of one generation pulse
	PulseDuration = 60 * time.Millisecond

	// PulseAttack is the linear fade-in, long enough to avoid clicks
	PulseAttack = 5 * time.Millisecond

	// PulseDecayRate is the exponential envelope decay per second
	PulseDecayRate = 28.0

	// PulseMinFreq is the pitch of an empty field in Hz
	PulseMinFreq = 220.0

	// PulseFreqSpan is added to PulseMinFreq at full density, so pitch
	// rises with population
	PulseFreqSpan = 440.0

	// PulseAmplitude at unity gain
	PulseAmplitude = 0.25

	// PulseMinGap drops pulses scheduled closer together than this, so
	// fast tick rates do not smear into a drone
	PulseMinGap = 45 * time.Millisecond
)
