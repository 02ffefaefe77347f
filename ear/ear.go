package ear

import "github.com/r9y9/gossp/window"

// Model constants shared by every Engine.
const (
	// NumChannels is the number of frequency channels in every spectrogram.
	NumChannels = 128

	// SampleRate is the sample rate, in Hz, input signals must already be
	// resampled to.
	SampleRate = 48000.0

	// FullScaleSineDB is the loudness assigned to a full-scale sine wave,
	// anchoring the dB conversion to an absolute reference level.
	FullScaleSineDB = 78.3

	// Analysis frame and hop, in samples. One spectrogram step covers
	// frameLength samples and consecutive steps are hopLength apart, so
	// the spectrogram runs at SampleRate/hopLength = 93.75 steps per
	// second.
	frameLength = 1024
	hopLength   = 512

	// Frequency range covered by the channel filterbank.
	minFrequency = 20.0
	maxFrequency = 20000.0

	// Mean-square power of a full-scale sine, the calibration anchor for
	// the loudness conversion.
	referenceEnergy = 0.5
)

// Engine holds the analysis and comparison configuration.
//
// The two window fields may be changed between calls; the remaining model
// parameters are fixed. An Engine may be shared by concurrent Analyze and
// Distance calls as long as the window fields are not mutated while a
// call is in flight.
type Engine struct {
	// NSIMStepWindow is the similarity window size along the time axis.
	NSIMStepWindow int
	// NSIMChannelWindow is the similarity window size along the frequency
	// axis.
	NSIMChannelWindow int

	win  []float64
	bank *filterbank
}

// New creates an Engine with the default configuration.
func New() *Engine {
	return &Engine{
		NSIMStepWindow:    8,
		NSIMChannelWindow: 5,
		win:               window.CreateHanning(frameLength),
		bank:              newFilterbank(),
	}
}

// PerceptualSampleRate returns the sample rate input signals must have.
func (e *Engine) PerceptualSampleRate() float32 { return SampleRate }

// FullScaleSineDB returns the loudness a full-scale sine is calibrated to.
func (e *Engine) FullScaleSineDB() float32 { return FullScaleSineDB }
