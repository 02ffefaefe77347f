package ear

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// SpectrogramSteps returns the number of time steps Analyze produces for
// a signal of numSamples samples: 0 when the signal is shorter than one
// analysis frame, otherwise one step per hop of the short-time analysis.
// The result is non-decreasing in numSamples.
func (e *Engine) SpectrogramSteps(numSamples int) int {
	if numSamples < frameLength {
		return 0
	}
	return (numSamples-frameLength)/hopLength + 1
}

// Analyze converts a mono signal sampled at SampleRate into a spectrogram
// of perceptual loudness values. Sample values are expected in [-1, 1];
// non-finite samples propagate into the output. Identical signals always
// produce identical spectrograms.
func (e *Engine) Analyze(signal []float32) *Spectrogram {
	steps := e.SpectrogramSteps(len(signal))
	spec := NewSpectrogram(steps)

	var coherentGain float64
	for _, w := range e.win {
		coherentGain += w
	}
	// Scaled so a full-scale on-bin sine yields bin power ~referenceEnergy.
	scale := 2 / (coherentGain * coherentGain)

	frame := make([]float64, frameLength)
	power := make([]float64, frameLength/2+1)
	energy := make([]float64, NumChannels)

	for t := 0; t < steps; t++ {
		off := t * hopLength
		for j := 0; j < frameLength; j++ {
			frame[j] = float64(signal[off+j]) * e.win[j]
		}
		bins := fft.FFTReal(frame)
		for k := 0; k <= frameLength/2; k++ {
			re, im := real(bins[k]), imag(bins[k])
			p := (re*re + im*im) * scale
			if k == 0 || k == frameLength/2 {
				p /= 2
			}
			power[k] = p
		}
		e.bank.energies(power, energy)
		for c := 0; c < NumChannels; c++ {
			spec.set(t, c, loudness(energy[c]))
		}
	}
	return spec
}

// loudness converts band energy to dB, anchored so a full-scale sine maps
// to FullScaleSineDB and clamped at 0 so silence stays silent.
func loudness(energy float64) float32 {
	db := FullScaleSineDB + 10*math.Log10(energy/referenceEnergy)
	if db < 0 {
		return 0
	}
	return float32(db)
}
