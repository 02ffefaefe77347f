package ear

import (
	"errors"
	"math"
)

// ErrChannelMismatch is returned when two spectrograms do not have the
// same number of frequency channels. That only happens when spectrograms
// from differently configured engines are mixed.
var ErrChannelMismatch = errors.New("channelMismatch")

// Stabilizers for the similarity statistic. The compared spectrograms are
// peak-normalized to 1 first, so these are the usual structural-similarity
// constants for a dynamic range of 1: (0.01)^2 and (0.03)^2.
const (
	nsimC1 = 1e-4
	nsimC2 = 9e-4
)

// Distance returns the perceptual distance between two spectrograms: 0
// for identical content, growing towards 1 with increasing difference.
//
// Both inputs are left untouched. Each is copied and the copy rescaled so
// its peak value is 1 (all-zero spectrograms stay as they are), removing
// absolute level differences. The copies are then compared over their
// first min(a.NumSteps(), b.NumSteps()) steps with a sliding
// NSIMStepWindow by NSIMChannelWindow window; per window the similarity
// index combines local mean, variance and covariance, and the distance is
// 1 minus the mean over all window positions. Window sizes larger than
// the available extent are clamped to it, so short spectrograms degrade
// to a single whole-range window. If either input has zero steps the
// result is 0 when both are empty and 1 otherwise.
func (e *Engine) Distance(a, b *Spectrogram) (float32, error) {
	if a.dims != b.dims {
		return 0, ErrChannelMismatch
	}
	steps := a.steps
	if b.steps < steps {
		steps = b.steps
	}
	if steps == 0 {
		if a.steps == b.steps {
			return 0, nil
		}
		return 1, nil
	}
	na, nb := a.normalized(), b.normalized()
	sw := clampWindow(e.NSIMStepWindow, steps)
	cw := clampWindow(e.NSIMChannelWindow, a.dims)
	return float32(1 - meanNSIM(na, nb, steps, sw, cw)), nil
}

func clampWindow(w, extent int) int {
	if w < 1 {
		return 1
	}
	if w > extent {
		return extent
	}
	return w
}

// meanNSIM slides a sw by cw window over the first steps time steps of
// both spectrograms, stepping by one in each direction, and averages the
// per-window similarity index.
func meanNSIM(a, b *Spectrogram, steps, sw, cw int) float64 {
	var sum float64
	var count int
	for t := 0; t+sw <= steps; t++ {
		for c := 0; c+cw <= a.dims; c++ {
			sum += windowNSIM(a, b, t, c, sw, cw)
			count++
		}
	}
	return sum / float64(count)
}

func windowNSIM(a, b *Spectrogram, t0, c0, sw, cw int) float64 {
	n := float64(sw * cw)

	var sa, sb float64
	for t := t0; t < t0+sw; t++ {
		for c := c0; c < c0+cw; c++ {
			sa += float64(a.At(t, c))
			sb += float64(b.At(t, c))
		}
	}
	ma, mb := sa/n, sb/n

	var va, vb, cov float64
	for t := t0; t < t0+sw; t++ {
		for c := c0; c < c0+cw; c++ {
			da := float64(a.At(t, c)) - ma
			db := float64(b.At(t, c)) - mb
			va += da * da
			vb += db * db
			cov += da * db
		}
	}
	va /= n
	vb /= n
	cov /= n

	intensity := (2*ma*mb + nsimC1) / (ma*ma + mb*mb + nsimC1)
	structure := (cov + nsimC2) / (math.Sqrt(va)*math.Sqrt(vb) + nsimC2)
	return intensity * structure
}
