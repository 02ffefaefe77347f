package ear

import "math"

func hzToCam(hz float64) float64 {
	return 21.4 * math.Log10(1+0.00437*hz)
}

func camToHz(cam float64) float64 {
	return (math.Pow(10, cam/21.4) - 1) / 0.00437
}

type channelFilter struct {
	first   int       // first FFT bin the filter touches
	weights []float64 // triangular weights, peak 1
}

// filterbank pools FFT bin powers into NumChannels band energies. Channel
// centers are equally spaced on the Cam (ERB-rate) scale between
// minFrequency and maxFrequency, which is roughly logarithmic above
// ~500 Hz and closer to linear below. Each filter is a triangle reaching
// from the previous center to the next, so neighboring filters overlap by
// half.
type filterbank struct {
	filters [NumChannels]channelFilter
}

func newFilterbank() *filterbank {
	const numBins = frameLength/2 + 1
	const binWidth = SampleRate / frameLength

	edges := make([]float64, NumChannels+2)
	lo, hi := hzToCam(minFrequency), hzToCam(maxFrequency)
	for i := range edges {
		edges[i] = camToHz(lo + (hi-lo)*float64(i)/float64(len(edges)-1))
	}

	fb := &filterbank{}
	for c := 0; c < NumChannels; c++ {
		lower, center, upper := edges[c], edges[c+1], edges[c+2]

		first := int(math.Ceil(lower / binWidth))
		last := int(math.Floor(upper / binWidth))
		if first < 0 {
			first = 0
		}
		if last > numBins-1 {
			last = numBins - 1
		}

		var weights []float64
		var peak float64
		for k := first; k <= last; k++ {
			f := float64(k) * binWidth
			var w float64
			if f <= center {
				w = (f - lower) / (center - lower)
			} else {
				w = (upper - f) / (upper - center)
			}
			if w < 0 {
				w = 0
			}
			if w > peak {
				peak = w
			}
			weights = append(weights, w)
		}

		if peak == 0 {
			// Channel narrower than one bin: its nearest bin carries it
			// alone. Happens at the low end of the scale where 46.875 Hz
			// bins are wider than a Cam step.
			nearest := int(math.Round(center / binWidth))
			if nearest > numBins-1 {
				nearest = numBins - 1
			}
			fb.filters[c] = channelFilter{first: nearest, weights: []float64{1}}
			continue
		}
		fb.filters[c] = channelFilter{first: first, weights: weights}
	}
	return fb
}

// energies pools per-bin powers into per-channel band energies.
func (fb *filterbank) energies(power []float64, dst []float64) {
	for c := range fb.filters {
		f := &fb.filters[c]
		var e float64
		for i, w := range f.weights {
			e += w * power[f.first+i]
		}
		dst[c] = e
	}
}
