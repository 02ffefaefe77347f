package ear

import "math"

// AlignedDistance is Distance with dynamic-time-warping alignment along
// the time axis, compensating for timing drift between the two signals
// such as codec delay or resampler latency. Both inputs are left
// untouched: peak-normalized copies are aligned with a minimum-cost
// monotonic step mapping under Euclidean spectral cost, and the windowed
// similarity statistic runs over the aligned step sequence. Degenerate
// sizes behave as in Distance.
func (e *Engine) AlignedDistance(a, b *Spectrogram) (float32, error) {
	if a.dims != b.dims {
		return 0, ErrChannelMismatch
	}
	if a.steps == 0 || b.steps == 0 {
		if a.steps == b.steps {
			return 0, nil
		}
		return 1, nil
	}
	na, nb := a.normalized(), b.normalized()
	path := alignSteps(na, nb)

	wa, wb := NewSpectrogram(len(path)), NewSpectrogram(len(path))
	for i, p := range path {
		copy(wa.values[i*wa.dims:(i+1)*wa.dims], na.values[p.a*na.dims:(p.a+1)*na.dims])
		copy(wb.values[i*wb.dims:(i+1)*wb.dims], nb.values[p.b*nb.dims:(p.b+1)*nb.dims])
	}

	sw := clampWindow(e.NSIMStepWindow, len(path))
	cw := clampWindow(e.NSIMChannelWindow, a.dims)
	return float32(1 - meanNSIM(wa, wb, len(path), sw, cw)), nil
}

type stepPair struct{ a, b int }

// alignSteps computes the minimum-cost monotonic alignment between the
// time steps of two non-empty spectrograms. Classic quadratic dynamic
// programming with match, insert and delete moves, followed by a
// backtrack from the final cell.
func alignSteps(a, b *Spectrogram) []stepPair {
	n, m := a.steps, b.steps
	cost := make([]float64, (n+1)*(m+1))
	idx := func(i, j int) int { return i*(m+1) + j }
	for i := range cost {
		cost[i] = math.Inf(1)
	}
	cost[idx(0, 0)] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			best := cost[idx(i-1, j-1)]
			if v := cost[idx(i-1, j)]; v < best {
				best = v
			}
			if v := cost[idx(i, j-1)]; v < best {
				best = v
			}
			cost[idx(i, j)] = stepCost(a, i-1, b, j-1) + best
		}
	}

	var rev []stepPair
	for i, j := n, m; i > 0 && j > 0; {
		rev = append(rev, stepPair{i - 1, j - 1})
		d, u, l := cost[idx(i-1, j-1)], cost[idx(i-1, j)], cost[idx(i, j-1)]
		switch {
		case d <= u && d <= l:
			i, j = i-1, j-1
		case u <= l:
			i--
		default:
			j--
		}
	}

	path := make([]stepPair, len(rev))
	for k := range rev {
		path[k] = rev[len(rev)-1-k]
	}
	return path
}

func stepCost(a *Spectrogram, i int, b *Spectrogram, j int) float64 {
	var sum float64
	for c := 0; c < a.dims; c++ {
		d := float64(a.At(i, c)) - float64(b.At(j, c))
		sum += d * d
	}
	return math.Sqrt(sum)
}
