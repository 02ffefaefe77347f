package wave

import (
	"github.com/faiface/beep"

	"github.com/neurlang/gonsim/ear"
)

// monoStreamer adapts a mono sample vector to a beep.Streamer, feeding
// the same value to both channels.
type monoStreamer struct {
	buf []float64
	pos int
}

func (m *monoStreamer) Stream(samples [][2]float64) (int, bool) {
	if m.pos >= len(m.buf) {
		return 0, false
	}
	n := 0
	for n < len(samples) && m.pos < len(m.buf) {
		v := m.buf[m.pos]
		samples[n][0], samples[n][1] = v, v
		m.pos++
		n++
	}
	return n, true
}

func (m *monoStreamer) Err() error { return nil }

// Resample converts mono samples from the given rate to ear.SampleRate.
// Samples already at the target rate are only converted to float32.
func Resample(buf []float64, from int) []float32 {
	if from == int(ear.SampleRate) {
		out := make([]float32, len(buf))
		for i, v := range buf {
			out[i] = float32(v)
		}
		return out
	}
	r := beep.Resample(4, beep.SampleRate(from), beep.SampleRate(ear.SampleRate), &monoStreamer{buf: buf})
	return drainMono(r, 1)
}

// drainMono streams everything from src, averaging the two channels and
// applying gain to every sample.
func drainMono(src beep.Streamer, gain float64) []float32 {
	var out []float32
	buf := make([][2]float64, 512)
	for {
		n, ok := src.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, float32(gain*(buf[i][0]+buf[i][1])/2))
		}
		if !ok {
			return out
		}
	}
}
