package ear

// Spectrogram is a dense time-by-channel grid of non-negative perceptual
// loudness values. Values are stored row-major: all channels of step 0,
// then all channels of step 1, and so on. The buffer length is always
// NumSteps times NumDims and never changes after construction.
type Spectrogram struct {
	steps  int
	dims   int
	values []float32
}

// NewSpectrogram creates an all-zero spectrogram with the given number of
// time steps and NumChannels channels.
func NewSpectrogram(numSteps int) *Spectrogram {
	return &Spectrogram{
		steps:  numSteps,
		dims:   NumChannels,
		values: make([]float32, numSteps*NumChannels),
	}
}

// NumSteps returns the number of time steps.
func (s *Spectrogram) NumSteps() int { return s.steps }

// NumDims returns the number of frequency channels per step.
func (s *Spectrogram) NumDims() int { return s.dims }

// Size returns the total number of values, NumSteps times NumDims.
func (s *Spectrogram) Size() int { return len(s.values) }

// Max returns the largest value, or 0 for an empty spectrogram.
func (s *Spectrogram) Max() float32 {
	var m float32
	for _, v := range s.values {
		if v > m {
			m = v
		}
	}
	return m
}

// Rescale multiplies every value by f in place. The shape is unaffected.
func (s *Spectrogram) Rescale(f float32) {
	for i := range s.values {
		s.values[i] *= f
	}
}

// Values returns the backing buffer. Callers may read and write values
// through it but must not resize it.
func (s *Spectrogram) Values() []float32 { return s.values }

// At returns the value at the given time step and channel.
func (s *Spectrogram) At(step, channel int) float32 {
	return s.values[step*s.dims+channel]
}

func (s *Spectrogram) set(step, channel int, v float32) {
	s.values[step*s.dims+channel] = v
}

func (s *Spectrogram) clone() *Spectrogram {
	c := &Spectrogram{steps: s.steps, dims: s.dims, values: make([]float32, len(s.values))}
	copy(c.values, s.values)
	return c
}

// normalized returns a copy rescaled so its peak value is 1. All-zero
// spectrograms are returned as plain copies.
func (s *Spectrogram) normalized() *Spectrogram {
	c := s.clone()
	if m := c.Max(); m > 0 {
		c.Rescale(1 / m)
	}
	return c
}
