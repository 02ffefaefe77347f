package ear

import (
	"math"
	"testing"
)

func TestSpectrogramShape(t *testing.T) {
	spec := NewSpectrogram(7)
	if spec.NumSteps() != 7 {
		t.Errorf("got %d steps, wanted 7", spec.NumSteps())
	}
	if spec.NumDims() != NumChannels {
		t.Errorf("got %d dims, wanted %d", spec.NumDims(), NumChannels)
	}
	if spec.Size() != 7*NumChannels {
		t.Errorf("got size %d, wanted %d", spec.Size(), 7*NumChannels)
	}
	if spec.Max() != 0 {
		t.Errorf("got max %v for an all-zero spectrogram, wanted 0", spec.Max())
	}
}

func TestSpectrogramEmpty(t *testing.T) {
	spec := NewSpectrogram(0)
	if spec.Size() != 0 {
		t.Errorf("got size %d, wanted 0", spec.Size())
	}
	if spec.Max() != 0 {
		t.Errorf("got max %v, wanted 0", spec.Max())
	}
}

func TestSpectrogramRescale(t *testing.T) {
	spec := NewSpectrogram(3)
	values := spec.Values()
	for i := range values {
		values[i] = float32(i)
	}
	for _, f := range []float32{2, 0.25, 3.5} {
		want := f * spec.Max()
		spec.Rescale(f)
		if spec.NumSteps() != 3 || spec.NumDims() != NumChannels || spec.Size() != 3*NumChannels {
			t.Fatalf("rescale by %v changed the shape", f)
		}
		if got := spec.Max(); math.Abs(float64(got-want)) > 1e-3 {
			t.Errorf("rescale by %v: got max %v, wanted %v", f, got, want)
		}
	}
}

func TestSpectrogramAt(t *testing.T) {
	spec := NewSpectrogram(2)
	spec.set(1, 5, 42)
	if got := spec.At(1, 5); got != 42 {
		t.Errorf("got %v, wanted 42", got)
	}
	if got := spec.Values()[1*NumChannels+5]; got != 42 {
		t.Errorf("row-major layout broken: got %v, wanted 42", got)
	}
}

func TestNormalizedLeavesOriginal(t *testing.T) {
	spec := NewSpectrogram(1)
	spec.set(0, 0, 4)
	norm := spec.normalized()
	if norm.Max() != 1 {
		t.Errorf("got normalized max %v, wanted 1", norm.Max())
	}
	if spec.Max() != 4 {
		t.Errorf("normalization mutated the original: max %v, wanted 4", spec.Max())
	}
}
