package specio

import (
	"bytes"
	"errors"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/neurlang/gonsim/ear"
)

func analyzedSine(t *testing.T) *ear.Spectrogram {
	t.Helper()
	e := ear.New()
	signal := make([]float32, 9600)
	for i := range signal {
		signal[i] = float32(math.Sin(2 * math.Pi * 1000 * float64(i) / ear.SampleRate))
	}
	return e.Analyze(signal)
}

func TestRoundtrip(t *testing.T) {
	spec := analyzedSine(t)

	var buf bytes.Buffer
	if err := Encode(&buf, spec); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if got.NumSteps() != spec.NumSteps() || got.NumDims() != spec.NumDims() {
		t.Fatalf("got shape %dx%d, wanted %dx%d", got.NumSteps(), got.NumDims(), spec.NumSteps(), spec.NumDims())
	}
	for i, v := range spec.Values() {
		// float16 resolution near 80 dB is ~0.03
		if math.Abs(float64(got.Values()[i]-v)) > 0.1 {
			t.Fatalf("value %d: got %v, wanted %v", i, got.Values()[i], v)
		}
	}

	e := ear.New()
	d, err := e.Distance(spec, got)
	if err != nil {
		t.Fatal(err)
	}
	if d > 0.01 {
		t.Errorf("got distance %v between original and decoded spectrogram, wanted ~0", d)
	}
}

func TestRoundtripEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, ear.NewSpectrogram(0)); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Size() != 0 {
		t.Errorf("got size %d, wanted 0", got.Size())
	}
}

func TestDecodeBadMagic(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("RIFF1234"))); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, wanted ErrBadFormat", err)
	}
}

func TestDecodeLyingHeader(t *testing.T) {
	// header claims 0xFFFFFFFF steps but carries no values at all
	header := append([]byte{'G', 'S', 'P', 'C'},
		0xFF, 0xFF, 0xFF, 0xFF, // steps
		ear.NumChannels, 0, 0, 0) // dims
	if _, err := Decode(bytes.NewReader(header)); err == nil {
		t.Error("decoding a header with a bogus step count succeeded")
	}
}

func TestDecodeTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, analyzedSine(t)); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(bytes.NewReader(buf.Bytes()[:buf.Len()/2])); err == nil {
		t.Error("decoding a truncated file succeeded")
	}
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "specio")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	spec := analyzedSine(t)
	name := filepath.Join(dir, "tone.spec")
	if err := Save(name, spec); err != nil {
		t.Fatal(err)
	}
	got, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if got.NumSteps() != spec.NumSteps() {
		t.Errorf("got %d steps, wanted %d", got.NumSteps(), spec.NumSteps())
	}
}
