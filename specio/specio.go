package specio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/x448/float16"

	"github.com/neurlang/gonsim/ear"
)

var magic = [4]byte{'G', 'S', 'P', 'C'}

var ErrBadFormat = errors.New("notASpectrogramFile")

// Encode writes spec to w.
func Encode(w io.Writer, spec *ear.Spectrogram) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(spec.NumSteps())); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(spec.NumDims())); err != nil {
		return err
	}
	for _, v := range spec.Values() {
		if err := binary.Write(bw, binary.LittleEndian, float16.Fromfloat32(v).Bits()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads a spectrogram written by Encode. Files whose channel count
// does not match ear.NumChannels are rejected. Values are read row by
// row and the header step count is only trusted once that many rows have
// actually arrived, so a corrupt header cannot force a huge allocation
// up front.
func Decode(r io.Reader) (*ear.Spectrogram, error) {
	br := bufio.NewReader(r)
	var m [4]byte
	if _, err := io.ReadFull(br, m[:]); err != nil {
		return nil, err
	}
	if m != magic {
		return nil, ErrBadFormat
	}
	var steps, dims uint32
	if err := binary.Read(br, binary.LittleEndian, &steps); err != nil {
		return nil, err
	}
	if err := binary.Read(br, binary.LittleEndian, &dims); err != nil {
		return nil, err
	}
	if dims != ear.NumChannels {
		return nil, ErrBadFormat
	}
	row := make([]byte, 2*ear.NumChannels)
	var values []float32
	for i := uint32(0); i < steps; i++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, err
		}
		for k := 0; k < ear.NumChannels; k++ {
			bits := binary.LittleEndian.Uint16(row[2*k:])
			values = append(values, float16.Frombits(bits).Float32())
		}
	}
	spec := ear.NewSpectrogram(int(steps))
	copy(spec.Values(), values)
	return spec, nil
}

// Save writes spec to the named file.
func Save(name string, spec *ear.Spectrogram) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Encode(f, spec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a spectrogram from the named file.
func Load(name string) (*ear.Spectrogram, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
