package wave

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/faiface/beep"
	beepwav "github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"

	"github.com/neurlang/gonsim/ear"
)

var ErrFileNotLoaded = errors.New("audioNotLoaded")

// LoadWav loads a WAV file as mono samples at ear.SampleRate. Multiple
// channels are averaged into one; other sample rates are resampled.
func LoadWav(name string) ([]float32, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stream, format, err := beepwav.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != beep.SampleRate(ear.SampleRate) {
		src = beep.Resample(4, format.SampleRate, beep.SampleRate(ear.SampleRate), stream)
	}
	out := drainMono(src, decodeGain(format.Precision))
	if out == nil {
		return nil, ErrFileNotLoaded
	}
	return out, nil
}

// decodeGain compensates beep's wav decoder scale: it divides integer
// samples by 1<<(8*precision) - 1 although full scale for signed audio is
// 1<<(8*precision-1) - 1, so decoded samples arrive at half amplitude.
func decodeGain(precision int) float64 {
	return float64(int64(1)<<(8*uint(precision))-1) / float64(int64(1)<<(8*uint(precision)-1)-1)
}

// LoadFlac loads a FLAC file as mono samples at ear.SampleRate. Multiple
// channels are averaged into one; other sample rates are resampled.
func LoadFlac(name string) ([]float32, error) {
	stream, err := flac.ParseFile(name)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	defer stream.Close()

	info := stream.Info
	nch := int(info.NChannels)
	div := float64(int64(1) << (info.BitsPerSample - 1))

	var mono []float64
	for {
		f, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		for i := range f.Subframes[0].Samples {
			var sum float64
			for ch := 0; ch < nch; ch++ {
				sum += float64(f.Subframes[ch].Samples[i])
			}
			mono = append(mono, sum/float64(nch)/div)
		}
	}
	if mono == nil {
		return nil, ErrFileNotLoaded
	}
	return Resample(mono, int(info.SampleRate)), nil
}

// SaveWav writes mono samples to a 16-bit WAV file.
func SaveWav(name string, buf []float32, sampleRate int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	mono := make([]float64, len(buf))
	for i, v := range buf {
		mono[i] = float64(v)
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}
	if err := beepwav.Encode(f, &monoStreamer{buf: mono}, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
