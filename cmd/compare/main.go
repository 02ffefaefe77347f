package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/neurlang/gonsim/ear"
	"github.com/neurlang/gonsim/specio"
	"github.com/neurlang/gonsim/wave"
)

func loadSpectrogram(e *ear.Engine, name string) (*ear.Spectrogram, error) {
	if strings.HasSuffix(name, ".spec") {
		return specio.Load(name)
	}
	var buf []float32
	var err error
	if strings.HasSuffix(name, ".flac") {
		buf, err = wave.LoadFlac(name)
	} else {
		buf, err = wave.LoadWav(name)
	}
	if err != nil {
		return nil, err
	}
	return e.Analyze(buf), nil
}

func main() {
	pathA := flag.String("path_a", "", "Path to signal A (wav, flac or spec).")
	pathB := flag.String("path_b", "", "Path to signal B (wav, flac or spec).")
	align := flag.Bool("align", false, "Time-align the spectrograms before comparing.")
	stepWindow := flag.Int("step_window", 8, "Similarity window size in time steps.")
	channelWindow := flag.Int("channel_window", 5, "Similarity window size in channels.")
	flag.Parse()

	if *pathA == "" || *pathB == "" {
		flag.Usage()
		os.Exit(1)
	}

	e := ear.New()
	e.NSIMStepWindow = *stepWindow
	e.NSIMChannelWindow = *channelWindow

	specA, err := loadSpectrogram(e, *pathA)
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", *pathA, err)
		os.Exit(1)
	}
	specB, err := loadSpectrogram(e, *pathB)
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", *pathB, err)
		os.Exit(1)
	}

	var dist float32
	if *align {
		dist, err = e.AlignedDistance(specA, specB)
	} else {
		dist, err = e.Distance(specA, specB)
	}
	if err != nil {
		fmt.Printf("Error comparing spectrograms: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(dist)
}
