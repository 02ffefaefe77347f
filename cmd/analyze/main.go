package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/neurlang/gonsim/ear"
	"github.com/neurlang/gonsim/specio"
	"github.com/neurlang/gonsim/wave"
)

func main() {
	// Check if the filename argument is provided
	if len(os.Args) < 2 {
		fmt.Println("Usage: analyze <audio_file>")
		os.Exit(1)
	}

	// Get the filename from the command-line arguments
	var filename = os.Args[1]

	var e = ear.New()

	var buf []float32
	var err error
	if strings.HasSuffix(filename, ".flac") {
		buf, err = wave.LoadFlac(filename)
	} else {
		buf, err = wave.LoadWav(filename)
	}
	if err != nil {
		fmt.Printf("Error loading audio: %v\n", err)
		os.Exit(1)
	}

	spec := e.Analyze(buf)

	outputFile := filename + ".spec"
	if err := specio.Save(outputFile, spec); err != nil {
		fmt.Printf("Error saving spectrogram: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d steps x %d channels\n", outputFile, spec.NumSteps(), spec.NumDims())
}
