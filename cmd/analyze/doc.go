// Command analyze converts audio files (WAV/FLAC) to spectrogram files.
//
// The audio is mixed to mono, resampled to 48 kHz, analyzed into a
// perceptual spectrogram and written next to the input as <file>.spec.
// Spectrogram files can be fed to the compare tool, skipping repeated
// analysis of reference material.
//
// Usage:
//
//	analyze <audio_file>
//
// Supported input formats: .wav, .flac
package main
