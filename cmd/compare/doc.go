// Command compare prints the perceptual distance between two audio signals.
//
// Each input may be a WAV file, a FLAC file, or a spectrogram file
// produced by the analyze tool. Audio inputs are mixed to mono, resampled
// to 48 kHz and analyzed first. The printed distance is 0 for perceptually
// identical signals and grows towards 1 with increasing difference.
//
// Usage:
//
//	compare -path_a <file> -path_b <file> [-align] [-step_window N] [-channel_window N]
package main
