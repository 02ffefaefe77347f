// Package wave loads and saves audio for the analysis engine.
//
// It decodes WAV and FLAC files to mono float32 sample vectors at the
// 48 kHz rate the engine requires, resampling on the fly when the file
// uses another rate, and writes mono sample vectors back to 16-bit WAV.
package wave
