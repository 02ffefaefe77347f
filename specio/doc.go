// Package specio stores spectrograms in a compact binary form.
//
// The format is a 4-byte magic, the step and channel counts as 32-bit
// little-endian integers, and one little-endian float16 per value in
// row-major order. Half precision is lossy but ample for dB-scale
// loudness values, and halves the size of cached analysis results.
package specio
