// Package ear computes perceptual distances between audio signals.
//
// Engine.Analyze converts a 48 kHz mono signal into a Spectrogram of
// perceptual loudness values across 128 auditory channels, modeling the
// cochlea's frequency decomposition and the ear's nonlinear loudness
// response. Engine.Distance compares two spectrograms with a windowed
// structural similarity statistic, returning 0 for perceptually identical
// signals and values approaching 1 for increasingly different ones. It
// supports:
//   - Auditory-filterbank spectrograms on the Cam (ERB-rate) frequency scale
//   - Windowed NSIM comparison with configurable window sizes
//   - Optional dynamic-time-warping alignment before comparison
//   - Peak rescaling of spectrograms to a common reference level
package ear
