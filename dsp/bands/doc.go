// Package bands finds and cleans contiguous runs in boolean sequences.
//
// A typical pipeline thresholds a 1-D signal (for example a row intensity
// profile of an image) with [Threshold], closes short gaps with [Denoise],
// and reports each remaining run of true values with [Extract].
package bands
