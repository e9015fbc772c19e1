// Package spectral implements frequency-domain high-pass and low-pass
// filters for 2-D sample grids.
//
// A filter transforms the grid with a 2-D DFT, centres the spectrum, and
// multiplies it by a rectangular mask of half-width cutoff around
// (rows/2, cols/2). HighPass blocks that region and passes the rest; LowPass
// passes only that region. The masked spectrum is shifted back, inverted,
// and the magnitude of every sample is narrowed to 8 bits with wrap-around
// (see [grid.WrapUint8]).
//
// A cutoff of 0 yields an all-pass high-pass and an all-block low-pass; a
// cutoff of at least half the larger dimension yields the reverse. Neither
// is an error.
//
// Use [HighPass], [LowPass] or [Apply] for one-shot filtering, or
// [NewFilter] to reuse the FFT plan and mask across grids of equal shape.
package spectral
