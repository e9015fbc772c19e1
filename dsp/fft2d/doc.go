// Package fft2d computes two-dimensional discrete Fourier transforms over
// row-major complex grids.
//
// The transform is separable: a 1-D FFT runs over every row, then over every
// column. 1-D plans come from algo-fft. With BackendAuto, a length for which
// algo-fft returns a planning error is handled by gonum's mixed-radix FFT
// instead; BackendGonum uses gonum for every length. The inverse
// is normalized, so Forward followed by Inverse reproduces the input.
//
// [Shift] and [Unshift] move the zero-frequency bin to and from the grid
// centre at (rows/2, cols/2) for both odd and even sizes.
package fft2d
