package spectral

import "fmt"

// NewMask returns a row-major rows x cols mask of 0/1 weights for a centred
// spectrum. The region spans rows [rows/2-cutoff, rows/2+cutoff) and columns
// [cols/2-cutoff, cols/2+cutoff), clipped to the grid. ModeHighPass sets the
// region to 0 and everything else to 1; ModeLowPass is the exact complement.
func NewMask(rows, cols, cutoff int, mode Mode) ([]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("spectral: mask size must be > 0: %dx%d", rows, cols)
	}
	if cutoff < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCutoff, cutoff)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}

	outside, inside := 1.0, 0.0
	if mode == ModeLowPass {
		outside, inside = 0, 1
	}

	mask := make([]float64, rows*cols)
	for i := range mask {
		mask[i] = outside
	}

	r0, r1 := region(rows, cutoff)
	c0, c1 := region(cols, cutoff)
	for r := r0; r < r1; r++ {
		row := mask[r*cols : (r+1)*cols]
		for c := c0; c < c1; c++ {
			row[c] = inside
		}
	}
	return mask, nil
}

// region returns the clipped half-open interval [n/2-cutoff, n/2+cutoff).
func region(n, cutoff int) (lo, hi int) {
	center := n / 2
	return max(center-cutoff, 0), min(center+cutoff, n)
}
