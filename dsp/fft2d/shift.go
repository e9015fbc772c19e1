package fft2d

import "fmt"

// Shift moves the zero-frequency bin of a rows x cols spectrum from (0, 0)
// to (rows/2, cols/2). dst and src must not overlap.
func Shift(dst, src []complex128, rows, cols int) error {
	if err := checkShift(dst, src, rows, cols); err != nil {
		return err
	}

	hr, hc := rows/2, cols/2
	for r := 0; r < rows; r++ {
		dr := (r + hr) % rows
		for c := 0; c < cols; c++ {
			dst[dr*cols+(c+hc)%cols] = src[r*cols+c]
		}
	}
	return nil
}

// Unshift is the exact inverse of [Shift], including for odd sizes.
// dst and src must not overlap.
func Unshift(dst, src []complex128, rows, cols int) error {
	if err := checkShift(dst, src, rows, cols); err != nil {
		return err
	}

	hr, hc := rows/2, cols/2
	for r := 0; r < rows; r++ {
		sr := (r + hr) % rows
		for c := 0; c < cols; c++ {
			dst[r*cols+c] = src[sr*cols+(c+hc)%cols]
		}
	}
	return nil
}

func checkShift(dst, src []complex128, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rows, cols)
	}
	n := rows * cols
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst=%d src=%d, want %d", ErrLengthMismatch, len(dst), len(src), n)
	}
	return nil
}
