package testutil

import "math/rand"

// NoiseGrid returns a rows*cols row-major grid of uniform values in
// [0, amplitude) generated from a fixed seed.
func NoiseGrid(seed int64, rows, cols int, amplitude float64) []float64 {
	out := make([]float64, rows*cols)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() * amplitude
	}
	return out
}

// Uint8NoiseRows returns rows of 8-bit noise, the usual shape of decoded
// grayscale images.
func Uint8NoiseRows(seed int64, rows, cols int) [][]uint8 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]uint8, rows)
	for r := range out {
		out[r] = make([]uint8, cols)
		for c := range out[r] {
			out[r][c] = uint8(rng.Intn(256))
		}
	}
	return out
}

// Checkerboard returns a rows x cols grid alternating between lo and hi.
func Checkerboard(rows, cols int, lo, hi float64) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			if (r+c)%2 == 0 {
				out[r][c] = hi
			} else {
				out[r][c] = lo
			}
		}
	}
	return out
}

// ConstantRows returns a rows x cols grid filled with value.
func ConstantRows(rows, cols int, value float64) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = value
		}
	}
	return out
}

// RandomBools returns n booleans, each true with probability pTrue.
func RandomBools(seed int64, n int, pTrue float64) []bool {
	rng := rand.New(rand.NewSource(seed))
	out := make([]bool, n)
	for i := range out {
		out[i] = rng.Float64() < pTrue
	}
	return out
}

// ParseBools converts a pattern such as "FTTF" or "0110" into booleans.
// Any byte other than 'T', 't' or '1' is false.
func ParseBools(pattern string) []bool {
	out := make([]bool, len(pattern))
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case 'T', 't', '1':
			out[i] = true
		}
	}
	return out
}
