package grid

import "github.com/cwbudde/algo-vecmath"

// RowProfile returns the mean intensity of each row.
func RowProfile(g *Grid) []float64 {
	out := make([]float64, g.rows)
	scale := 1 / float64(g.cols)
	for r := range out {
		out[r] = vecmath.Sum(g.Row(r)) * scale
	}
	return out
}

// ColProfile returns the mean intensity of each column.
func ColProfile(g *Grid) []float64 {
	out := make([]float64, g.cols)
	for r := 0; r < g.rows; r++ {
		vecmath.AddBlockInPlace(out, g.Row(r))
	}
	vecmath.ScaleBlockInPlace(out, 1/float64(g.rows))
	return out
}
