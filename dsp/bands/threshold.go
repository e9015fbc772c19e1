package bands

// Threshold returns a boolean sequence that is true where values[i] > level.
// NaN samples are false.
func Threshold(values []float64, level float64) []bool {
	out := make([]bool, len(values))
	for i, v := range values {
		out[i] = v > level
	}
	return out
}
