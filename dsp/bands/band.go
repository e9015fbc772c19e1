package bands

import "fmt"

// Band is one maximal run of true values, with inclusive Start and End
// indices into the scanned sequence.
type Band struct {
	Start int
	End   int
}

// Len returns the number of indices covered by b.
func (b Band) Len() int { return b.End - b.Start + 1 }

// Contains reports whether index i lies inside b.
func (b Band) Contains(i int) bool { return i >= b.Start && i <= b.End }

// String formats b as "[start, end]".
func (b Band) String() string { return fmt.Sprintf("[%d, %d]", b.Start, b.End) }

// Extract returns one Band per maximal run of true in seq, in left-to-right
// order. Empty and all-false input yield an empty, non-nil slice.
func Extract(seq []bool) []Band {
	var starts, ends []int
	last := len(seq) - 1

	for i, v := range seq {
		if !v {
			continue
		}
		if i == 0 || !seq[i-1] {
			starts = append(starts, i)
		}
		if i == last || !seq[i+1] {
			ends = append(ends, i)
		}
	}

	// Every run opens and closes exactly once, so the lists pair by position.
	out := make([]Band, len(starts))
	for k := range starts {
		out[k] = Band{Start: starts[k], End: ends[k]}
	}
	return out
}

// Mask renders bands back into a boolean sequence of length n. Indices
// outside [0, n) are ignored.
func Mask(bands []Band, n int) []bool {
	out := make([]bool, max(n, 0))
	for _, b := range bands {
		for i := max(b.Start, 0); i <= b.End && i < n; i++ {
			out[i] = true
		}
	}
	return out
}
