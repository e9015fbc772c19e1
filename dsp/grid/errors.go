package grid

import "errors"

var (
	// ErrEmpty is returned when a grid would have zero rows or zero columns.
	ErrEmpty = errors.New("grid: must have at least one row and one column")
	// ErrNotRectangular is returned when input rows differ in length.
	ErrNotRectangular = errors.New("grid: rows must all have the same length")
)
