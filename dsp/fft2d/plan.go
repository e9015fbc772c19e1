package fft2d

import "fmt"

// Plan is a reusable 2-D FFT for a fixed rows x cols shape.
//
// A Plan keeps a column scratch buffer and is not safe for concurrent use.
type Plan struct {
	rows int
	cols int

	rowAxis axis
	colAxis axis

	column []complex128
}

// NewPlan creates a 2-D FFT plan for grids with the given shape.
func NewPlan(rows, cols int, opts ...Option) (*Plan, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rows, cols)
	}

	cfg := ApplyOptions(opts...)

	rowAxis, err := newAxis(cols, cfg.Backend)
	if err != nil {
		return nil, err
	}

	colAxis := rowAxis
	if rows != cols {
		colAxis, err = newAxis(rows, cfg.Backend)
		if err != nil {
			return nil, err
		}
	}

	return &Plan{
		rows:    rows,
		cols:    cols,
		rowAxis: rowAxis,
		colAxis: colAxis,
		column:  make([]complex128, rows),
	}, nil
}

// Rows returns the planned row count.
func (p *Plan) Rows() int { return p.rows }

// Cols returns the planned column count.
func (p *Plan) Cols() int { return p.cols }

// Len returns rows*cols.
func (p *Plan) Len() int { return p.rows * p.cols }

// Backends reports the 1-D backend chosen for the row and column passes.
func (p *Plan) Backends() (row, col Backend) {
	return p.rowAxis.backend(), p.colAxis.backend()
}

// Forward computes the 2-D DFT of src into dst. dst and src may alias.
func (p *Plan) Forward(dst, src []complex128) error {
	return p.transform(dst, src, false)
}

// Inverse computes the normalized inverse 2-D DFT of src into dst.
// dst and src may alias.
func (p *Plan) Inverse(dst, src []complex128) error {
	return p.transform(dst, src, true)
}

func (p *Plan) transform(dst, src []complex128, inverse bool) error {
	n := p.Len()
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst=%d src=%d, want %d", ErrLengthMismatch, len(dst), len(src), n)
	}

	copy(dst, src)

	rowFn, colFn := p.rowAxis.forward, p.colAxis.forward
	if inverse {
		rowFn, colFn = p.rowAxis.inverse, p.colAxis.inverse
	}

	for r := 0; r < p.rows; r++ {
		row := dst[r*p.cols : (r+1)*p.cols]
		if err := rowFn(row, row); err != nil {
			return fmt.Errorf("fft2d: row %d transform failed: %w", r, err)
		}
	}

	for c := 0; c < p.cols; c++ {
		for r := 0; r < p.rows; r++ {
			p.column[r] = dst[r*p.cols+c]
		}
		if err := colFn(p.column, p.column); err != nil {
			return fmt.Errorf("fft2d: column %d transform failed: %w", c, err)
		}
		for r := 0; r < p.rows; r++ {
			dst[r*p.cols+c] = p.column[r]
		}
	}

	return nil
}

// ForwardReal transforms a real-valued row-major grid into a newly
// allocated spectrum.
func (p *Plan) ForwardReal(src []float64) ([]complex128, error) {
	if len(src) != p.Len() {
		return nil, fmt.Errorf("%w: src=%d, want %d", ErrLengthMismatch, len(src), p.Len())
	}

	out := make([]complex128, len(src))
	for i, v := range src {
		out[i] = complex(v, 0)
	}
	if err := p.Forward(out, out); err != nil {
		return nil, err
	}
	return out, nil
}
