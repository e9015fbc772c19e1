package grid

import "fmt"

// Grid is a rectangular 2-D array of real-valued samples in row-major order.
type Grid struct {
	rows int
	cols int
	data []float64
}

// New returns a zero-filled rows x cols grid.
func New(rows, cols int) (*Grid, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows copies a [][]float64 into a new grid.
// All rows must have the same, non-zero length.
func FromRows(rows [][]float64) (*Grid, error) {
	cols, err := rectangularWidth(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}

	g := &Grid{rows: len(rows), cols: cols, data: make([]float64, len(rows)*cols)}
	for r, row := range rows {
		copy(g.data[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// FromUint8Rows converts 8-bit rows into a real-valued grid.
func FromUint8Rows(rows [][]uint8) (*Grid, error) {
	cols, err := rectangularWidth(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}

	g := &Grid{rows: len(rows), cols: cols, data: make([]float64, len(rows)*cols)}
	for r, row := range rows {
		for c, v := range row {
			g.data[r*cols+c] = float64(v)
		}
	}
	return g, nil
}

// FromData wraps a row-major slice without copying.
func FromData(rows, cols int, data []float64) (*Grid, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrNotRectangular, len(data), rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Data returns the backing row-major slice.
func (g *Grid) Data() []float64 { return g.data }

// At returns the sample at (r, c).
func (g *Grid) At(r, c int) float64 { return g.data[r*g.cols+c] }

// Set stores v at (r, c).
func (g *Grid) Set(r, c int, v float64) { g.data[r*g.cols+c] = v }

// Row returns row r as a sub-slice of the backing data.
func (g *Grid) Row(r int) []float64 { return g.data[r*g.cols : (r+1)*g.cols] }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)
	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// ToRows copies the grid into a freshly allocated [][]float64.
func (g *Grid) ToRows() [][]float64 {
	out := make([][]float64, g.rows)
	for r := range out {
		out[r] = append([]float64(nil), g.Row(r)...)
	}
	return out
}

// Uint8Grid is a rectangular 2-D array of 8-bit samples in row-major order.
type Uint8Grid struct {
	rows int
	cols int
	data []uint8
}

// NewUint8 returns a zero-filled rows x cols 8-bit grid.
func NewUint8(rows, cols int) (*Uint8Grid, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	return &Uint8Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}, nil
}

// Rows returns the row count.
func (g *Uint8Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Uint8Grid) Cols() int { return g.cols }

// Data returns the backing row-major slice.
func (g *Uint8Grid) Data() []uint8 { return g.data }

// At returns the sample at (r, c).
func (g *Uint8Grid) At(r, c int) uint8 { return g.data[r*g.cols+c] }

// Set stores v at (r, c).
func (g *Uint8Grid) Set(r, c int, v uint8) { g.data[r*g.cols+c] = v }

// Row returns row r as a sub-slice of the backing data.
func (g *Uint8Grid) Row(r int) []uint8 { return g.data[r*g.cols : (r+1)*g.cols] }

// ToRows copies the grid into a freshly allocated [][]uint8.
func (g *Uint8Grid) ToRows() [][]uint8 {
	out := make([][]uint8, g.rows)
	for r := range out {
		out[r] = append([]uint8(nil), g.Row(r)...)
	}
	return out
}

// Float returns the grid converted to real-valued samples.
func (g *Uint8Grid) Float() *Grid {
	data := make([]float64, len(g.data))
	for i, v := range g.data {
		data[i] = float64(v)
	}
	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrEmpty, rows, cols)
	}
	return nil
}

func rectangularWidth(n int, width func(int) int) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: no rows", ErrEmpty)
	}
	cols := width(0)
	if cols == 0 {
		return 0, fmt.Errorf("%w: row 0 is empty", ErrEmpty)
	}
	for i := 1; i < n; i++ {
		if w := width(i); w != cols {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotRectangular, i, w, cols)
		}
	}
	return cols, nil
}
