package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bands/dsp/fft2d"
	"github.com/cwbudde/algo-bands/dsp/grid"
)

// Filter is a reusable frequency-domain filter for grids of one shape.
//
// Filter keeps scratch buffers and is not safe for concurrent use. Use one
// Filter per goroutine, or the one-shot [Apply] helpers.
type Filter struct {
	rows   int
	cols   int
	cutoff int
	mode   Mode

	plan *fft2d.Plan
	mask []float64

	// Scratch buffers
	spec    []complex128
	shifted []complex128
	re      []float64
	im      []float64
}

// NewFilter creates a filter for rows x cols grids.
func NewFilter(rows, cols, cutoff int, mode Mode, opts ...Option) (*Filter, error) {
	cfg := ApplyOptions(opts...)

	mask, err := NewMask(rows, cols, cutoff, mode)
	if err != nil {
		return nil, err
	}

	plan, err := fft2d.NewPlan(rows, cols, fft2d.WithBackend(cfg.Backend))
	if err != nil {
		return nil, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}

	n := rows * cols
	return &Filter{
		rows:    rows,
		cols:    cols,
		cutoff:  cutoff,
		mode:    mode,
		plan:    plan,
		mask:    mask,
		spec:    make([]complex128, n),
		shifted: make([]complex128, n),
		re:      make([]float64, n),
		im:      make([]float64, n),
	}, nil
}

// Rows returns the row count the filter was built for.
func (f *Filter) Rows() int { return f.rows }

// Cols returns the column count the filter was built for.
func (f *Filter) Cols() int { return f.cols }

// Cutoff returns the mask half-width.
func (f *Filter) Cutoff() int { return f.cutoff }

// Mode returns the mask polarity.
func (f *Filter) Mode() Mode { return f.mode }

// Mask returns a copy of the centred mask.
func (f *Filter) Mask() []float64 {
	return append([]float64(nil), f.mask...)
}

// Apply filters g and narrows the result to 8 bits. g is not modified.
func (f *Filter) Apply(g *grid.Grid) (*grid.Uint8Grid, error) {
	mag, err := f.Magnitude(g)
	if err != nil {
		return nil, err
	}
	return grid.Narrow(mag), nil
}

// Magnitude filters g and returns |ifft2(mask * fft2(g))| before narrowing.
// g is not modified.
func (f *Filter) Magnitude(g *grid.Grid) (*grid.Grid, error) {
	if g == nil {
		return nil, fmt.Errorf("spectral: nil grid: %w", grid.ErrEmpty)
	}
	if g.Rows() != f.rows || g.Cols() != f.cols {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShapeMismatch, g.Rows(), g.Cols(), f.rows, f.cols)
	}

	for i, v := range g.Data() {
		f.spec[i] = complex(v, 0)
	}
	if err := f.plan.Forward(f.spec, f.spec); err != nil {
		return nil, fmt.Errorf("spectral: forward FFT failed: %w", err)
	}

	if err := fft2d.Shift(f.shifted, f.spec, f.rows, f.cols); err != nil {
		return nil, err
	}

	f.split(f.shifted)
	vecmath.MulBlockInPlace(f.re, f.mask)
	vecmath.MulBlockInPlace(f.im, f.mask)
	f.join(f.shifted)

	if err := fft2d.Unshift(f.spec, f.shifted, f.rows, f.cols); err != nil {
		return nil, err
	}
	if err := f.plan.Inverse(f.spec, f.spec); err != nil {
		return nil, fmt.Errorf("spectral: inverse FFT failed: %w", err)
	}

	f.split(f.spec)
	out := make([]float64, len(f.spec))
	vecmath.Magnitude(out, f.re, f.im)

	return grid.FromData(f.rows, f.cols, out)
}

func (f *Filter) split(src []complex128) {
	for i, c := range src {
		f.re[i] = real(c)
		f.im[i] = imag(c)
	}
}

func (f *Filter) join(dst []complex128) {
	for i := range dst {
		dst[i] = complex(f.re[i], f.im[i])
	}
}

// Apply filters g with a one-shot Filter of matching shape.
func Apply(g *grid.Grid, cutoff int, mode Mode, opts ...Option) (*grid.Uint8Grid, error) {
	if g == nil {
		return nil, fmt.Errorf("spectral: nil grid: %w", grid.ErrEmpty)
	}
	f, err := NewFilter(g.Rows(), g.Cols(), cutoff, mode, opts...)
	if err != nil {
		return nil, err
	}
	return f.Apply(g)
}

// HighPass suppresses the centred low-frequency region of g.
func HighPass(g *grid.Grid, cutoff int, opts ...Option) (*grid.Uint8Grid, error) {
	return Apply(g, cutoff, ModeHighPass, opts...)
}

// LowPass keeps only the centred low-frequency region of g.
func LowPass(g *grid.Grid, cutoff int, opts ...Option) (*grid.Uint8Grid, error) {
	return Apply(g, cutoff, ModeLowPass, opts...)
}
