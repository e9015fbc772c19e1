package spectral

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-bands/dsp/fft2d"
	"github.com/cwbudde/algo-bands/dsp/grid"
	"github.com/cwbudde/algo-bands/internal/testutil"
)

func noise(t *testing.T, seed int64, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.FromData(rows, cols, testutil.NoiseGrid(seed, rows, cols, 255))
	if err != nil {
		t.Fatalf("FromData() error = %v", err)
	}
	return g
}

func mustRows(t *testing.T, rows [][]float64) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	return g
}

func TestApplyPreservesShape(t *testing.T) {
	shapes := []struct{ rows, cols int }{{1, 1}, {1, 5}, {4, 4}, {5, 7}, {16, 9}}
	for _, s := range shapes {
		for _, mode := range []Mode{ModeHighPass, ModeLowPass} {
			for _, cutoff := range []int{0, 1, 3, 50} {
				name := fmt.Sprintf("%dx%d/%s/%d", s.rows, s.cols, mode, cutoff)
				t.Run(name, func(t *testing.T) {
					out, err := Apply(noise(t, 1, s.rows, s.cols), cutoff, mode)
					if err != nil {
						t.Fatalf("Apply() error = %v", err)
					}
					if out.Rows() != s.rows || out.Cols() != s.cols {
						t.Fatalf("shape = %dx%d, want %dx%d", out.Rows(), out.Cols(), s.rows, s.cols)
					}
				})
			}
		}
	}
}

func TestLowPassZeroCutoffIsConstant(t *testing.T) {
	out, err := LowPass(noise(t, 2, 6, 8), 0)
	if err != nil {
		t.Fatalf("LowPass() error = %v", err)
	}
	for i, v := range out.Data() {
		if v != out.Data()[0] {
			t.Fatalf("out[%d] = %d, want constant %d", i, v, out.Data()[0])
		}
	}
}

func TestHighPassLargeCutoffIsZero(t *testing.T) {
	shapes := []struct{ rows, cols int }{{8, 8}, {7, 9}, {5, 5}}
	for _, s := range shapes {
		cutoff := min(s.rows, s.cols)
		out, err := HighPass(noise(t, 3, s.rows, s.cols), cutoff)
		if err != nil {
			t.Fatalf("HighPass() error = %v", err)
		}
		for i, v := range out.Data() {
			if v != 0 {
				t.Fatalf("%dx%d: out[%d] = %d, want 0", s.rows, s.cols, i, v)
			}
		}
	}
}

func TestAllPassReproducesInput(t *testing.T) {
	in := noise(t, 4, 5, 7)
	tests := []struct {
		name   string
		mode   Mode
		cutoff int
	}{
		{name: "high-pass cutoff 0", mode: ModeHighPass, cutoff: 0},
		{name: "low-pass wide cutoff", mode: ModeLowPass, cutoff: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(5, 7, tt.cutoff, tt.mode)
			if err != nil {
				t.Fatalf("NewFilter() error = %v", err)
			}
			mag, err := f.Magnitude(in)
			if err != nil {
				t.Fatalf("Magnitude() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, mag.Data(), in.Data(), 1e-9)

			out, err := f.Apply(in)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			testutil.RequireUint8Within(t, out.Data(), grid.Narrow(in).Data(), 1)
		})
	}
}

func TestConstantGrid(t *testing.T) {
	in := mustRows(t, testutil.ConstantRows(6, 6, 80))

	lp, err := NewFilter(6, 6, 1, ModeLowPass)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	mag, err := lp.Magnitude(in)
	if err != nil {
		t.Fatalf("Magnitude() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, mag.Data(), in.Data(), 1e-9)

	hp, err := HighPass(in, 1)
	if err != nil {
		t.Fatalf("HighPass() error = %v", err)
	}
	for i, v := range hp.Data() {
		if v != 0 {
			t.Fatalf("high-pass of constant: out[%d] = %d, want 0", i, v)
		}
	}
}

func TestCheckerboardSeparatesDCAndNyquist(t *testing.T) {
	in := mustRows(t, testutil.Checkerboard(8, 8, 0, 100))

	hp, _ := NewFilter(8, 8, 1, ModeHighPass)
	mag, err := hp.Magnitude(in)
	if err != nil {
		t.Fatalf("Magnitude() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, mag.Data(), testutil.Flatten(testutil.ConstantRows(8, 8, 50)), 1e-9)

	lp, _ := NewFilter(8, 8, 1, ModeLowPass)
	mag, err = lp.Magnitude(in)
	if err != nil {
		t.Fatalf("Magnitude() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, mag.Data(), testutil.Flatten(testutil.ConstantRows(8, 8, 50)), 1e-9)
}

func TestApplyWrapsInsteadOfClamping(t *testing.T) {
	in := mustRows(t, testutil.ConstantRows(4, 4, 300.5))
	out, err := HighPass(in, 0)
	if err != nil {
		t.Fatalf("HighPass() error = %v", err)
	}
	for i, v := range out.Data() {
		if v != 44 {
			t.Fatalf("out[%d] = %d, want 44 (300 mod 256)", i, v)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := noise(t, 5, 4, 6)
	orig := in.Clone()
	if _, err := LowPass(in, 1); err != nil {
		t.Fatalf("LowPass() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, in.Data(), orig.Data(), 0)
}

func TestBackendsAgree(t *testing.T) {
	in := noise(t, 6, 6, 10)
	auto, err := NewFilter(6, 10, 2, ModeHighPass)
	if err != nil {
		t.Fatalf("NewFilter(auto) error = %v", err)
	}
	gonum, err := NewFilter(6, 10, 2, ModeHighPass, WithBackend(fft2d.BackendGonum))
	if err != nil {
		t.Fatalf("NewFilter(gonum) error = %v", err)
	}

	a, err := auto.Magnitude(in)
	if err != nil {
		t.Fatalf("Magnitude(auto) error = %v", err)
	}
	b, err := gonum.Magnitude(in)
	if err != nil {
		t.Fatalf("Magnitude(gonum) error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, a.Data(), b.Data(), 1e-8)
}

func TestFilterReuse(t *testing.T) {
	f, err := NewFilter(4, 4, 1, ModeLowPass)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	a, _ := f.Magnitude(noise(t, 7, 4, 4))
	b, _ := f.Magnitude(noise(t, 7, 4, 4))
	testutil.RequireSliceNearlyEqual(t, a.Data(), b.Data(), 0)

	if f.Rows() != 4 || f.Cols() != 4 || f.Cutoff() != 1 || f.Mode() != ModeLowPass {
		t.Fatalf("unexpected accessors: %dx%d cutoff=%d mode=%v", f.Rows(), f.Cols(), f.Cutoff(), f.Mode())
	}
	mask := f.Mask()
	mask[0] = 42
	if f.Mask()[0] == 42 {
		t.Fatal("Mask() exposes internal storage")
	}
}

func TestFilterErrors(t *testing.T) {
	if _, err := Apply(nil, 1, ModeLowPass); !errors.Is(err, grid.ErrEmpty) {
		t.Fatalf("Apply(nil) error = %v, want grid.ErrEmpty", err)
	}
	if _, err := LowPass(noise(t, 1, 2, 2), -3); !errors.Is(err, ErrNegativeCutoff) {
		t.Fatalf("negative cutoff error = %v, want ErrNegativeCutoff", err)
	}
	if _, err := Apply(noise(t, 1, 2, 2), 1, Mode(-1)); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("invalid mode error = %v, want ErrInvalidMode", err)
	}

	f, _ := NewFilter(3, 3, 1, ModeHighPass)
	if _, err := f.Apply(noise(t, 1, 3, 4)); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("shape error = %v, want ErrShapeMismatch", err)
	}
	if _, err := f.Magnitude(nil); !errors.Is(err, grid.ErrEmpty) {
		t.Fatalf("Magnitude(nil) error = %v, want grid.ErrEmpty", err)
	}
}

func TestLowPassSmoothsNoise(t *testing.T) {
	in := noise(t, 8, 32, 32)
	f, _ := NewFilter(32, 32, 4, ModeLowPass)
	mag, err := f.Magnitude(in)
	if err != nil {
		t.Fatalf("Magnitude() error = %v", err)
	}
	if variance(mag.Data()) >= variance(in.Data()) {
		t.Fatalf("low-pass variance %v not below input variance %v", variance(mag.Data()), variance(in.Data()))
	}
}

func variance(x []float64) float64 {
	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	var acc float64
	for _, v := range x {
		acc += (v - mean) * (v - mean)
	}
	return acc / float64(len(x))
}

func TestMagnitudeFinite(t *testing.T) {
	f, _ := NewFilter(9, 5, 2, ModeHighPass)
	mag, err := f.Magnitude(noise(t, 9, 9, 5))
	if err != nil {
		t.Fatalf("Magnitude() error = %v", err)
	}
	for i, v := range mag.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			t.Fatalf("mag[%d] = %v, want finite non-negative", i, v)
		}
	}
}
