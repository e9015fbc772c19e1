package fft2d

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// axis is a 1-D complex transform of a fixed length. inverse is normalized.
type axis interface {
	forward(dst, src []complex128) error
	inverse(dst, src []complex128) error
	backend() Backend
}

func newAxis(n int, b Backend) (axis, error) {
	if n == 1 {
		return identityAxis{b: b}, nil
	}

	if b == BackendGonum {
		return newGonumAxis(n), nil
	}

	plan, err := newAlgoFFTPlan(n)
	if err == nil {
		return algofftAxis{plan: plan}, nil
	}
	if b == BackendAuto {
		return newGonumAxis(n), nil
	}
	return nil, fmt.Errorf("fft2d: failed to create FFT plan for length %d: %w", n, err)
}

// newAlgoFFTPlan is replaced in tests to simulate lengths algo-fft rejects.
var newAlgoFFTPlan = algofft.NewPlan64

type algofftAxis struct {
	plan *algofft.Plan[complex128]
}

func (a algofftAxis) forward(dst, src []complex128) error { return a.plan.Forward(dst, src) }
func (a algofftAxis) inverse(dst, src []complex128) error { return a.plan.Inverse(dst, src) }
func (a algofftAxis) backend() Backend                    { return BackendAlgoFFT }

// gonumAxis wraps fourier.CmplxFFT, whose inverse is unnormalized.
type gonumAxis struct {
	fft   *fourier.CmplxFFT
	scale complex128
}

func newGonumAxis(n int) gonumAxis {
	return gonumAxis{fft: fourier.NewCmplxFFT(n), scale: complex(1/float64(n), 0)}
}

func (a gonumAxis) forward(dst, src []complex128) error {
	a.fft.Coefficients(dst, src)
	return nil
}

func (a gonumAxis) inverse(dst, src []complex128) error {
	a.fft.Sequence(dst, src)
	for i := range dst {
		dst[i] *= a.scale
	}
	return nil
}

func (a gonumAxis) backend() Backend { return BackendGonum }

// identityAxis handles length-1 axes, where the DFT is the identity.
type identityAxis struct {
	b Backend
}

func (a identityAxis) forward(dst, src []complex128) error {
	copy(dst, src)
	return nil
}

func (a identityAxis) inverse(dst, src []complex128) error {
	copy(dst, src)
	return nil
}

func (a identityAxis) backend() Backend { return a.b }
