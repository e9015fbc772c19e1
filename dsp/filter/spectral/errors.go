package spectral

import "errors"

var (
	// ErrNegativeCutoff is returned when the cutoff half-width is below zero.
	ErrNegativeCutoff = errors.New("spectral: cutoff must be >= 0")
	// ErrInvalidMode is returned for a Mode other than ModeHighPass or ModeLowPass.
	ErrInvalidMode = errors.New("spectral: invalid filter mode")
	// ErrShapeMismatch is returned when a Filter receives a grid of another shape.
	ErrShapeMismatch = errors.New("spectral: grid shape does not match filter")
)
