package fft2d

import "errors"

var (
	// ErrInvalidSize is returned for non-positive grid dimensions.
	ErrInvalidSize = errors.New("fft2d: rows and cols must be > 0")
	// ErrLengthMismatch is returned when a buffer does not hold rows*cols values.
	ErrLengthMismatch = errors.New("fft2d: buffer length mismatch")
	// ErrUnknownBackend is returned by ParseBackend for unrecognized names.
	ErrUnknownBackend = errors.New("fft2d: unknown backend")
)
