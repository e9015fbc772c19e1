package fft2d

import (
	"fmt"
	"strings"
)

// Backend selects the 1-D FFT implementation used along each axis.
type Backend int

const (
	// BackendAuto uses algo-fft and falls back to gonum if algo-fft returns
	// a planning error for a length.
	BackendAuto Backend = iota
	// BackendAlgoFFT uses algo-fft only; planning fails for unsupported lengths.
	BackendAlgoFFT
	// BackendGonum uses gonum's mixed-radix FFT for every length.
	BackendGonum
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendAlgoFFT:
		return "algofft"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Valid reports whether b is one of the defined backends.
func (b Backend) Valid() bool {
	return b >= BackendAuto && b <= BackendGonum
}

// ParseBackend maps a name ("auto", "algofft", "gonum") to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return BackendAuto, nil
	case "algofft", "algo-fft":
		return BackendAlgoFFT, nil
	case "gonum":
		return BackendGonum, nil
	default:
		return BackendAuto, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Config holds plan settings.
type Config struct {
	Backend Backend
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default plan settings.
func DefaultConfig() Config {
	return Config{Backend: BackendAuto}
}

// WithBackend selects the 1-D FFT backend. Unknown values are ignored.
func WithBackend(b Backend) Option {
	return func(cfg *Config) {
		if b.Valid() {
			cfg.Backend = b
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
