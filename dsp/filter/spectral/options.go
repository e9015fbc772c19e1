package spectral

import "github.com/cwbudde/algo-bands/dsp/fft2d"

// Config holds filter settings.
type Config struct {
	Backend fft2d.Backend
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default filter settings.
func DefaultConfig() Config {
	return Config{Backend: fft2d.BackendAuto}
}

// WithBackend selects the FFT backend used by the 2-D transform.
// Unknown backends are ignored.
func WithBackend(b fft2d.Backend) Option {
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
