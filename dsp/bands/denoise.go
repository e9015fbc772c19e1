package bands

// DefaultMaxGap is the longest run of false that Denoise closes.
const DefaultMaxGap = 3

// Config holds Denoise settings.
type Config struct {
	MaxGap int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default Denoise settings.
func DefaultConfig() Config {
	return Config{MaxGap: DefaultMaxGap}
}

// WithMaxGap sets the longest false run that is converted to true.
// Values <= 0 are ignored.
func WithMaxGap(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxGap = n
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

// FalseRuns returns every maximal run of false in seq as a Band.
func FalseRuns(seq []bool) []Band {
	var runs []Band
	for i := 0; i < len(seq); {
		if seq[i] {
			i++
			continue
		}
		start := i
		for i < len(seq) && !seq[i] {
			i++
		}
		runs = append(runs, Band{Start: start, End: i - 1})
	}
	return runs
}

// Denoise sets every run of false no longer than the configured gap
// (default 3) to true and returns seq. Runs touching either end of the
// sequence are treated like interior runs.
//
// All runs are found before any is converted, so the result does not depend
// on scan order and a second call is a no-op. seq is modified in place.
func Denoise(seq []bool, opts ...Option) []bool {
	cfg := ApplyOptions(opts...)

	var gaps []Band
	for _, run := range FalseRuns(seq) {
		if run.Len() <= cfg.MaxGap {
			gaps = append(gaps, run)
		}
	}

	for _, g := range gaps {
		for i := g.Start; i <= g.End; i++ {
			seq[i] = true
		}
	}
	return seq
}
