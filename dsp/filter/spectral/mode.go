package spectral

import (
	"fmt"
	"strings"
)

// Mode selects the mask polarity.
type Mode int

const (
	// ModeHighPass blocks the centred low-frequency region.
	ModeHighPass Mode = iota
	// ModeLowPass keeps only the centred low-frequency region.
	ModeLowPass
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeHighPass:
		return "high-pass"
	case ModeLowPass:
		return "low-pass"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is ModeHighPass or ModeLowPass.
func (m Mode) Valid() bool {
	return m == ModeHighPass || m == ModeLowPass
}

// ParseMode accepts "high-pass", "highpass", "high", "hp" and the low-pass
// equivalents, case-insensitively.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "high-pass", "highpass", "high_pass", "high", "hp":
		return ModeHighPass, nil
	case "low-pass", "lowpass", "low_pass", "low", "lp":
		return ModeLowPass, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
	}
}
