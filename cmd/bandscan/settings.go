package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-bands/dsp/fft2d"
	"github.com/cwbudde/algo-bands/dsp/filter/spectral"
)

var (
	errMissingInput  = errors.New("--in is required")
	errMissingOutput = errors.New("--out is required")
	errInvalidAxis   = errors.New(`axis must be "rows" or "cols"`)
)

// filterSettings are the resolved options of the filter subcommand.
type filterSettings struct {
	In      string
	Out     string
	Mode    spectral.Mode
	Cutoff  int
	Backend fft2d.Backend
}

func loadFilterSettings(v *viper.Viper) (filterSettings, error) {
	s := filterSettings{
		In:     v.GetString("in"),
		Out:    v.GetString("out"),
		Cutoff: v.GetInt("cutoff"),
	}
	if s.In == "" {
		return s, errMissingInput
	}
	if s.Out == "" {
		return s, errMissingOutput
	}

	var err error
	if s.Mode, err = spectral.ParseMode(v.GetString("mode")); err != nil {
		return s, err
	}
	if s.Backend, err = fft2d.ParseBackend(v.GetString("backend")); err != nil {
		return s, err
	}
	if s.Cutoff < 0 {
		return s, fmt.Errorf("%w: %d", spectral.ErrNegativeCutoff, s.Cutoff)
	}
	return s, nil
}

// bandSettings are the resolved options of the bands subcommand.
type bandSettings struct {
	In      string
	Axis    string
	Level   float64
	MaxGap  int
	Backend fft2d.Backend

	// Prefilter is applied before profiling when HasPrefilter is set.
	HasPrefilter bool
	Prefilter    spectral.Mode
	Cutoff       int
}

func loadBandSettings(v *viper.Viper) (bandSettings, error) {
	s := bandSettings{
		In:     v.GetString("in"),
		Axis:   strings.ToLower(v.GetString("axis")),
		Level:  v.GetFloat64("level"),
		MaxGap: v.GetInt("max-gap"),
		Cutoff: v.GetInt("cutoff"),
	}
	if s.In == "" {
		return s, errMissingInput
	}
	if s.Axis != "rows" && s.Axis != "cols" {
		return s, fmt.Errorf("%w: %q", errInvalidAxis, s.Axis)
	}

	var err error
	if s.Backend, err = fft2d.ParseBackend(v.GetString("backend")); err != nil {
		return s, err
	}
	if name := v.GetString("prefilter"); name != "" {
		if s.Prefilter, err = spectral.ParseMode(name); err != nil {
			return s, err
		}
		s.HasPrefilter = true
	}
	if s.Cutoff < 0 {
		return s, fmt.Errorf("%w: %d", spectral.ErrNegativeCutoff, s.Cutoff)
	}
	return s, nil
}
