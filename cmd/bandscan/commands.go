package main

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-bands/dsp/bands"
	"github.com/cwbudde/algo-bands/dsp/filter/spectral"
	"github.com/cwbudde/algo-bands/dsp/grid"
)

func (a *app) newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Apply a high-pass or low-pass filter to an image",
		Long: `Transforms the image to the frequency domain, masks a centred square of
half-width --cutoff, and writes the magnitude of the inverse transform as an
8-bit grayscale PNG. Values above 255 wrap around modulo 256.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadFilterSettings(a.v)
			if err != nil {
				return err
			}
			return a.runFilter(s)
		},
	}

	cmd.Flags().String("in", "", "input image (PNG or JPEG)")
	cmd.Flags().String("out", "", "output PNG path")
	cmd.Flags().String("mode", "high", `filter mode ("high" or "low")`)
	cmd.Flags().Int("cutoff", 8, "half-width of the centred mask region")

	return cmd
}

func (a *app) runFilter(s filterSettings) error {
	g, err := loadGrid(s.In)
	if err != nil {
		return err
	}
	a.logger.Printf("loaded %s (%dx%d)", s.In, g.Rows(), g.Cols())

	out, err := spectral.Apply(g, s.Cutoff, s.Mode, spectral.WithBackend(s.Backend))
	if err != nil {
		return err
	}
	a.logger.Printf("applied %s filter, cutoff %d", s.Mode, s.Cutoff)

	if err := saveGrid(s.Out, out); err != nil {
		return err
	}
	a.logger.Printf("wrote %s", s.Out)
	return nil
}

func (a *app) newBandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Print bands of bright rows or columns in an image",
		Long: `Computes the mean intensity of every row (or column), marks entries above
--level, closes gaps of at most --max-gap entries and prints one
"start end" line (inclusive) per band. With a negative --level the mean of
the profile is used. --prefilter runs a spectral filter first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadBandSettings(a.v)
			if err != nil {
				return err
			}

			found, err := a.runBands(s)
			if err != nil {
				return err
			}
			for _, b := range found {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", b.Start, b.End)
			}
			return nil
		},
	}

	cmd.Flags().String("in", "", "input image (PNG or JPEG)")
	cmd.Flags().String("axis", "rows", `profile axis ("rows" or "cols")`)
	cmd.Flags().Float64("level", -1, "intensity threshold; negative means profile mean")
	cmd.Flags().Int("max-gap", bands.DefaultMaxGap, "longest gap closed between band segments")
	cmd.Flags().String("prefilter", "", `optional spectral filter before profiling ("high" or "low")`)
	cmd.Flags().Int("cutoff", 8, "prefilter mask half-width")

	return cmd
}

func (a *app) runBands(s bandSettings) ([]bands.Band, error) {
	g, err := loadGrid(s.In)
	if err != nil {
		return nil, err
	}
	a.logger.Printf("loaded %s (%dx%d)", s.In, g.Rows(), g.Cols())

	if s.HasPrefilter {
		filtered, err := spectral.Apply(g, s.Cutoff, s.Prefilter, spectral.WithBackend(s.Backend))
		if err != nil {
			return nil, err
		}
		g = filtered.Float()
		a.logger.Printf("prefiltered with %s, cutoff %d", s.Prefilter, s.Cutoff)
	}

	profile := grid.RowProfile(g)
	if s.Axis == "cols" {
		profile = grid.ColProfile(g)
	}

	level := s.Level
	if level < 0 {
		level = vecmath.Sum(profile) / float64(len(profile))
	}
	a.logger.Printf("%s profile of %d entries, level %.2f", s.Axis, len(profile), level)

	seq := bands.Denoise(bands.Threshold(profile, level), bands.WithMaxGap(s.MaxGap))
	found := bands.Extract(seq)
	a.logger.Printf("found %d bands", len(found))
	return found, nil
}
