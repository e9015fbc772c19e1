package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/cwbudde/algo-bands/dsp/grid"
)

// loadGrid decodes a PNG or JPEG file into a luma grid.
func loadGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	g, err := grid.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", path, format, err)
	}
	return g, nil
}

// saveGrid encodes g as a grayscale PNG.
func saveGrid(path string, g *grid.Uint8Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, g.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
