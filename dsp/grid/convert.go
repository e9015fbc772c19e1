package grid

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// WrapUint8 narrows v to 8 bits: the value is truncated toward zero and then
// reduced modulo 256, so 256 becomes 0 and 300.7 becomes 44. Values are not
// clamped. NaN and infinities map to 0.
func WrapUint8(v float64) uint8 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), 256)
	if m < 0 {
		m += 256
	}
	return uint8(m)
}

// Narrow converts g to an 8-bit grid using [WrapUint8] on every sample.
func Narrow(g *Grid) *Uint8Grid {
	out := &Uint8Grid{rows: g.rows, cols: g.cols, data: make([]uint8, len(g.data))}
	NarrowInto(out.data, g.data)
	return out
}

// NarrowInto writes WrapUint8(src[i]) into dst[i] for the common length.
func NarrowInto(dst []uint8, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = WrapUint8(src[i])
	}
}

// FromImage converts img to a grid of 8-bit luma values.
// Colour images are reduced with [color.GrayModel].
func FromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	g, err := New(b.Dy(), b.Dx())
	if err != nil {
		return nil, fmt.Errorf("grid: image %v: %w", b, err)
	}

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < g.rows; y++ {
			off := gray.PixOffset(b.Min.X, b.Min.Y+y)
			row := g.Row(y)
			for x := range row {
				row[x] = float64(gray.Pix[off+x])
			}
		}
		return g, nil
	}

	for y := 0; y < g.rows; y++ {
		row := g.Row(y)
		for x := range row {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			row[x] = float64(c.Y)
		}
	}
	return g, nil
}

// Image returns the grid as a grayscale image anchored at the origin.
func (g *Uint8Grid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.cols, g.rows))
	for y := 0; y < g.rows; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.cols], g.Row(y))
	}
	return img
}
