package spectral_test

import (
	"fmt"

	"github.com/cwbudde/algo-bands/dsp/filter/spectral"
	"github.com/cwbudde/algo-bands/dsp/grid"
)

func ExampleNewMask() {
	mask, _ := spectral.NewMask(4, 4, 1, spectral.ModeLowPass)
	for r := 0; r < 4; r++ {
		fmt.Println(mask[r*4 : (r+1)*4])
	}

	// Output:
	// [0 0 0 0]
	// [0 1 1 0]
	// [0 1 1 0]
	// [0 0 0 0]
}

func ExampleHighPass() {
	g, _ := grid.FromRows([][]float64{
		{10, 10, 10, 10},
		{10, 10, 10, 10},
		{10, 10, 10, 10},
		{10, 10, 10, 10},
	})

	out, _ := spectral.HighPass(g, 1)
	fmt.Println(out.ToRows())

	// Output:
	// [[0 0 0 0] [0 0 0 0] [0 0 0 0] [0 0 0 0]]
}
