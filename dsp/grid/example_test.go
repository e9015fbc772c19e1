package grid_test

import (
	"fmt"

	"github.com/cwbudde/algo-bands/dsp/grid"
)

func ExampleWrapUint8() {
	fmt.Println(grid.WrapUint8(42.9), grid.WrapUint8(256), grid.WrapUint8(300))

	// Output:
	// 42 0 44
}

func ExampleRowProfile() {
	g, _ := grid.FromRows([][]float64{{0, 10}, {20, 40}})
	fmt.Println(grid.RowProfile(g))

	// Output:
	// [5 30]
}
