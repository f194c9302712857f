package inversion_test

import (
	"fmt"

	"github.com/puetzmi/quadmom/inversion"
	"github.com/puetzmi/quadmom/moments"
)

// Invert four raw moments of a two-point measure into its exact
// quadrature.
func ExampleWheeler_Invert() {
	w := inversion.NewWheeler(nil)
	q, err := w.Invert(moments.Set{1, 0.8, 2.8, 4.4})
	if err != nil {
		fmt.Println("invert:", err)
		return
	}
	for i := 0; i < q.Len(); i++ {
		fmt.Printf("x = %7.4f  w = %.4f\n", q.Nodes[i], q.Weights[i])
	}
	// Output:
	// x = -1.0000  w = 0.4000
	// x =  2.0000  w = 0.6000
}

// The adaptive inverter reduces the node count when the input carries
// fewer support points than moments.
func ExampleWheelerAdaptive_Invert() {
	w := inversion.NewWheelerAdaptive(nil)
	q, err := w.Invert(moments.Set{1, 2, 5, 14, 41, 122})
	if err != nil {
		fmt.Println("invert:", err)
		return
	}
	fmt.Println("nodes:", q.Len())
	for i := 0; i < q.Len(); i++ {
		fmt.Printf("x = %.4f  w = %.4f\n", q.Nodes[i], q.Weights[i])
	}
	// Output:
	// nodes: 2
	// x = 1.0000  w = 0.5000
	// x = 3.0000  w = 0.5000
}
