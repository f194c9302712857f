package cqmom

import "math"

// Grid is a multivariate weighted point set. Nodes[i] holds the D
// coordinates of point i; Weights[i] is its non-negative weight. The
// point set is generally not a tensor product.
type Grid struct {
	Nodes   [][]float64
	Weights []float64
}

// Len returns the number of points.
func (g Grid) Len() int { return len(g.Nodes) }

// Dim returns the number of coordinates per point, zero for an empty grid.
func (g Grid) Dim() int {
	if len(g.Nodes) == 0 {
		return 0
	}
	return len(g.Nodes[0])
}

// TotalWeight returns the sum of all weights, i.e. the reproduced total
// mass m_{0,...,0}.
func (g Grid) TotalWeight() float64 {
	var sum float64
	for _, w := range g.Weights {
		sum += w
	}
	return sum
}

// Moment returns the reproduced joint raw moment of the given multi-order,
// sum_i w_i prod_d x_{i,d}^{k_d}. The number of exponents must equal Dim.
func (g Grid) Moment(exps ...int) float64 {
	var sum float64
	for i, x := range g.Nodes {
		term := g.Weights[i]
		for d, k := range exps {
			term *= math.Pow(x[d], float64(k))
		}
		sum += term
	}
	return sum
}
