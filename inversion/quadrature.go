package inversion

import (
	"math"

	"github.com/puetzmi/quadmom/moments"
)

// Quadrature is a univariate weighted point set. Nodes are sorted in
// ascending order; Weights[i] belongs to Nodes[i] and is non-negative.
// The weights sum to the zeroth input moment.
type Quadrature struct {
	Nodes   []float64
	Weights []float64
}

// Len returns the number of nodes.
func (q Quadrature) Len() int { return len(q.Nodes) }

// TotalWeight returns the sum of all weights, i.e. the reproduced m_0.
func (q Quadrature) TotalWeight() float64 {
	var sum float64
	for _, w := range q.Weights {
		sum += w
	}
	return sum
}

// Moment returns the k-th raw moment reproduced by the quadrature,
// sum_i w_i x_i^k.
func (q Quadrature) Moment(k int) float64 {
	var sum float64
	for i, x := range q.Nodes {
		sum += q.Weights[i] * math.Pow(x, float64(k))
	}
	return sum
}

// Moments returns the first nmom raw moments reproduced by the quadrature.
func (q Quadrature) Moments(nmom int) moments.Set {
	out := make(moments.Set, nmom)
	pow := make([]float64, q.Len())
	for i := range pow {
		pow[i] = 1
	}
	for k := 0; k < nmom; k++ {
		var sum float64
		for i := range q.Nodes {
			sum += q.Weights[i] * pow[i]
			pow[i] *= q.Nodes[i]
		}
		out[k] = sum
	}
	return out
}
