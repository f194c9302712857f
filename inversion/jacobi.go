package inversion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// jacobiQuadrature assembles the symmetric tridiagonal Jacobi matrix with
// diagonal alpha and off-diagonal sqrt(beta_k), solves its symmetric
// eigendecomposition and turns it into an n-node quadrature: eigenvalues
// are the nodes (ascending, as returned by the solver), the weight of node
// i is beta_0 times the squared first component of its normalized
// eigenvector.
func jacobiQuadrature(alpha, beta []float64) (Quadrature, error) {
	n := len(alpha)
	if n == 0 || len(beta) != n {
		return Quadrature{}, fmt.Errorf("%w: len(alpha) = %d, len(beta) = %d", ErrBadCoeffs, n, len(beta))
	}
	if n == 1 {
		return Quadrature{Nodes: []float64{alpha[0]}, Weights: []float64{beta[0]}}, nil
	}
	for k := 1; k < n; k++ {
		if beta[k] < 0 || math.IsNaN(beta[k]) {
			return Quadrature{}, fmt.Errorf("%w: beta_%d = %g", ErrBadCoeffs, k, beta[k])
		}
	}

	// Symmetric band storage, bandwidth 1: row i holds [diag, super].
	data := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		data[2*i] = alpha[i]
		if i < n-1 {
			data[2*i+1] = math.Sqrt(beta[i+1])
		}
	}
	jac := mat.NewSymBandDense(n, 1, data)

	var eig mat.EigenSym
	if !eig.Factorize(jac, true) {
		return Quadrature{}, ErrEigenFailed
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	q := Quadrature{
		Nodes:   eig.Values(nil),
		Weights: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		v0 := vecs.At(0, i)
		q.Weights[i] = beta[0] * v0 * v0
	}
	return q, nil
}
