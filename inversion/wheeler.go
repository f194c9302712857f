package inversion

import (
	"github.com/puetzmi/quadmom/moments"
)

// Wheeler inverts a moment sequence into a Gaussian quadrature using the
// modified Chebyshev recursion and a Jacobi eigendecomposition.
//
// A sequence of 2n moments yields exactly n nodes. The returned quadrature
// reproduces all 2n input moments up to round-off; the weights sum to m_0.
type Wheeler struct {
	opts Options
}

// NewWheeler creates a Wheeler inverter. opts may be nil for defaults.
func NewWheeler(opts *Options) *Wheeler {
	return &Wheeler{opts: opts.resolve()}
}

// Invert computes the n-node quadrature of mom, n = len(mom)/2.
//
// Errors: moments.ErrUnrealizable for a negative beta_k,
// ErrDegenerateMoments for a beta_k below Rmin, ErrTooFewMoments for fewer
// than two moments, ErrEigenFailed for a non-converged eigensolve.
func (w *Wheeler) Invert(mom moments.Set) (Quadrature, error) {
	n := len(mom) / 2
	if n < 1 {
		return Quadrature{}, ErrTooFewMoments
	}
	alpha, beta, err := Recurrence(mom, n, w.opts.Rmin)
	if err != nil {
		return Quadrature{}, err
	}
	return jacobiQuadrature(alpha, beta)
}

// RecurrenceCoeffs exposes the recurrence coefficients of mom. The raw
// arrays are returned even when err reports unrealizable or degenerate
// input, which is what moments.Correct needs to repair the sequence.
func (w *Wheeler) RecurrenceCoeffs(mom moments.Set) (alpha, beta []float64, err error) {
	n := len(mom) / 2
	if n < 1 {
		return nil, nil, ErrTooFewMoments
	}
	return Recurrence(mom, n, w.opts.Rmin)
}

// MomentsFromCoeffs rebuilds raw moments from recurrence coefficients.
func (w *Wheeler) MomentsFromCoeffs(alpha, beta []float64, nmom int) (moments.Set, error) {
	return CoeffsToMoments(alpha, beta, nmom)
}

var _ moments.RecurrenceComputer = (*Wheeler)(nil)
