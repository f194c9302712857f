package inversion

import (
	"errors"
	"fmt"
	"math"

	"github.com/puetzmi/quadmom/moments"
)

// WheelerAdaptive is the adaptive variant of the Wheeler inverter
// (Marchisio and Fox). Starting from the largest node count supported by
// the moment sequence, it reduces the number of nodes until the resulting
// quadrature is well conditioned:
//
//   - every beta_k must be positive,
//   - min(w)/max(w) must exceed Rmin,
//   - the smallest pairwise node distance relative to the largest must
//     exceed Eabs.
//
// A single node is always accepted (node m_1/m_0, weight m_0), so the only
// failures are structurally invalid input (m_0 <= 0, non-finite moments or
// a negative beta_1).
type WheelerAdaptive struct {
	opts Options
}

// NewWheelerAdaptive creates an adaptive Wheeler inverter. opts may be nil
// for defaults.
func NewWheelerAdaptive(opts *Options) *WheelerAdaptive {
	return &WheelerAdaptive{opts: opts.resolve()}
}

// Invert computes a quadrature with at most len(mom)/2 nodes.
func (w *WheelerAdaptive) Invert(mom moments.Set) (Quadrature, error) {
	return adaptiveInvert(mom, w.opts, chebyshevCoeffs)
}

// RecurrenceCoeffs behaves like Wheeler.RecurrenceCoeffs.
func (w *WheelerAdaptive) RecurrenceCoeffs(mom moments.Set) (alpha, beta []float64, err error) {
	n := len(mom) / 2
	if n < 1 {
		return nil, nil, ErrTooFewMoments
	}
	return Recurrence(mom, n, w.opts.Rmin)
}

// MomentsFromCoeffs rebuilds raw moments from recurrence coefficients.
func (w *WheelerAdaptive) MomentsFromCoeffs(alpha, beta []float64, nmom int) (moments.Set, error) {
	return CoeffsToMoments(alpha, beta, nmom)
}

var _ moments.RecurrenceComputer = (*WheelerAdaptive)(nil)

// coeffsFunc computes raw recurrence coefficients for n nodes without
// realizability checks; adaptiveInvert applies its own criteria.
type coeffsFunc func(mom moments.Set, n int) (alpha, beta []float64, err error)

func chebyshevCoeffs(mom moments.Set, n int) ([]float64, []float64, error) {
	alpha, beta := chebyshev(mom, n)
	return alpha, beta, nil
}

// adaptiveInvert implements the shared node-reduction loop of the adaptive
// inverters. The repair policy is fixed: criteria are evaluated for
// decreasing n and the first node count satisfying all of them wins; no
// moment modification is attempted here (that is the job of
// moments.Correct, invoked by callers that enable it).
func adaptiveInvert(mom moments.Set, opts Options, coeffs coeffsFunc) (Quadrature, error) {
	if len(mom) < 2 {
		return Quadrature{}, ErrTooFewMoments
	}
	if err := mom.Validate(); err != nil {
		return Quadrature{}, fmt.Errorf("%w: %w", moments.ErrUnrealizable, err)
	}

	nmax := len(mom) / 2
	var lastErr error
	for n := nmax; n >= 1; n-- {
		alpha, beta, err := coeffs(mom[:2*n], n)
		if err != nil {
			lastErr = err
			continue
		}
		if k, ok := firstNonPositiveBeta(beta); ok {
			if n == 1 {
				break
			}
			lastErr = fmt.Errorf("%w: beta_%d = %g at n = %d", ErrDegenerateMoments, k, beta[k], n)
			continue
		}
		q, err := jacobiQuadrature(alpha, beta)
		if err != nil {
			lastErr = err
			continue
		}
		if n == 1 || wellConditioned(q, opts) {
			return q, nil
		}
		lastErr = fmt.Errorf("%w: ill-conditioned quadrature at n = %d", ErrDegenerateMoments, n)
	}

	// All node counts failed, including n = 1, which only happens for
	// structurally invalid input.
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: beta_1 < 0", moments.ErrUnrealizable)
	}
	if !errors.Is(lastErr, moments.ErrUnrealizable) {
		lastErr = fmt.Errorf("%w: %w", moments.ErrUnrealizable, lastErr)
	}
	return Quadrature{}, lastErr
}

func firstNonPositiveBeta(beta []float64) (int, bool) {
	for k := 1; k < len(beta); k++ {
		if beta[k] <= 0 || math.IsNaN(beta[k]) {
			return k, true
		}
	}
	return 0, false
}

// wellConditioned applies the weight-ratio and node-distance criteria.
func wellConditioned(q Quadrature, opts Options) bool {
	wmin, wmax := q.Weights[0], q.Weights[0]
	for _, w := range q.Weights[1:] {
		wmin = math.Min(wmin, w)
		wmax = math.Max(wmax, w)
	}
	if wmax <= 0 || wmin/wmax < opts.Rmin {
		return false
	}

	// Nodes are sorted, so adjacent distances are the pairwise minima.
	dmin := math.Inf(1)
	dmax := q.Nodes[len(q.Nodes)-1] - q.Nodes[0]
	for i := 1; i < len(q.Nodes); i++ {
		dmin = math.Min(dmin, q.Nodes[i]-q.Nodes[i-1])
	}
	if dmax <= 0 {
		return false
	}
	return dmin/dmax >= opts.Eabs
}
