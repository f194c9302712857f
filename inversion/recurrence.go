package inversion

import (
	"fmt"
	"math"

	"github.com/puetzmi/quadmom/moments"
)

// Recurrence computes the first n pairs of three-term recurrence
// coefficients (alpha_k, beta_k) of the monic orthogonal polynomials
// associated with mom, using the modified Chebyshev (Wheeler) recursion.
// By convention beta_0 = m_0.
//
// floor separates numerically marginal input from invalid input: a
// beta_k < 0 fails with moments.ErrUnrealizable, a beta_k in [0, floor)
// fails with ErrDegenerateMoments. Both errors still return the raw
// coefficient arrays so that callers (the realizability guard, adaptive
// inverters) can inspect and repair them.
func Recurrence(mom moments.Set, n int, floor float64) (alpha, beta []float64, err error) {
	if len(mom) < 2*n {
		return nil, nil, fmt.Errorf("%w: have %d, need %d for %d nodes", ErrTooFewMoments, len(mom), 2*n, n)
	}
	if err := mom.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", moments.ErrUnrealizable, err)
	}
	alpha, beta = chebyshev(mom, n)
	return alpha, beta, checkBetas(beta, floor)
}

// checkBetas enforces the realizability policy shared by the recurrence
// algorithms: beta_k < 0 is unrealizable, beta_k below the floor is
// degenerate.
func checkBetas(beta []float64, floor float64) error {
	for k := 1; k < len(beta); k++ {
		b := beta[k]
		switch {
		case math.IsNaN(b) || b < 0:
			return fmt.Errorf("%w: beta_%d = %g", moments.ErrUnrealizable, k, b)
		case b < floor:
			return fmt.Errorf("%w: beta_%d = %g below floor %g", ErrDegenerateMoments, k, b, floor)
		}
	}
	return nil
}

// chebyshev runs the raw sigma-table recursion without realizability
// checks. Entries may be NaN or negative for unrealizable input.
func chebyshev(mom moments.Set, n int) (alpha, beta []float64) {
	alpha = make([]float64, n)
	beta = make([]float64, n)
	alpha[0] = mom[1] / mom[0]
	beta[0] = mom[0]
	if n == 1 {
		return alpha, beta
	}

	nm := 2 * n
	prev2 := make([]float64, nm) // sigma row k-2, zero for k = 1
	prev := make([]float64, nm)  // sigma row k-1
	cur := make([]float64, nm)   // sigma row k
	copy(prev, mom[:nm])

	for k := 1; k < n; k++ {
		for l := k; l <= nm-k-1; l++ {
			cur[l] = prev[l+1] - alpha[k-1]*prev[l] - beta[k-1]*prev2[l]
		}
		alpha[k] = cur[k+1]/cur[k] - prev[k]/prev[k-1]
		beta[k] = cur[k] / prev[k-1]
		prev2, prev, cur = prev, cur, prev2
		for l := range cur {
			cur[l] = 0
		}
	}
	return alpha, beta
}

// CoeffsToMoments reconstructs the raw moments m_0..m_{nmom-1} belonging
// to the recurrence coefficients (alpha, beta), inverting the Chebyshev
// recursion. It accepts len(alpha) equal to len(beta) or len(beta)-1 (the
// trailing alpha only multiplies zero entries) and supports
// nmom <= len(alpha)+len(beta).
//
// Every coefficient set with beta_0 > 0 and beta_k > 0 corresponds to a
// non-negative measure, so the returned sequence is always realizable.
func CoeffsToMoments(alpha, beta []float64, nmom int) (moments.Set, error) {
	n := len(beta)
	if n == 0 || (len(alpha) != n && len(alpha) != n-1) {
		return nil, fmt.Errorf("%w: len(alpha) = %d, len(beta) = %d", ErrBadCoeffs, len(alpha), n)
	}
	if beta[0] <= 0 {
		return nil, fmt.Errorf("%w: beta_0 = %g", ErrBadCoeffs, beta[0])
	}
	for k := 1; k < n; k++ {
		if beta[k] < 0 {
			return nil, fmt.Errorf("%w: beta_%d = %g", ErrBadCoeffs, k, beta[k])
		}
	}
	if nmom < 1 || nmom > len(alpha)+n {
		return nil, fmt.Errorf("%w: cannot build %d moments from %d coefficient pairs", ErrTooFewMoments, nmom, n)
	}

	a := alpha
	if len(a) < n {
		a = append(append([]float64(nil), alpha...), 0)
	}

	// sig[k][l] is the Chebyshev sigma table, reconstructed column by
	// column from sig[k][l+1] = sig[k+1][l] + alpha_k sig[k][l] + beta_k sig[k-1][l].
	sig := make([][]float64, n+1)
	for k := range sig {
		sig[k] = make([]float64, nmom)
	}
	sig[0][0] = beta[0]

	out := make(moments.Set, nmom)
	out[0] = beta[0]
	for l := 0; l+1 < nmom; l++ {
		for k := 0; k < n && k <= l+1; k++ {
			s := sig[k+1][l] + a[k]*sig[k][l]
			if k > 0 {
				s += beta[k] * sig[k-1][l]
			}
			sig[k][l+1] = s
		}
		out[l+1] = sig[0][l+1]
	}
	return out, nil
}
