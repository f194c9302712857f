package inversion

import (
	"fmt"

	"github.com/puetzmi/quadmom/moments"
)

// ProductDifference inverts a moment sequence using Gordon's
// product-difference (PD) algorithm: the recurrence coefficients are
// obtained from continued-fraction coefficients zeta built out of a
// triangular P matrix, then the Jacobi eigenproblem is solved as in
// Wheeler. For small moment sets (fewer than about twenty moments) PD and
// Wheeler are numerically equivalent; PD is kept as the classical
// reference algorithm and for cross-checking.
type ProductDifference struct {
	opts Options
}

// NewProductDifference creates a PD inverter. opts may be nil for defaults.
func NewProductDifference(opts *Options) *ProductDifference {
	return &ProductDifference{opts: opts.resolve()}
}

// Invert computes the n-node quadrature of mom, n = len(mom)/2.
func (p *ProductDifference) Invert(mom moments.Set) (Quadrature, error) {
	alpha, beta, err := p.RecurrenceCoeffs(mom)
	if err != nil {
		return Quadrature{}, err
	}
	return jacobiQuadrature(alpha, beta)
}

// RecurrenceCoeffs computes the recurrence coefficients via the PD
// algorithm. Like Wheeler.RecurrenceCoeffs it returns the raw arrays even
// alongside a realizability error.
func (p *ProductDifference) RecurrenceCoeffs(mom moments.Set) (alpha, beta []float64, err error) {
	n := len(mom) / 2
	if n < 1 {
		return nil, nil, ErrTooFewMoments
	}
	if verr := mom.Validate(); verr != nil {
		return nil, nil, fmt.Errorf("%w: %w", moments.ErrUnrealizable, verr)
	}
	alpha, beta = productDifference(mom, n)
	return alpha, beta, checkBetas(beta, p.opts.Rmin)
}

// MomentsFromCoeffs rebuilds raw moments from recurrence coefficients.
func (p *ProductDifference) MomentsFromCoeffs(alpha, beta []float64, nmom int) (moments.Set, error) {
	return CoeffsToMoments(alpha, beta, nmom)
}

var _ moments.RecurrenceComputer = (*ProductDifference)(nil)

// ProductDifferenceAdaptive combines the PD recurrence with the same
// node-count reduction criteria as WheelerAdaptive.
type ProductDifferenceAdaptive struct {
	opts Options
}

// NewProductDifferenceAdaptive creates an adaptive PD inverter. opts may
// be nil for defaults.
func NewProductDifferenceAdaptive(opts *Options) *ProductDifferenceAdaptive {
	return &ProductDifferenceAdaptive{opts: opts.resolve()}
}

// Invert computes a quadrature with at most len(mom)/2 nodes.
func (p *ProductDifferenceAdaptive) Invert(mom moments.Set) (Quadrature, error) {
	return adaptiveInvert(mom, p.opts, func(mom moments.Set, n int) ([]float64, []float64, error) {
		alpha, beta := productDifference(mom, n)
		return alpha, beta, nil
	})
}

// productDifference computes raw recurrence coefficients from the P-matrix
// continued-fraction construction. Entries may be NaN or negative for
// unrealizable input; callers apply their own checks.
func productDifference(mom moments.Set, n int) (alpha, beta []float64) {
	size := 2*n + 1

	p := make([][]float64, size)
	for i := range p {
		p[i] = make([]float64, size)
	}
	p[0][0] = 1
	for i := 0; i < 2*n && i < len(mom); i++ {
		p[i][1] = mom[i]
	}
	// Alternate signs on even rows; the signs cancel in the zeta ratios.
	for i := 0; i < size; i += 2 {
		for j := range p[i] {
			p[i][j] = -p[i][j]
		}
	}

	for j := 2; j < size; j++ {
		k := size + 2 - j
		for i := 0; i+1 < k; i++ {
			p[i][j] = p[0][j-1]*p[i+1][j-2] - p[0][j-2]*p[i+1][j-1]
		}
	}

	zeta := make([]float64, size-1)
	for j := 1; j < size-1; j++ {
		zeta[j] = p[0][j+1] / (p[0][j] * p[0][j-1])
	}

	alpha = make([]float64, n)
	beta = make([]float64, n)
	beta[0] = mom[0]
	for k := 0; k < n; k++ {
		alpha[k] = zeta[2*k] + zeta[2*k+1]
		if k > 0 {
			beta[k] = zeta[2*k] * zeta[2*k-1]
		}
	}
	return alpha, beta
}
