package eqmom

import (
	"fmt"
	"math"

	"github.com/puetzmi/quadmom/inversion"
	"github.com/puetzmi/quadmom/moments"
)

// Base is the univariate moment inverter the extended method builds on,
// typically inversion.Wheeler or an adaptive variant.
type Base interface {
	Invert(mom moments.Set) (inversion.Quadrature, error)
}

// Options bounds the kernel-width search.
type Options struct {
	// NAb is the maximum number of bisection iterations.
	NAb int
	// Atol is the absolute tolerance on the highest-moment mismatch.
	Atol float64
}

// DefaultOptions returns the documented defaults (NAb 50, Atol 1e-9).
func DefaultOptions() Options {
	return Options{NAb: 50, Atol: 1e-9}
}

// EQMOM is the extended quadrature inverter. It is pure; no state is kept
// between calls.
type EQMOM struct {
	kernel Kernel
	base   Base
	opts   Options
}

// New creates an extended inverter over the given kernel and base
// inverter. opts may be nil for defaults.
func New(kernel Kernel, base Base, opts *Options) (*EQMOM, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	if kernel == nil {
		kernel = GaussKernel{}
	}
	o := DefaultOptions()
	if opts != nil {
		if opts.NAb > 0 {
			o.NAb = opts.NAb
		}
		if opts.Atol > 0 {
			o.Atol = opts.Atol
		}
	}
	return &EQMOM{kernel: kernel, base: base, opts: o}, nil
}

// Result is an extended quadrature: the discrete base measure plus the
// kernel width. The continuous density is sum_i w_i K(x; x_i, Sigma).
type Result struct {
	inversion.Quadrature
	Sigma float64
}

// Invert satisfies the univariate inverter capability, discarding the
// kernel width. Use InvertFull when Sigma is needed.
func (e *EQMOM) Invert(mom moments.Set) (inversion.Quadrature, error) {
	r, err := e.InvertFull(mom)
	return r.Quadrature, err
}

// InvertFull inverts 2N+1 moments into an N-node extended quadrature.
//
// The kernel width starts at zero (the plain QMOM limit) and is bisected
// within [0, sigmaMax], where sigmaMax annihilates the degenerated
// variance. Widths whose degenerated moments the base inverter rejects
// count as too large. Errors: ErrMomentCount, moments.ErrUnrealizable for
// input whose highest moment lies below the quadrature bound, and
// ErrNoConvergence when NAb iterations do not reach Atol.
func (e *EQMOM) InvertFull(mom moments.Set) (Result, error) {
	if len(mom) < 3 || len(mom)%2 == 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrMomentCount, len(mom))
	}
	if err := mom.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", moments.ErrUnrealizable, err)
	}

	d0, q0, err := e.evaluate(mom, 0)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(d0) <= e.opts.Atol {
		return Result{Quadrature: q0, Sigma: 0}, nil
	}
	if d0 < 0 {
		return Result{}, fmt.Errorf("%w: moment m_%d exceeds its quadrature bound by %g",
			moments.ErrUnrealizable, len(mom)-1, -d0)
	}

	mean := mom[1] / mom[0]
	cvar := mom[2]/mom[0] - mean*mean
	if cvar <= 0 {
		// A point mass has no room for a finite-width kernel.
		return Result{Quadrature: q0, Sigma: 0}, nil
	}
	sigmaMax := math.Sqrt(cvar / e.kernel.CentralMoment(2, 1))

	lo, hi := 0.0, sigmaMax
	for i := 0; i < e.opts.NAb; i++ {
		mid := 0.5 * (lo + hi)
		d, q, err := e.evaluate(mom, mid)
		if err != nil {
			// Degenerated moments no longer invertible: width too large.
			hi = mid
			continue
		}
		if math.Abs(d) <= e.opts.Atol {
			return Result{Quadrature: q, Sigma: mid}, nil
		}
		if d > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Result{}, fmt.Errorf("%w: %d iterations, bracket [%g, %g]", ErrNoConvergence, e.opts.NAb, lo, hi)
}

// evaluate degenerates mom at the given width, inverts all but the highest
// degenerated moment and returns the mismatch of that highest moment.
// Because the transform is unit lower triangular and the base quadrature
// reproduces its own input moments exactly, this mismatch equals the
// mismatch of the reconstructed mixture moment m_2N.
func (e *EQMOM) evaluate(mom moments.Set, sigma float64) (float64, inversion.Quadrature, error) {
	ms := e.degenerate(mom, sigma)
	q, err := e.base.Invert(ms[:len(ms)-1])
	if err != nil {
		return 0, inversion.Quadrature{}, err
	}
	top := len(ms) - 1
	return ms[top] - q.Moment(top), q, nil
}

// degenerate solves m = T(sigma) m* for m* by forward substitution, where
// T_kj = C(k,j) mu_{k-j}(sigma) holds the kernel central moments.
func (e *EQMOM) degenerate(mom moments.Set, sigma float64) moments.Set {
	ms := make(moments.Set, len(mom))
	for k := range mom {
		v := mom[k]
		c := 1.0 // C(k,j), updated incrementally
		for j := 1; j <= k; j++ {
			c = c * float64(k-j+1) / float64(j)
			if mu := e.kernel.CentralMoment(j, sigma); mu != 0 {
				v -= c * mu * ms[k-j]
			}
		}
		ms[k] = v
	}
	return ms
}
