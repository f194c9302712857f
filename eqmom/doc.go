// Package eqmom implements the extended quadrature method of moments:
// the target density is represented as a mixture of smooth symmetric
// kernels (Gaussian or Laplace) of a common width sigma, centered at the
// nodes of a discrete base measure.
//
// Given 2N+1 moments, the inversion degenerates the moment set through
// the kernel-moment transform m* = T(sigma)^{-1} m (a unit lower
// triangular system), inverts m*_0..m*_{2N-1} with a univariate base
// inverter, and scores sigma by the mismatch between the remaining moment
// m*_2N and the value the base quadrature reproduces. The width is found
// by bisection on that mismatch within [0, sigmaMax], where sigmaMax is
// the width at which the degenerated variance vanishes. As sigma tends to
// zero the method reduces to the plain base inversion (QMOM).
//
// The search is bounded by NAb iterations and converges when the mismatch
// falls below Atol; exhaustion of the budget fails with ErrNoConvergence,
// a recoverable condition the caller may handle by widening the tolerance
// or falling back to plain QMOM.
package eqmom
