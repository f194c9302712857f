package inversion

import "errors"

var (
	// ErrTooFewMoments indicates that the moment sequence is too short for
	// the requested number of nodes.
	ErrTooFewMoments = errors.New("inversion: too few moments")

	// ErrDegenerateMoments indicates a near-singular recurrence: some
	// beta_k is positive but below the configured Rmin floor. The input is
	// formally realizable but numerically marginal; adaptive inverters
	// handle this by reducing the node count.
	ErrDegenerateMoments = errors.New("inversion: degenerate moment set")

	// ErrEigenFailed indicates that the symmetric tridiagonal
	// eigendecomposition of the Jacobi matrix did not converge.
	ErrEigenFailed = errors.New("inversion: jacobi eigendecomposition failed")

	// ErrBadCoeffs indicates recurrence coefficient arrays with
	// inconsistent lengths or negative beta entries.
	ErrBadCoeffs = errors.New("inversion: invalid recurrence coefficients")
)
