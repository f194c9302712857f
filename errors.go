package quadmom

import "errors"

var (
	// ErrUnknownAlgorithm indicates a qbmm_type or inv_type name that no
	// registered algorithm answers to.
	ErrUnknownAlgorithm = errors.New("quadmom: unknown algorithm")

	// ErrNotUnivariate is returned by Invert on a multivariate method.
	ErrNotUnivariate = errors.New("quadmom: method is multivariate")

	// ErrNotMultivariate is returned by InvertND on a univariate method.
	ErrNotMultivariate = errors.New("quadmom: method is univariate")
)
