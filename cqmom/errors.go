package cqmom

import "errors"

var (
	// ErrDimensionMismatch indicates that the number of child inverters
	// does not match the number of moment tensor dimensions.
	ErrDimensionMismatch = errors.New("cqmom: child inverter count does not match moment dimensions")

	// ErrNoChildren indicates an empty child inverter list.
	ErrNoChildren = errors.New("cqmom: no child inverters")

	// ErrBranchFailed indicates that a conditional inversion failed; the
	// wrapped message carries the branch multi-index.
	ErrBranchFailed = errors.New("cqmom: conditional branch failed")

	// ErrConditioning indicates a singular Vandermonde system while
	// recovering conditional moments (coinciding parent nodes).
	ErrConditioning = errors.New("cqmom: conditional moment system is singular")
)
