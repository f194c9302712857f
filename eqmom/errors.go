package eqmom

import "errors"

var (
	// ErrNoConvergence indicates that the kernel-width search exhausted
	// its iteration budget without matching the highest moment to Atol.
	ErrNoConvergence = errors.New("eqmom: kernel width search did not converge")

	// ErrUnknownKernel indicates an unrecognized kernel name.
	ErrUnknownKernel = errors.New("eqmom: unknown kernel")

	// ErrMomentCount indicates a moment sequence that is not of the odd
	// length 2N+1 required by the extended inversion.
	ErrMomentCount = errors.New("eqmom: moment count must be odd and at least three")

	// ErrNilBase indicates a missing base inverter.
	ErrNilBase = errors.New("eqmom: nil base inverter")
)
