package moments

import "errors"

var (
	// ErrEmptySet indicates an empty moment sequence.
	ErrEmptySet = errors.New("moments: empty moment set")

	// ErrNonPositiveMass indicates m_0 <= 0; the sequence cannot be normalized.
	ErrNonPositiveMass = errors.New("moments: zeroth moment must be positive")

	// ErrNotFinite indicates a NaN or infinite moment value.
	ErrNotFinite = errors.New("moments: non-finite moment value")

	// ErrUnrealizable indicates that the sequence is not consistent with any
	// non-negative measure and could not be repaired.
	ErrUnrealizable = errors.New("moments: unrealizable moment set")

	// ErrDimensionMismatch indicates an index or shape that does not match
	// the tensor dimensions of an NDSet.
	ErrDimensionMismatch = errors.New("moments: dimension mismatch")

	// ErrBadParam indicates an invalid parameter of the random moment
	// generator (wrong length or out-of-range value).
	ErrBadParam = errors.New("moments: invalid generator parameter")
)
