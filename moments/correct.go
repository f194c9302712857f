package moments

import (
	"fmt"
	"math"
)

// RecurrenceComputer is the slice of a moment-inversion algorithm needed by
// the correction and generation routines: the mapping between a moment
// sequence and the three-term recurrence coefficients (alpha, beta) of its
// monic orthogonal polynomials, in both directions.
//
// RecurrenceCoeffs must return the computed coefficient arrays even when it
// also returns a realizability error; Correct inspects the raw coefficients
// to locate and repair the violation.
type RecurrenceComputer interface {
	RecurrenceCoeffs(mom Set) (alpha, beta []float64, err error)
	MomentsFromCoeffs(alpha, beta []float64, nmom int) (Set, error)
}

// CorrectOptions tunes the repair of unrealizable moment sequences.
type CorrectOptions struct {
	// BetaFloor is the value the first non-positive recurrence coefficient
	// beta_k is raised to. Must be positive.
	BetaFloor float64
}

// DefaultCorrectOptions returns the documented defaults (BetaFloor 1e-10).
func DefaultCorrectOptions() CorrectOptions {
	return CorrectOptions{BetaFloor: 1e-10}
}

// Correct projects a mildly unrealizable Hamburger moment sequence onto a
// nearby realizable one.
//
// The repair works in recurrence-coefficient space: the coefficients
// (alpha, beta) associated with mom are computed, every beta_k at or below
// zero (k >= 1) is clamped to BetaFloor, and the moment sequence is rebuilt
// from the clamped coefficients. Since any coefficient set with beta_k > 0
// corresponds to a valid non-negative measure, the rebuilt sequence is
// realizable by construction, and moments below the first violated order
// are reproduced exactly up to round-off. Clamping effectively damps the
// higher-order moments toward the nearest realizable values.
//
// Structural violations cannot be repaired this way and fail with
// ErrUnrealizable: a non-positive m_0, non-finite input, or recurrence
// coefficients that are already non-finite at or before the violation.
func Correct(mom Set, inv RecurrenceComputer, opts *CorrectOptions) (Set, error) {
	if err := mom.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnrealizable, err)
	}
	o := DefaultCorrectOptions()
	if opts != nil {
		o = *opts
	}
	if o.BetaFloor <= 0 || math.IsNaN(o.BetaFloor) {
		return nil, fmt.Errorf("%w: beta floor must be positive", ErrBadParam)
	}

	alpha, beta, rcErr := inv.RecurrenceCoeffs(mom)
	if len(alpha) == 0 || len(beta) == 0 {
		return nil, fmt.Errorf("%w: no recurrence coefficients", ErrUnrealizable)
	}

	clamped := false
	for k := 1; k < len(beta); k++ {
		if math.IsNaN(beta[k]) || math.IsInf(beta[k], 0) || math.IsNaN(alpha[min(k, len(alpha)-1)]) {
			// The recursion broke down before this order; everything from
			// here on carries no usable information about the input.
			return nil, fmt.Errorf("%w: recurrence breakdown at k=%d", ErrUnrealizable, k)
		}
		if beta[k] < o.BetaFloor {
			beta[k] = o.BetaFloor
			clamped = true
		}
	}
	if !clamped && rcErr == nil {
		return mom.Copy(), nil
	}

	out, err := inv.MomentsFromCoeffs(alpha, beta, len(mom))
	if err != nil {
		return nil, fmt.Errorf("%w: rebuild failed: %w", ErrUnrealizable, err)
	}
	return out, nil
}
