// Package moments defines moment-set types and the realizability guard
// used by all quadrature-based moment methods in this module.
//
// A univariate moment sequence m_0..m_{N-1} is held in a Set; multivariate
// moments indexed by exponent tuples live in an NDSet, a dense tensor with
// one axis per internal coordinate.
//
// Realizability:
//
//	A finite moment sequence is realizable when it is consistent with some
//	non-negative measure on the real line (a Hamburger moment sequence).
//	Check verifies this through the positive definiteness of the leading
//	Hankel matrices and reports the first violating moment order. Correct
//	repairs a mildly unrealizable sequence by clamping the offending
//	recurrence coefficients of the associated orthogonal polynomials and
//	rebuilding the moments, which keeps the lower-order moments intact.
//
// The package also provides RandomHamburger, a generator of random
// realizable moment sequences built from independently distributed
// recurrence coefficients. It is primarily used by property tests.
//
// Errors are package-level sentinels (ErrUnrealizable, ErrNonPositiveMass,
// ...) and must be matched with errors.Is.
package moments
