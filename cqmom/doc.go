// Package cqmom implements the conditional quadrature method of moments
// for multivariate moment sets.
//
// The inversion conditions one dimension at a time, in the order fixed by
// the per-dimension child inverters: the marginal moments of the first
// dimension are inverted into nodes x_1..x_n, then for every node the
// moments of the remaining dimensions conditioned on that node are
// recovered from weighted Vandermonde systems relating joint and
// conditional moments, and the procedure recurses. The result is a
// weighted point set in D dimensions, generally not a tensor product
// since node counts and locations may differ per branch, whose total
// weight equals the total mass m_{0,...,0}.
//
// Conditional branches only read the shared parent quadrature and moment
// tensor and write disjoint output slots, so they are inverted
// concurrently (errgroup). Assembly order is deterministic regardless of
// scheduling.
//
// A branch whose conditional moments cannot be inverted fails the whole
// inversion with the offending branch multi-index attached, unless
// AllowPartial is set, in which case the branch collapses to a single
// node at its conditional mean, preserving total mass.
package cqmom
