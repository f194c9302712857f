// Package quadmom inverts raw moment sequences into Gaussian quadratures
// for quadrature-based moment methods.
//
// The subpackages implement the individual layers:
//
//	moments/   — moment containers, realizability checks, correction and
//	             random generation of realizable sequences
//	inversion/ — univariate inversion: Wheeler (modified Chebyshev),
//	             product-difference, and their adaptive variants
//	eqmom/     — extended quadrature (kernel density reconstruction)
//	cqmom/     — conditional multivariate quadrature
//	config/    — textual configuration of an algorithm tree
//
// This root package ties them together: New builds a ready-to-use Method
// from a config.Config tree, resolving algorithm names and wiring child
// inverters for the multivariate case.
//
//	cfg, err := config.Load("qbmm.yaml")
//	...
//	m, err := quadmom.New(cfg)
//	...
//	q, err := m.Invert(moments.Set{1, 0, 1, 0, 3, 0})
//
// All inverters are pure and safe for concurrent use.
package quadmom
