// Package inversion implements univariate moment inversion: the mapping
// from a finite moment sequence m_0..m_{2n-1} to an n-node Gaussian
// quadrature (nodes and weights) that reproduces the input moments.
//
// The numerical foundation is the three-term recurrence of the monic
// orthogonal polynomials associated with the moment sequence. Two
// algorithms compute the recurrence coefficients:
//
//   - Wheeler: the modified Chebyshev recursion over a sigma table.
//     Numerically stable for the moment counts used in practice, unlike
//     direct moment-matrix inversion.
//   - ProductDifference: Gordon's product-difference algorithm via
//     continued-fraction coefficients. Slightly cheaper for very small
//     moment sets.
//
// From the coefficients, the symmetric tridiagonal Jacobi matrix with
// diagonal alpha and off-diagonal sqrt(beta) is assembled and its
// eigendecomposition solved (gonum). Eigenvalues are the quadrature nodes,
// returned in ascending order; the weight of node i is m_0 times the
// squared first component of the i-th normalized eigenvector.
//
// WheelerAdaptive and ProductDifferenceAdaptive add the adaptive
// node-count reduction of Marchisio and Fox: when a moment set is nearly
// degenerate (weight ratio below Rmin, relative node distance below Eabs,
// or a non-positive beta), the number of nodes is reduced until the
// quadrature is well conditioned. This turns many would-be failures on
// noisy transported moments into valid lower-order quadratures.
//
// All inverters are pure: no state is kept between calls.
package inversion
