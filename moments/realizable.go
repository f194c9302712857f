package moments

import (
	"gonum.org/v1/gonum/mat"
)

// Check reports whether mom is a realizable Hamburger moment sequence.
//
// A sequence m_0..m_{N-1} is realizable when every leading Hankel matrix
// H_s = [m_{i+j}], i,j = 0..s-1, built from the available even orders is
// positive definite. Positive definiteness is tested through a Cholesky
// factorization, which is the numerically meaningful criterion: it fails
// exactly when some non-negative-measure constraint is violated to within
// floating-point resolution.
//
// On success Check returns (true, -1). On failure it returns false together
// with the order of the highest moment participating in the first violated
// Hankel matrix, i.e. 2(s-1) for the first non-positive-definite H_s. A
// violation at order 0 means m_0 <= 0.
func Check(mom Set) (bool, int) {
	if len(mom) == 0 {
		return false, 0
	}
	if mom[0] <= 0 {
		return false, 0
	}
	// Largest Hankel size representable by len(mom) moments.
	smax := (len(mom) + 1) / 2
	var chol mat.Cholesky
	for s := 2; s <= smax; s++ {
		h := mat.NewSymDense(s, nil)
		for i := 0; i < s; i++ {
			for j := i; j < s; j++ {
				h.SetSym(i, j, mom[i+j])
			}
		}
		if !chol.Factorize(h) {
			return false, 2 * (s - 1)
		}
	}
	return true, -1
}
