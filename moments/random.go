package moments

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomHamburger generates random realizable Hamburger moment sequences of
// a fixed length. The sequences are produced by sampling independently
// distributed recurrence coefficients of orthogonal polynomials, normally
// distributed alphas and gamma-distributed betas, and transforming the
// coefficients back into moments. Sampling in coefficient space guarantees
// realizability of every generated sequence.
type RandomHamburger struct {
	nmom int
	n    int
	iodd int

	alphaRV []distuv.Normal
	betaRV  []distuv.Gamma
}

// NewRandomHamburger creates a generator for sequences of length nmom.
//
// gamma and delta parameterize the coefficient distributions:
//   - len(gamma) == n-1 with gamma[k] > -2(n-k-1), where n = (nmom+1)/2;
//     gamma shifts the shape of the beta (gamma-distributed) coefficients.
//   - len(delta) == 2n-1 with delta > 0; even entries set the alpha
//     variances to 1/(2 delta), odd entries are the beta rate parameters.
//
// seed makes the generator deterministic.
func NewRandomHamburger(nmom int, gamma, delta []float64, seed uint64) (*RandomHamburger, error) {
	if nmom < 2 {
		return nil, fmt.Errorf("%w: need at least two moments, got %d", ErrBadParam, nmom)
	}
	n := (nmom + 1) / 2
	iodd := nmom % 2
	if len(gamma) != n-1 {
		return nil, fmt.Errorf("%w: len(gamma) = %d, want %d", ErrBadParam, len(gamma), n-1)
	}
	for k, g := range gamma {
		if g <= float64(-2*(n-k-1)) {
			return nil, fmt.Errorf("%w: gamma[%d] = %g violates gamma[k] > -2(n-k-1)", ErrBadParam, k, g)
		}
	}
	if len(delta) != 2*n-1 {
		return nil, fmt.Errorf("%w: len(delta) = %d, want %d", ErrBadParam, len(delta), 2*n-1)
	}
	for k, d := range delta {
		if d <= 0 {
			return nil, fmt.Errorf("%w: delta[%d] = %g must be positive", ErrBadParam, k, d)
		}
	}

	src := rand.NewSource(seed)
	r := &RandomHamburger{nmom: nmom, n: n, iodd: iodd}
	for j := 0; j < n-iodd; j++ {
		r.alphaRV = append(r.alphaRV, distuv.Normal{
			Mu:    0,
			Sigma: math.Sqrt(0.5 / delta[2*j]),
			Src:   src,
		})
	}
	for j := 1; j < n; j++ {
		r.betaRV = append(r.betaRV, distuv.Gamma{
			Alpha: gamma[j-1] + float64(2*n-2*j),
			Beta:  delta[2*j-1],
			Src:   src,
		})
	}
	return r, nil
}

// DefaultHamburgerParams returns generator parameters that satisfy the
// constraints of NewRandomHamburger for any nmom: unit gamma and delta.
func DefaultHamburgerParams(nmom int) (gamma, delta []float64) {
	n := (nmom + 1) / 2
	gamma = make([]float64, n-1)
	delta = make([]float64, 2*n-1)
	for i := range gamma {
		gamma[i] = 1
	}
	for i := range delta {
		delta[i] = 1
	}
	return gamma, delta
}

// Coeffs samples a random set of recurrence coefficients. The returned beta
// starts with the conventional beta_0 = 1 (unit total mass).
func (r *RandomHamburger) Coeffs() (alpha, beta []float64) {
	alpha = make([]float64, len(r.alphaRV))
	for i := range r.alphaRV {
		alpha[i] = r.alphaRV[i].Rand()
	}
	beta = make([]float64, len(r.betaRV)+1)
	beta[0] = 1
	for i := range r.betaRV {
		beta[i+1] = r.betaRV[i].Rand()
	}
	return alpha, beta
}

// Generate samples one random Hamburger moment sequence of length nmom,
// using inv to transform the sampled recurrence coefficients into moments.
func (r *RandomHamburger) Generate(inv RecurrenceComputer) (Set, error) {
	alpha, beta := r.Coeffs()
	mom, err := inv.MomentsFromCoeffs(alpha, beta, r.nmom)
	if err != nil {
		return nil, err
	}
	return mom, nil
}
