package inversion

// Options holds the numeric tolerances shared by the univariate inverters.
//
//   - Rmin bounds the recurrence coefficients and weights away from zero.
//     For the plain inverters a beta_k below Rmin fails with
//     ErrDegenerateMoments; the adaptive inverters additionally require the
//     weight ratio min(w)/max(w) to stay above Rmin and otherwise reduce
//     the node count.
//   - Eabs is the node-distance criterion of the adaptive inverters: the
//     smallest pairwise node distance relative to the largest must exceed
//     Eabs for a node count to be accepted.
//
// Tolerances are carried per inverter instance, never as process-wide
// state, so that concurrent inversions stay independent.
type Options struct {
	Rmin float64
	Eabs float64
}

// DefaultOptions returns the documented defaults, Rmin = Eabs = 1e-8.
func DefaultOptions() Options {
	return Options{Rmin: 1e-8, Eabs: 1e-8}
}

func (o *Options) resolve() Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Rmin <= 0 {
		out.Rmin = DefaultOptions().Rmin
	}
	if out.Eabs <= 0 {
		out.Eabs = DefaultOptions().Eabs
	}
	return out
}
