package quadmom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/puetzmi/quadmom/config"
	"github.com/puetzmi/quadmom/cqmom"
	"github.com/puetzmi/quadmom/eqmom"
	"github.com/puetzmi/quadmom/inversion"
	"github.com/puetzmi/quadmom/moments"
)

// Method is a configured moment-inversion algorithm. A Method is either
// univariate (qmom, eqmom) and answers Invert, or multivariate (cqmom)
// and answers InvertND. Methods are pure and safe for concurrent use.
type Method struct {
	name string
	oneD cqmom.OneD
	grid *cqmom.CQMOM
}

// Name returns the qbmm_type tag the method was built from.
func (m *Method) Name() string { return m.name }

// Univariate reports whether the method answers Invert.
func (m *Method) Univariate() bool { return m.oneD != nil }

// Invert computes the quadrature of a univariate moment sequence.
func (m *Method) Invert(mom moments.Set) (inversion.Quadrature, error) {
	if m.oneD == nil {
		return inversion.Quadrature{}, ErrNotUnivariate
	}
	return m.oneD.Invert(mom)
}

// InvertND computes the conditional quadrature of a multivariate moment
// tensor.
func (m *Method) InvertND(nd *moments.NDSet) (cqmom.Grid, error) {
	if m.grid == nil {
		return cqmom.Grid{}, ErrNotMultivariate
	}
	return m.grid.Invert(nd)
}

// New builds a Method from a validated configuration tree. Unrecognized
// qbmm_type, inv_type or kernel_type names fail with ErrUnknownAlgorithm;
// structural problems with config.ErrInvalidConfig.
func New(cfg config.Config) (*Method, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	name := canonical(cfg.Type)
	if name == "cqmom" {
		children := make([]cqmom.OneD, len(cfg.Setup.Config1D))
		for i, child := range cfg.Setup.Config1D {
			c, err := newOneD(child)
			if err != nil {
				return nil, fmt.Errorf("config1d[%d]: %w", i, err)
			}
			children[i] = c
		}
		g, err := cqmom.New(children, &cqmom.Options{
			AllowPartial: bool(cfg.Setup.AllowPartial),
		})
		if err != nil {
			return nil, err
		}
		return &Method{name: name, grid: g}, nil
	}
	inv, err := newOneD(cfg)
	if err != nil {
		return nil, err
	}
	return &Method{name: name, oneD: inv}, nil
}

func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// newOneD builds a univariate inverter for one configuration node.
func newOneD(cfg config.Config) (cqmom.OneD, error) {
	s := cfg.Setup
	switch canonical(cfg.Type) {
	case "qmom":
		inv, err := newRecurrenceInverter(s)
		if err != nil {
			return nil, err
		}
		var out cqmom.OneD = inv
		if s.Correct {
			out = correcting{inner: inv, floor: betaFloor(s)}
		}
		if s.NNodes > 0 {
			out = truncating{inner: out, nmom: 2 * s.NNodes}
		}
		return out, nil

	case "eqmom":
		kernel, err := eqmom.KernelByName(s.KernelType)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnknownAlgorithm, err)
		}
		inv, err := newRecurrenceInverter(s)
		if err != nil {
			return nil, err
		}
		var base eqmom.Base = inv
		if s.Correct {
			base = correcting{inner: inv, floor: betaFloor(s)}
		}
		e, err := eqmom.New(kernel, base, &eqmom.Options{NAb: s.NAb, Atol: s.Atol})
		if err != nil {
			return nil, err
		}
		var out cqmom.OneD = e
		if s.NNodes > 0 {
			out = truncating{inner: out, nmom: 2*s.NNodes + 1}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: qbmm_type %q", ErrUnknownAlgorithm, cfg.Type)
	}
}

// recurrenceInverter is the intersection of capabilities the dispatcher
// needs from a plain univariate algorithm.
type recurrenceInverter interface {
	cqmom.OneD
	moments.RecurrenceComputer
}

// newRecurrenceInverter resolves inv_type and the adaptive flag into one
// of the four recurrence-based algorithms. An empty inv_type means
// wheeler.
func newRecurrenceInverter(s config.Setup) (recurrenceInverter, error) {
	opts := &inversion.Options{Rmin: s.Rmin, Eabs: s.Eabs}
	name := canonical(s.InvType)
	adaptive := bool(s.Adaptive)
	switch name {
	case "", "wheeler":
		if adaptive {
			return inversion.NewWheelerAdaptive(opts), nil
		}
		return inversion.NewWheeler(opts), nil
	case "wheeler_adaptive":
		return inversion.NewWheelerAdaptive(opts), nil
	case "pd", "product_difference":
		if adaptive {
			return pdAdaptive{
				ProductDifferenceAdaptive: inversion.NewProductDifferenceAdaptive(opts),
				pd:                        inversion.NewProductDifference(opts),
			}, nil
		}
		return inversion.NewProductDifference(opts), nil
	case "pd_adaptive":
		return pdAdaptive{
			ProductDifferenceAdaptive: inversion.NewProductDifferenceAdaptive(opts),
			pd:                        inversion.NewProductDifference(opts),
		}, nil
	default:
		return nil, fmt.Errorf("%w: inv_type %q", ErrUnknownAlgorithm, s.InvType)
	}
}

// pdAdaptive pairs the adaptive PD inverter with the plain variant's
// coefficient mapping so it satisfies moments.RecurrenceComputer.
type pdAdaptive struct {
	*inversion.ProductDifferenceAdaptive
	pd *inversion.ProductDifference
}

func (p pdAdaptive) RecurrenceCoeffs(mom moments.Set) ([]float64, []float64, error) {
	return p.pd.RecurrenceCoeffs(mom)
}

func (p pdAdaptive) MomentsFromCoeffs(alpha, beta []float64, nmom int) (moments.Set, error) {
	return p.pd.MomentsFromCoeffs(alpha, beta, nmom)
}

// betaFloor is the clamp value of the correct setting. It must sit
// comfortably above the inverter's Rmin, or round-off in the rebuilt
// moments would trip the degeneracy check again.
func betaFloor(s config.Setup) float64 {
	rmin := s.Rmin
	if rmin <= 0 {
		rmin = inversion.DefaultOptions().Rmin
	}
	return 10 * rmin
}

// correcting retries a failed inversion after projecting the input onto a
// nearby realizable sequence. Structural failures (non-positive mass,
// non-finite moments) are not repairable and keep the original error.
type correcting struct {
	inner recurrenceInverter
	floor float64
}

func (c correcting) Invert(mom moments.Set) (inversion.Quadrature, error) {
	q, err := c.inner.Invert(mom)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, moments.ErrUnrealizable) && !errors.Is(err, inversion.ErrDegenerateMoments) {
		return q, err
	}
	fixed, cerr := moments.Correct(mom, c.inner, &moments.CorrectOptions{BetaFloor: c.floor})
	if cerr != nil {
		return inversion.Quadrature{}, err
	}
	return c.inner.Invert(fixed)
}

// truncating caps the number of moments handed to the wrapped inverter,
// implementing the n_nodes setting.
type truncating struct {
	inner cqmom.OneD
	nmom  int
}

func (t truncating) Invert(mom moments.Set) (inversion.Quadrature, error) {
	if len(mom) > t.nmom {
		mom = mom[:t.nmom]
	}
	return t.inner.Invert(mom)
}
