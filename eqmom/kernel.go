package eqmom

import (
	"fmt"
	"strings"
)

// Kernel is a symmetric smoothing kernel parameterized by a width sigma.
// Only the even central moments are needed by the moment transform; odd
// central moments of a symmetric kernel vanish.
type Kernel interface {
	// Name returns the registry name of the kernel.
	Name() string
	// CentralMoment returns the j-th central moment at width sigma.
	CentralMoment(j int, sigma float64) float64
}

// GaussKernel is the Gaussian kernel: central moments (j-1)!! sigma^j for
// even j, zero for odd j.
type GaussKernel struct{}

// Name implements Kernel.
func (GaussKernel) Name() string { return "gauss" }

// CentralMoment implements Kernel.
func (GaussKernel) CentralMoment(j int, sigma float64) float64 {
	if j%2 != 0 {
		return 0
	}
	m := 1.0
	for i := j - 1; i > 1; i -= 2 {
		m *= float64(i)
	}
	for i := 0; i < j; i++ {
		m *= sigma
	}
	return m
}

// LaplaceKernel is the symmetric Laplace kernel with scale sigma: central
// moments j! sigma^j for even j, zero for odd j.
type LaplaceKernel struct{}

// Name implements Kernel.
func (LaplaceKernel) Name() string { return "laplace" }

// CentralMoment implements Kernel.
func (LaplaceKernel) CentralMoment(j int, sigma float64) float64 {
	if j%2 != 0 {
		return 0
	}
	m := 1.0
	for i := 2; i <= j; i++ {
		m *= float64(i)
	}
	for i := 0; i < j; i++ {
		m *= sigma
	}
	return m
}

// KernelByName resolves a kernel registry name. The empty name defaults to
// the Gaussian kernel.
func KernelByName(name string) (Kernel, error) {
	switch strings.ToLower(name) {
	case "", "gauss", "gaussian":
		return GaussKernel{}, nil
	case "laplace":
		return LaplaceKernel{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
}
