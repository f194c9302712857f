package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flag is a boolean accepting 0/1 as well as true/false, matching the
// flag convention of the dictionary form.
type Flag bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	switch strings.TrimSpace(node.Value) {
	case "0", "false", "no":
		*f = false
	case "1", "true", "yes":
		*f = true
	default:
		return fmt.Errorf("%w: flag value %q", ErrInvalidConfig, node.Value)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting 0/1.
func (f Flag) MarshalYAML() (interface{}, error) {
	if f {
		return 1, nil
	}
	return 0, nil
}

// Setup carries the type-specific parameters of one algorithm node.
// Zero values mean "use the algorithm default".
type Setup struct {
	// InvType selects the univariate recurrence algorithm
	// (wheeler, wheeler_adaptive, pd, pd_adaptive).
	InvType string `yaml:"inv_type,omitempty"`
	// Adaptive selects the adaptive variant of the inversion algorithm,
	// which reduces the node count until the quadrature is well
	// conditioned.
	Adaptive Flag `yaml:"adaptive,omitempty"`
	// Correct retries a failed inversion after projecting the input onto
	// a nearby realizable moment sequence.
	Correct Flag `yaml:"correct,omitempty"`
	// Rmin is the recurrence-coefficient and weight-ratio floor.
	Rmin float64 `yaml:"rmin,omitempty"`
	// Eabs is the absolute node-distance tolerance.
	Eabs float64 `yaml:"eabs,omitempty"`
	// NNodes truncates the input to the moments needed for this many
	// nodes. Zero uses every supplied moment.
	NNodes int `yaml:"n_nodes,omitempty"`
	// KernelType selects the EQMOM kernel (gauss, laplace).
	KernelType string `yaml:"kernel_type,omitempty"`
	// NAb bounds the EQMOM kernel-width search iterations.
	NAb int `yaml:"n_ab,omitempty"`
	// Atol is the EQMOM convergence tolerance.
	Atol float64 `yaml:"atol,omitempty"`
	// AllowPartial tolerates failed CQMOM branches.
	AllowPartial Flag `yaml:"allow_partial,omitempty"`
	// Config1D lists the per-dimension child configurations of a CQMOM
	// node, in conditioning order.
	Config1D []Config `yaml:"config1d,omitempty"`
}

// Config is one node of the recursive configuration tree.
type Config struct {
	// Type is the qbmm_type tag (qmom, eqmom, cqmom).
	Type string `yaml:"qbmm_type"`
	// Setup holds the type-specific parameters.
	Setup Setup `yaml:"qbmm_setup"`
}

// Validate checks the structural invariants of the tree: a non-empty
// type tag everywhere, non-negative tolerances and iteration counts, and
// for cqmom nodes a non-empty config1d whose children are themselves
// one-dimensional (nested cqmom is not meaningful per dimension).
// Algorithm-name resolution happens later, in the dispatcher.
func (c Config) Validate() error {
	return c.validate("")
}

func (c Config) validate(path string) error {
	at := func(key string) string {
		if path == "" {
			return key
		}
		return path + "." + key
	}
	if strings.TrimSpace(c.Type) == "" {
		return fmt.Errorf("%w: missing %s", ErrInvalidConfig, at("qbmm_type"))
	}
	s := c.Setup
	if s.Rmin < 0 || s.Eabs < 0 || s.Atol < 0 {
		return fmt.Errorf("%w: negative tolerance in %s", ErrInvalidConfig, at("qbmm_setup"))
	}
	if s.NAb < 0 || s.NNodes < 0 {
		return fmt.Errorf("%w: negative count in %s", ErrInvalidConfig, at("qbmm_setup"))
	}
	isCQMOM := strings.EqualFold(strings.TrimSpace(c.Type), "cqmom")
	if isCQMOM && len(s.Config1D) == 0 {
		return fmt.Errorf("%w: cqmom requires %s", ErrInvalidConfig, at("qbmm_setup.config1d"))
	}
	if !isCQMOM && len(s.Config1D) > 0 {
		return fmt.Errorf("%w: %s is only valid for cqmom", ErrInvalidConfig, at("qbmm_setup.config1d"))
	}
	for i, child := range s.Config1D {
		key := at(fmt.Sprintf("qbmm_setup.config1d[%d]", i))
		if strings.EqualFold(strings.TrimSpace(child.Type), "cqmom") {
			return fmt.Errorf("%w: nested cqmom at %s", ErrInvalidConfig, key)
		}
		if err := child.validate(key); err != nil {
			return err
		}
	}
	return nil
}
