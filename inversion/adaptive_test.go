package inversion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puetzmi/quadmom/moments"
)

func TestWheelerAdaptiveReducesNodeCount(t *testing.T) {
	// Exactly two support points (1 and 3, weights 1/2): six moments would
	// nominally give three nodes, but beta_2 vanishes and the inverter
	// falls back to the exact two-node quadrature.
	q, err := NewWheelerAdaptive(nil).Invert(moments.Set{1, 2, 5, 14, 41, 122})
	require.NoError(t, err)
	require.Equal(t, 2, q.Len())

	assert.InDelta(t, 1.0, q.Nodes[0], 1e-9)
	assert.InDelta(t, 3.0, q.Nodes[1], 1e-9)
	assert.InDelta(t, 0.5, q.Weights[0], 1e-9)
	assert.InDelta(t, 0.5, q.Weights[1], 1e-9)
}

func TestWheelerAdaptivePointMass(t *testing.T) {
	// A point mass at 2 always collapses to a single node.
	q, err := NewWheelerAdaptive(nil).Invert(moments.Set{1, 2, 4, 8})
	require.NoError(t, err)
	require.Equal(t, 1, q.Len())
	assert.InDelta(t, 2.0, q.Nodes[0], 1e-12)
	assert.InDelta(t, 1.0, q.Weights[0], 1e-12)
}

func TestWheelerAdaptiveKeepsFullNodeCount(t *testing.T) {
	q, err := NewWheelerAdaptive(nil).Invert(gaussMoments)
	require.NoError(t, err)
	assert.Equal(t, 4, q.Len())
	assert.InDeltaSlice(t, gaussMoments, q.Moments(len(gaussMoments)), 1e-9)
}

func TestWheelerAdaptiveWeightRatioCriterion(t *testing.T) {
	// A strict weight-ratio bound rejects the asymmetric two-node
	// quadrature of these moments (weights 0.999 and 0.001) and reduces
	// to one node at the mean.
	mom := twoPointMoments(t, []float64{0, 1}, []float64{0.999, 0.001}, 4)
	q, err := NewWheelerAdaptive(&Options{Rmin: 0.1, Eabs: 1e-8}).Invert(mom)
	require.NoError(t, err)
	require.Equal(t, 1, q.Len())
	assert.InDelta(t, 0.001, q.Nodes[0], 1e-12)
	assert.InDelta(t, 1.0, q.Weights[0], 1e-12)
}

func TestWheelerAdaptiveErrors(t *testing.T) {
	adaptive := NewWheelerAdaptive(nil)

	t.Run("too few moments", func(t *testing.T) {
		_, err := adaptive.Invert(moments.Set{1})
		assert.ErrorIs(t, err, ErrTooFewMoments)
	})
	t.Run("zero mass", func(t *testing.T) {
		_, err := adaptive.Invert(moments.Set{0, 1, 2, 3})
		assert.ErrorIs(t, err, moments.ErrUnrealizable)
	})
	t.Run("non-finite input", func(t *testing.T) {
		_, err := adaptive.Invert(moments.Set{1, 2, math.Inf(1), 3})
		assert.ErrorIs(t, err, moments.ErrUnrealizable)
	})
}

// twoPointMoments builds the first nmom raw moments of a discrete measure.
func twoPointMoments(t *testing.T, nodes, weights []float64, nmom int) moments.Set {
	t.Helper()
	require.Equal(t, len(nodes), len(weights))
	mom := make(moments.Set, nmom)
	for k := range mom {
		for i, x := range nodes {
			p := 1.0
			for j := 0; j < k; j++ {
				p *= x
			}
			mom[k] += weights[i] * p
		}
	}
	return mom
}
