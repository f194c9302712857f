package inversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puetzmi/quadmom/moments"
)

// Moments of the standard normal distribution, m_k = (k-1)!! for even k.
var gaussMoments = moments.Set{1, 0, 1, 0, 3, 0, 15, 0}

func TestRecurrenceTwoPoint(t *testing.T) {
	// Two points at 1 and 3 with weights 1/2 each.
	alpha, beta, err := Recurrence(moments.Set{1, 2, 5, 14}, 2, 1e-8)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2}, alpha, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 1}, beta, 1e-12)
}

func TestRecurrenceHermite(t *testing.T) {
	// The standard normal generates the Hermite recurrence:
	// alpha_k = 0, beta_k = k.
	alpha, beta, err := Recurrence(gaussMoments, 4, 1e-8)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0}, alpha, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 1, 2, 3}, beta, 1e-12)
}

func TestRecurrenceErrors(t *testing.T) {
	t.Run("too few moments", func(t *testing.T) {
		_, _, err := Recurrence(moments.Set{1, 2}, 2, 1e-8)
		assert.ErrorIs(t, err, ErrTooFewMoments)
	})
	t.Run("zero mass", func(t *testing.T) {
		_, _, err := Recurrence(moments.Set{0, 1, 2, 3}, 2, 1e-8)
		assert.ErrorIs(t, err, moments.ErrUnrealizable)
	})
	t.Run("negative beta", func(t *testing.T) {
		// m_2 < m_1^2 / m_0 makes beta_1 negative.
		alpha, beta, err := Recurrence(moments.Set{1, 2, 1, 0}, 2, 1e-8)
		assert.ErrorIs(t, err, moments.ErrUnrealizable)
		// Raw coefficients stay available for repair.
		assert.NotEmpty(t, alpha)
		assert.NotEmpty(t, beta)
	})
	t.Run("degenerate beta", func(t *testing.T) {
		// Point mass at 2: beta_1 = 0.
		_, _, err := Recurrence(moments.Set{1, 2, 4, 8}, 2, 1e-8)
		assert.ErrorIs(t, err, ErrDegenerateMoments)
	})
}

func TestCoeffsToMomentsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mom  moments.Set
	}{
		{name: "two point", mom: moments.Set{1, 2, 5, 14}},
		{name: "gaussian", mom: gaussMoments},
		{name: "asymmetric", mom: moments.Set{2, 1, 3, 4, 12, 20}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := len(tc.mom) / 2
			alpha, beta, err := Recurrence(tc.mom, n, 1e-8)
			require.NoError(t, err)

			out, err := CoeffsToMoments(alpha, beta, len(tc.mom))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.mom, out, 1e-9)
		})
	}
}

func TestCoeffsToMomentsShortAlpha(t *testing.T) {
	// One alpha fewer than beta, as produced for odd sequence lengths.
	out, err := CoeffsToMoments([]float64{0}, []float64{1, 1}, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, moments.Set{1, 0, 1}, out, 1e-12)
}

func TestCoeffsToMomentsErrors(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		_, err := CoeffsToMoments([]float64{0}, []float64{1, 1, 1}, 3)
		assert.ErrorIs(t, err, ErrBadCoeffs)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := CoeffsToMoments(nil, nil, 1)
		assert.ErrorIs(t, err, ErrBadCoeffs)
	})
	t.Run("non-positive beta0", func(t *testing.T) {
		_, err := CoeffsToMoments([]float64{0, 0}, []float64{0, 1}, 4)
		assert.ErrorIs(t, err, ErrBadCoeffs)
	})
	t.Run("negative beta", func(t *testing.T) {
		_, err := CoeffsToMoments([]float64{0, 0}, []float64{1, -1}, 4)
		assert.ErrorIs(t, err, ErrBadCoeffs)
	})
	t.Run("too many moments requested", func(t *testing.T) {
		_, err := CoeffsToMoments([]float64{0, 0}, []float64{1, 1}, 5)
		assert.ErrorIs(t, err, ErrTooFewMoments)
	})
}
