package moments

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		mom     Set
		wantErr error
	}{
		{name: "valid", mom: Set{1, 0, 1}, wantErr: nil},
		{name: "empty", mom: Set{}, wantErr: ErrEmptySet},
		{name: "nan entry", mom: Set{1, math.NaN(), 1}, wantErr: ErrNotFinite},
		{name: "inf entry", mom: Set{1, 0, math.Inf(1)}, wantErr: ErrNotFinite},
		{name: "zero mass", mom: Set{0, 1, 2}, wantErr: ErrNonPositiveMass},
		{name: "negative mass", mom: Set{-1, 1, 2}, wantErr: ErrNonPositiveMass},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mom.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSetCopy(t *testing.T) {
	orig := Set{1, 2, 3}
	cp := orig.Copy()
	cp[1] = 42
	assert.Equal(t, Set{1, 2, 3}, orig)
	assert.Equal(t, Set{1, 42, 3}, cp)
}

func TestNewNDSet(t *testing.T) {
	_, err := NewNDSet()
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewNDSet(3, 0)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	s, err := NewNDSet(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumDims())
	assert.Equal(t, []int{2, 3}, s.Dims())
}

func TestNDSetIndexing(t *testing.T) {
	s, err := NewNDSet(2, 3)
	require.NoError(t, err)

	// Row-major, last index fastest.
	v := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			s.SetAt(v, i, j)
			v++
		}
	}
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, s.Flatten())
	assert.Equal(t, 4.0, s.At(1, 1))
	assert.Equal(t, 0.0, s.Total())

	assert.Panics(t, func() { s.At(1) })
	assert.Panics(t, func() { s.At(1, 3) })
	assert.Panics(t, func() { s.At(-1, 0) })
}

func TestNDSetMarginal(t *testing.T) {
	s, err := NewNDSetFromFlat([]float64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, Set{1, 4}, s.Marginal(0))
	assert.Equal(t, Set{1, 2, 3}, s.Marginal(1))
	assert.Panics(t, func() { s.Marginal(2) })
}

func TestNDSetSubTensor(t *testing.T) {
	s, err := NewNDSetFromFlat([]float64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)
	require.NoError(t, err)

	sub, err := s.SubTensor(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, sub.Dims())
	assert.Equal(t, []float64{4, 5, 6}, sub.Flatten())

	_, err = s.SubTensor(2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	one, err := FromSet(Set{1, 2})
	require.NoError(t, err)
	_, err = one.SubTensor(0)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewNDSetFromFlat(t *testing.T) {
	_, err := NewNDSetFromFlat([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNDSetValidate(t *testing.T) {
	s, err := NewNDSetFromFlat([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.NoError(t, s.Validate())

	s.SetAt(math.NaN(), 1, 0)
	assert.ErrorIs(t, s.Validate(), ErrNotFinite)

	s.SetAt(1, 1, 0)
	s.SetAt(0, 0, 0)
	assert.ErrorIs(t, s.Validate(), ErrNonPositiveMass)
}

func TestFromSet(t *testing.T) {
	s, err := FromSet(Set{1, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, 1, s.NumDims())
	assert.Equal(t, Set{1, 2, 5}, s.Marginal(0))

	_, err = FromSet(nil)
	assert.ErrorIs(t, err, ErrEmptySet)
}
