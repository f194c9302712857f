package moments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puetzmi/quadmom/inversion"
	"github.com/puetzmi/quadmom/moments"
)

func TestRandomHamburgerGenerate(t *testing.T) {
	const nmom = 8
	gamma, delta := moments.DefaultHamburgerParams(nmom)
	gen, err := moments.NewRandomHamburger(nmom, gamma, delta, 42)
	require.NoError(t, err)

	inv := inversion.NewWheeler(nil)
	for i := 0; i < 50; i++ {
		mom, err := gen.Generate(inv)
		require.NoError(t, err)
		require.Len(t, mom, nmom)

		assert.InDelta(t, 1.0, mom[0], 1e-12, "beta_0 = 1 fixes unit mass")
		ok, order := moments.Check(mom)
		assert.True(t, ok, "sample %d unrealizable at order %d: %v", i, order, mom)
	}
}

func TestRandomHamburgerOddLength(t *testing.T) {
	const nmom = 7
	gamma, delta := moments.DefaultHamburgerParams(nmom)
	gen, err := moments.NewRandomHamburger(nmom, gamma, delta, 1)
	require.NoError(t, err)

	mom, err := gen.Generate(inversion.NewWheeler(nil))
	require.NoError(t, err)
	require.Len(t, mom, nmom)
	ok, _ := moments.Check(mom)
	assert.True(t, ok)
}

func TestRandomHamburgerDeterminism(t *testing.T) {
	const nmom = 6
	gamma, delta := moments.DefaultHamburgerParams(nmom)
	inv := inversion.NewWheeler(nil)

	a, err := moments.NewRandomHamburger(nmom, gamma, delta, 7)
	require.NoError(t, err)
	b, err := moments.NewRandomHamburger(nmom, gamma, delta, 7)
	require.NoError(t, err)

	ma, err := a.Generate(inv)
	require.NoError(t, err)
	mb, err := b.Generate(inv)
	require.NoError(t, err)
	assert.Equal(t, ma, mb)
}

func TestNewRandomHamburgerBadParams(t *testing.T) {
	gamma, delta := moments.DefaultHamburgerParams(6)

	_, err := moments.NewRandomHamburger(1, nil, nil, 0)
	assert.ErrorIs(t, err, moments.ErrBadParam)

	_, err = moments.NewRandomHamburger(6, gamma[:1], delta, 0)
	assert.ErrorIs(t, err, moments.ErrBadParam)

	_, err = moments.NewRandomHamburger(6, gamma, delta[:3], 0)
	assert.ErrorIs(t, err, moments.ErrBadParam)

	badGamma := append([]float64(nil), gamma...)
	badGamma[0] = -4 // violates gamma[k] > -2(n-k-1)
	_, err = moments.NewRandomHamburger(6, badGamma, delta, 0)
	assert.ErrorIs(t, err, moments.ErrBadParam)

	badDelta := append([]float64(nil), delta...)
	badDelta[2] = 0
	_, err = moments.NewRandomHamburger(6, gamma, badDelta, 0)
	assert.ErrorIs(t, err, moments.ErrBadParam)
}
