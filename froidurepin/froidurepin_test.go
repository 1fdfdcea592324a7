package froidurepin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semigroups/element"
)

func newS3(t *testing.T) *FroidurePin[element.Transformation, element.TransformationOps] {
	t.Helper()
	fp := New[element.Transformation](element.TransformationOps{})
	require.NoError(t, fp.AddGenerator(element.Transformation{1, 2, 0})) // 3-cycle
	require.NoError(t, fp.AddGenerator(element.Transformation{1, 0, 2})) // transposition

	return fp
}

func TestFroidurePinEnumeratesSymmetricGroupS3(t *testing.T) {
	fp := newS3(t)
	size, err := fp.Size()
	require.NoError(t, err)
	assert.Equal(t, 6, size)
	assert.Equal(t, Finite, fp.IsFinite())
}

func TestFroidurePinFindsIdentityAndOneIdempotent(t *testing.T) {
	fp := newS3(t)
	_, err := fp.Size()
	require.NoError(t, err)
	idx, ok := fp.IsMonoid()
	require.True(t, ok)
	id, err := fp.At(idx)
	require.NoError(t, err)
	assert.Equal(t, element.Transformation{0, 1, 2}, id)

	n, err := fp.NumberOfIdempotents()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFroidurePinFactorisationRoundTrips(t *testing.T) {
	fp := newS3(t)
	_, err := fp.Size()
	require.NoError(t, err)

	for i := 0; i < fp.CurrentSize(); i++ {
		word, err := fp.Factorisation(i)
		require.NoError(t, err)
		got, err := fp.WordToElement(word)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestFroidurePinPositionAndContains(t *testing.T) {
	fp := newS3(t)
	ok, err := fp.Contains(element.Transformation{2, 0, 1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fp.Contains(element.Transformation{0, 0, 0})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFroidurePinCayleyGraphsAgreeWithProduct(t *testing.T) {
	fp := newS3(t)
	_, err := fp.Size()
	require.NoError(t, err)
	left, err := fp.LeftCayleyGraph()
	require.NoError(t, err)
	right := fp.RightCayleyGraph()

	ops := element.TransformationOps{}
	for i := 0; i < fp.CurrentSize(); i++ {
		for j := 0; j < fp.NumberOfGenerators(); j++ {
			x, _ := fp.At(i)
			g, _ := fp.At(fp.generators[j])
			var y element.Transformation
			ops.Product(&y, &x, &g, 0)
			want, ok := fp.CurrentPosition(y)
			require.True(t, ok)
			assert.Equal(t, want, right[i][j])

			var z element.Transformation
			ops.Product(&z, &g, &x, 0)
			want, ok = fp.CurrentPosition(z)
			require.True(t, ok)
			assert.Equal(t, want, left[i][j])
		}
	}
}

func TestFroidurePinAddGeneratorRejectsIncompatibleDegree(t *testing.T) {
	fp := newS3(t)
	err := fp.AddGenerator(element.Transformation{0, 1, 2, 3})
	assert.ErrorIs(t, err, ErrIncompatibleDegree)
}

func TestFroidurePinAddGeneratorRejectsAfterRun(t *testing.T) {
	fp := newS3(t)
	_, err := fp.Size()
	require.NoError(t, err)
	err = fp.AddGenerator(element.Transformation{0, 1, 2})
	assert.ErrorIs(t, err, ErrImmutable)
}

func TestFroidurePinPresentationHasOneRulePerDiscoveredRule(t *testing.T) {
	fp := newS3(t)
	pres, err := fp.Presentation()
	require.NoError(t, err)
	assert.Equal(t, len(fp.CurrentRules()), pres.NumberOfRules())
}

func TestFroidurePinDuplicateGeneratorReusesElement(t *testing.T) {
	fp := New[element.Transformation](element.TransformationOps{})
	require.NoError(t, fp.AddGenerator(element.Transformation{1, 2, 0}))
	require.NoError(t, fp.AddGenerator(element.Transformation{1, 2, 0})) // duplicate
	size, err := fp.Size()
	require.NoError(t, err)
	assert.Equal(t, 3, size) // a 3-cycle's cyclic subsemigroup is the order-3 group it generates

	assert.Equal(t, 2, fp.NumberOfGenerators())
}

// TestFroidurePinEnumeratesDegree8TransformationSemigroup exercises a
// larger, classic benchmark generating set: 5 transformations of degree 8
// generating a semigroup of 7776 elements with 537 idempotents.
func TestFroidurePinEnumeratesDegree8TransformationSemigroup(t *testing.T) {
	fp := New[element.Transformation](element.TransformationOps{})
	gens := []element.Transformation{
		{1, 7, 2, 6, 0, 4, 1, 5},
		{2, 4, 6, 1, 4, 5, 2, 7},
		{3, 0, 7, 2, 4, 6, 2, 4},
		{3, 2, 3, 4, 5, 3, 0, 1},
		{4, 3, 7, 7, 4, 5, 0, 4},
	}
	for _, g := range gens {
		require.NoError(t, fp.AddGenerator(g))
	}

	size, err := fp.Size()
	require.NoError(t, err)
	assert.Equal(t, 7776, size)
	assert.Equal(t, Finite, fp.IsFinite())

	n, err := fp.NumberOfIdempotents()
	require.NoError(t, err)
	assert.Equal(t, 537, n)

	assert.Equal(t, 2459, len(fp.CurrentRules()))
}
