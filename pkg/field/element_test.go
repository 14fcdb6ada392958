package field_test

import (
	"testing"

	"github.com/rluvaton/math-helper-scripts/pkg/field"
	"github.com/rluvaton/math-helper-scripts/pkg/util"
	"github.com/rluvaton/math-helper-scripts/pkg/zn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mod(t *testing.T, n int) field.Field {
	t.Helper()

	ring, err := zn.FromCount(n)
	require.NoError(t, err)

	return ring.AsField()
}

func TestNewElement_RequiresField(t *testing.T) {
	_, err := field.NewElement(nil, 1)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	// zero is a perfectly valid starting value
	element, err := field.NewElement(mod(t, 5), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, element.Value())
}

// 2 / 3 = 2 * 2 = 4, then 4 - 1 = 4 + 4 = 3 (mod 5).
func TestChaining_Scenario(t *testing.T) {
	element, err := field.NewElement(mod(t, 5), 2)
	require.NoError(t, err)

	element.Divide(3).Subtract(1)

	require.NoError(t, element.Err())
	assert.Equal(t, 3, element.Value())
}

func TestSum_MatchesField(t *testing.T) {
	f := mod(t, 7)

	element, err := field.NewElement(f, 2)
	require.NoError(t, err)

	element.Sum(3).Sum(4)

	require.NoError(t, element.Err())
	assert.Equal(t, f.Sum(f.Sum(2, 3), 4), element.Value())
}

func TestSubtract_AddsAdditiveInverse(t *testing.T) {
	element, err := field.NewElement(mod(t, 5), 1)
	require.NoError(t, err)

	// 1 - 3 = 1 + 2 = 3 (mod 5)
	element.Subtract(3)

	require.NoError(t, element.Err())
	assert.Equal(t, 3, element.Value())
}

func TestMultiply(t *testing.T) {
	element, err := field.NewElement(mod(t, 7), 5)
	require.NoError(t, err)

	assert.Equal(t, 4, element.Multiply(5).Value())
}

func TestDivide_ByAdditiveIdentity(t *testing.T) {
	element, err := field.NewElement(mod(t, 5), 2)
	require.NoError(t, err)

	element.Divide(0)

	assert.ErrorIs(t, element.Err(), util.ErrInvalidArgument)
	// the failed call left the value untouched
	assert.Equal(t, 2, element.Value())
}

func TestDivide_NoInverse(t *testing.T) {
	element, err := field.NewElement(mod(t, 12), 5)
	require.NoError(t, err)

	// gcd(4, 12) != 1, hence no inverse to multiply by
	element.Divide(4)

	assert.Error(t, element.Err())
	assert.Equal(t, 5, element.Value())
}

func TestStickyError(t *testing.T) {
	element, err := field.NewElement(mod(t, 5), 2)
	require.NoError(t, err)

	element.Divide(0)
	first := element.Err()
	require.Error(t, first)

	// later operations are no-ops and keep the first failure
	element.Sum(1).Multiply(2).SetToMultiplicativeIdentity()

	assert.Equal(t, 2, element.Value())
	assert.Equal(t, first, element.Err())
}

func TestSetIdentities(t *testing.T) {
	element, err := field.NewElement(mod(t, 5), 3)
	require.NoError(t, err)

	assert.Equal(t, 0, element.SetToAdditiveIdentity().Value())
	assert.Equal(t, 1, element.SetToMultiplicativeIdentity().Value())
}

func TestClone_Independent(t *testing.T) {
	f := mod(t, 5)

	element, err := field.NewElement(f, 2)
	require.NoError(t, err)

	clone := element.Clone()
	clone.Sum(1)

	assert.Equal(t, 2, element.Value())
	assert.Equal(t, 3, clone.Value())
	// the field reference is shared, not copied
	assert.Equal(t, element.Field(), clone.Field())
}
