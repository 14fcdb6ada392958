package zn

import (
	"testing"

	"github.com/rluvaton/math-helper-scripts/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = New([]int{})
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]int{0, 1, 2, 1})
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestNew_SortsRepresentatives(t *testing.T) {
	ring, err := New([]int{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, ring.Representatives())
	assert.Equal(t, 3, ring.Size())
}

func TestFromRange(t *testing.T) {
	ring, err := FromRange(3, 9)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9}, ring.Representatives())

	_, err = FromRange(5, 3)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestFromCount(t *testing.T) {
	ring, err := FromCount(4)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, ring.Representatives())

	_, err = FromCount(0)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestSumMultiply_Mod7(t *testing.T) {
	ring, err := FromCount(7)
	require.NoError(t, err)

	assert.Equal(t, 3, ring.Sum(5, 5))
	assert.Equal(t, 4, ring.Multiply(5, 5))
}

func TestTables_Symmetric(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8, 13} {
		ring, err := FromCount(n)
		require.NoError(t, err)

		for _, table := range [][][]int{ring.AdditionTable(), ring.MultiplicationTable()} {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					assert.Equal(t, table[j][i], table[i][j], "n=%d i=%d j=%d", n, i, j)
				}
			}
		}
	}
}

func TestTables_CanonicalArithmetic(t *testing.T) {
	ring, err := FromCount(6)
	require.NoError(t, err)

	add := ring.AdditionTable()
	mul := ring.MultiplicationTable()

	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			assert.Equal(t, (i+j)%6, add[i][j])
			assert.Equal(t, (i*j)%6, mul[i][j])
		}
	}
}

// Tables are computed over positions, not representative values, so a
// non-canonical representative set yields position arithmetic.
func TestTables_PositionBased(t *testing.T) {
	ring, err := FromRange(3, 9)
	require.NoError(t, err)

	add := ring.AdditionTable()

	// positions 1 and 1, not values 4 and 4
	assert.Equal(t, 2, add[1][1])
	// ...whereas Sum operates on raw values
	assert.Equal(t, 1, ring.Sum(4, 4))
}

func TestTables_DeepCopied(t *testing.T) {
	ring, err := FromCount(3)
	require.NoError(t, err)

	table := ring.AdditionTable()
	table[0][0] = 42

	assert.Equal(t, 0, ring.AdditionTable()[0][0])
}

func TestFindInverse(t *testing.T) {
	ring, err := FromCount(5)
	require.NoError(t, err)

	inv, err := ring.FindInverse(3)
	require.NoError(t, err)
	assert.Equal(t, 2, inv.Unwrap())

	// zero is rejected outright
	_, err = ring.FindInverse(0)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	// unknown representative
	_, err = ring.FindInverse(99)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestFindInverse_NoInverse(t *testing.T) {
	ring, err := FromCount(12)
	require.NoError(t, err)

	// gcd(4, 12) != 1, hence no inverse
	inv, err := ring.FindInverse(4)
	require.NoError(t, err)
	assert.True(t, inv.IsEmpty())
}

func TestFindAdditiveInverse(t *testing.T) {
	ring, err := FromCount(5)
	require.NoError(t, err)

	inv, err := ring.FindAdditiveInverse(2)
	require.NoError(t, err)
	assert.Equal(t, 3, inv.Unwrap())

	// zero is its own additive inverse, and a legitimate argument here
	inv, err = ring.FindAdditiveInverse(0)
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Unwrap())

	_, err = ring.FindAdditiveInverse(99)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestFindAllInverses(t *testing.T) {
	ring, err := FromCount(12)
	require.NoError(t, err)

	pairs := ring.FindAllInverses()
	require.Len(t, pairs, 11)

	units := make([]int, 0, 4)

	for _, pair := range pairs {
		if inv, ok := pair.Right.Get(); ok {
			units = append(units, pair.Left)
			assert.Equal(t, 1, ring.Multiply(pair.Left, inv))
		}
	}

	assert.Equal(t, []int{1, 5, 7, 11}, units)
}

func TestFindAllAdditiveInverses(t *testing.T) {
	ring, err := FromCount(9)
	require.NoError(t, err)

	pairs := ring.FindAllAdditiveInverses()
	require.Len(t, pairs, 9)

	for _, pair := range pairs {
		require.True(t, pair.Right.HasValue())
		assert.Equal(t, 0, ring.Sum(pair.Left, pair.Right.Unwrap()))
	}
}

func TestSummary(t *testing.T) {
	ring, err := FromCount(4)
	require.NoError(t, err)

	summary := ring.Summary()
	require.Len(t, summary, 4)

	// zero: additive inverse 0, no multiplicative inverse reported
	assert.Equal(t, 0, summary[0].Variable)
	assert.Equal(t, 0, summary[0].AdditiveInverse.Unwrap())
	assert.True(t, summary[0].Inverse.IsEmpty())
	// one: self-inverse both ways round
	assert.Equal(t, 3, summary[1].AdditiveInverse.Unwrap())
	assert.Equal(t, 1, summary[1].Inverse.Unwrap())
	// two shares a factor with four
	assert.True(t, summary[2].Inverse.IsEmpty())
	// three: 3*3 = 9 = 1 mod 4
	assert.Equal(t, 3, summary[3].Inverse.Unwrap())
}

func TestUnits(t *testing.T) {
	ring, err := FromCount(12)
	require.NoError(t, err)

	units := ring.Units()
	assert.Equal(t, uint(4), units.Count())

	for _, i := range []uint{1, 5, 7, 11} {
		assert.True(t, units.Test(i), "position %d", i)
	}

	// returned set is a copy
	units.Set(0)
	assert.False(t, ring.Units().Test(0))
}
