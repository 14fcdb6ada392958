package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/rluvaton/math-helper-scripts/pkg/util"
)

// bbModulus is the BabyBear prime 2³¹ - 2²⁷ + 1.
var bbModulus = babybear.Modulus().Int64()

// BabyBear is a Field over the BabyBear prime, backed by gnark-crypto.  It is
// a proper prime field: every nonzero element has a multiplicative inverse.
// Unlike a table-backed ring it never enumerates its elements, so it also
// serves as a stand-in for structures too large to tabulate.
type BabyBear struct{}

// Sum a+b modulo the BabyBear prime.
func (BabyBear) Sum(a, b int) int {
	var x, y babybear.Element
	//
	x.Add(bbElement(&x, a), bbElement(&y, b))
	//
	return bbInt(&x)
}

// Multiply a*b modulo the BabyBear prime.
func (BabyBear) Multiply(a, b int) int {
	var x, y babybear.Element
	//
	x.Mul(bbElement(&x, a), bbElement(&y, b))
	//
	return bbInt(&x)
}

// AdditiveIdentity returns 0.
func (BabyBear) AdditiveIdentity() int {
	return 0
}

// MultiplicativeIdentity returns 1.
func (BabyBear) MultiplicativeIdentity() int {
	return 1
}

// InverseOf returns the multiplicative inverse of x.  Fails for x = 0 (or any
// x congruent to it), since zero has no multiplicative inverse.
func (BabyBear) InverseOf(x int) (util.Option[int], error) {
	var e babybear.Element
	//
	bbElement(&e, x)
	//
	if e.IsZero() {
		return util.None[int](), fmt.Errorf(
			"%w: the additive identity has no multiplicative inverse", util.ErrInvalidArgument)
	}
	//
	e.Inverse(&e)
	//
	return util.Some(bbInt(&e)), nil
}

// AdditiveInverseOf returns the additive inverse of x, which always exists.
func (BabyBear) AdditiveInverseOf(x int) (util.Option[int], error) {
	var e babybear.Element
	//
	e.Neg(bbElement(&e, x))
	//
	return util.Some(bbInt(&e)), nil
}

// bbElement reduces x into the field and stores it in e.
func bbElement(e *babybear.Element, x int) *babybear.Element {
	v := int64(x) % bbModulus
	if v < 0 {
		v += bbModulus
	}
	//
	return e.SetUint64(uint64(v))
}

// bbInt converts an element back to its numerical value.
func bbInt(e *babybear.Element) int {
	var v big.Int
	//
	e.BigInt(&v)
	//
	return int(v.Int64())
}
