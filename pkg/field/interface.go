package field

import "github.com/rluvaton/math-helper-scripts/pkg/util"

// A Field bundles the operations needed to do arithmetic over some finite
// structure: both ring operations, both identities and both inverse lookups.
// Anything satisfying this operation set can back an Element; it does not have
// to be a mathematically proper field (no axioms are verified).
type Field interface {
	// Sum a+b within the field.
	Sum(a, b int) int
	// Multiply a*b within the field.
	Multiply(a, b int) int
	// AdditiveIdentity returns the element 0, satisfying x + 0 = x.
	AdditiveIdentity() int
	// MultiplicativeIdentity returns the element 1, satisfying x * 1 = x.
	MultiplicativeIdentity() int
	// InverseOf returns y such that x * y = 1, or an empty option when x has
	// no multiplicative inverse.  Fails for x = 0, or when x is not an
	// element of the field.
	InverseOf(x int) (util.Option[int], error)
	// AdditiveInverseOf returns y such that x + y = 0, or an empty option
	// when x has no additive inverse.  Fails when x is not an element of the
	// field.
	AdditiveInverseOf(x int) (util.Option[int], error)
}
