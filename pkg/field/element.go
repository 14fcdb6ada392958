package field

import (
	"fmt"

	"github.com/rluvaton/math-helper-scripts/pkg/util"
)

// Element wraps a single field value and supports chained arithmetic on it,
// with every mutating operation returning the receiver:
//
//	e.Subtract(1).Divide(3).Multiply(2)
//
// Operations validate before mutating, so a failed call leaves the value
// untouched.  The first failure (e.g. dividing by an element with no
// multiplicative inverse) is recorded on the element; subsequent operations
// become no-ops and Err reports it.
type Element struct {
	value int
	field Field
	err   error
}

// NewElement wraps an initial value in a given field.  Fails if no field is
// provided.
func NewElement(field Field, value int) (*Element, error) {
	if field == nil {
		return nil, fmt.Errorf("%w: element requires a field", util.ErrInvalidArgument)
	}
	//
	return &Element{value: value, field: field}, nil
}

// Value returns the current value of this element.
func (e *Element) Value() int {
	return e.value
}

// Err returns the first error recorded by a failed operation, if any.
func (e *Element) Err() error {
	return e.err
}

// Field returns the field this element does arithmetic in.
func (e *Element) Field() Field {
	return e.field
}

// SetToAdditiveIdentity resets this element to 0.
func (e *Element) SetToAdditiveIdentity() *Element {
	if e.err == nil {
		e.value = e.field.AdditiveIdentity()
	}
	//
	return e
}

// SetToMultiplicativeIdentity resets this element to 1.
func (e *Element) SetToMultiplicativeIdentity() *Element {
	if e.err == nil {
		e.value = e.field.MultiplicativeIdentity()
	}
	//
	return e
}

// Sum adds x to this element.
func (e *Element) Sum(x int) *Element {
	if e.err == nil {
		e.value = e.field.Sum(e.value, x)
	}
	//
	return e
}

// Subtract takes x away from this element, defined as addition of the
// additive inverse of x.  Fails if x has no additive inverse in the field
// (which cannot happen in a proper field).
func (e *Element) Subtract(x int) *Element {
	if e.err != nil {
		return e
	}
	//
	inv, err := e.field.AdditiveInverseOf(x)
	//
	switch {
	case err != nil:
		e.err = err
	case inv.IsEmpty():
		e.err = fmt.Errorf("%d has no additive inverse", x)
	default:
		e.value = e.field.Sum(e.value, inv.Unwrap())
	}
	//
	return e
}

// Multiply multiplies this element by x.
func (e *Element) Multiply(x int) *Element {
	if e.err == nil {
		e.value = e.field.Multiply(e.value, x)
	}
	//
	return e
}

// Divide divides this element by x, defined as multiplication by the
// multiplicative inverse of x.  Fails if x is the additive identity, or if x
// has no multiplicative inverse (e.g. x shares a factor with a composite
// modulus).
func (e *Element) Divide(x int) *Element {
	if e.err != nil {
		return e
	}
	//
	if x == e.field.AdditiveIdentity() {
		e.err = fmt.Errorf("%w: division by the additive identity", util.ErrInvalidArgument)
		return e
	}
	//
	inv, err := e.field.InverseOf(x)
	//
	switch {
	case err != nil:
		e.err = err
	case inv.IsEmpty():
		e.err = fmt.Errorf("%d has no multiplicative inverse", x)
	default:
		e.value = e.field.Multiply(e.value, inv.Unwrap())
	}
	//
	return e
}

// Clone returns an independent element holding the same value (and error
// state).  The field reference is shared, not copied, since fields are
// stateless behaviour bundles.
func (e *Element) Clone() *Element {
	return &Element{value: e.value, field: e.field, err: e.err}
}
