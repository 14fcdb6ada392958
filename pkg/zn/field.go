package zn

import (
	"github.com/rluvaton/math-helper-scripts/pkg/field"
	"github.com/rluvaton/math-helper-scripts/pkg/util"
)

// ringField adapts a Ring to the field.Field operation set.  It holds no
// state beyond the ring reference, so any number of views over the same ring
// are interchangeable.
type ringField struct {
	ring *Ring
}

var _ field.Field = ringField{}

// Sum a+b within the underlying ring.
func (f ringField) Sum(a int, b int) int {
	return f.ring.Sum(a, b)
}

// Multiply a*b within the underlying ring.
func (f ringField) Multiply(a int, b int) int {
	return f.ring.Multiply(a, b)
}

// AdditiveIdentity returns 0.
func (f ringField) AdditiveIdentity() int {
	return 0
}

// MultiplicativeIdentity returns 1.
func (f ringField) MultiplicativeIdentity() int {
	return 1
}

// InverseOf delegates to the ring's multiplicative inverse lookup.
func (f ringField) InverseOf(x int) (util.Option[int], error) {
	return f.ring.FindInverse(x)
}

// AdditiveInverseOf delegates to the ring's additive inverse lookup.
func (f ringField) AdditiveInverseOf(x int) (util.Option[int], error) {
	return f.ring.FindAdditiveInverse(x)
}
