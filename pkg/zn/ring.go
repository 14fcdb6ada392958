// Package zn provides the ring of integers modulo n over an arbitrary finite
// set of representatives, along with its cached addition and multiplication
// tables and inverse lookups.
//
// A note on the tables: following the original behaviour of this tool, table
// cells are computed by applying the ring operation to the *positions* i and j
// rather than to the representative values found there.  For the canonical
// rings built by FromCount the two views coincide; for anything else (e.g.
// FromRange(3, 9)) the tables describe position arithmetic, while Sum and
// Multiply operate on raw values.
package zn

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/rluvaton/math-helper-scripts/pkg/field"
	"github.com/rluvaton/math-helper-scripts/pkg/util"
)

// Ring represents Z_n for a finite set of integer representatives.  Both
// operation tables are built once at construction and never mutated
// afterwards; readers get copies.
type Ring struct {
	// Distinct representatives, sorted ascending.  Defines both the element
	// universe and the index space of the tables.
	representatives []int
	// Cardinality of the ring, and the modulus of both operations.
	size int
	// size x size symmetric operation tables.
	additionTable       [][]int
	multiplicationTable [][]int
	// Bit i set iff the representative at position i has a multiplicative
	// inverse.
	units *bitset.BitSet
}

// New constructs the ring over the given representatives.  Fails when the
// collection is missing or empty, or contains duplicates.  Representatives
// are sorted ascending before use.
func New(representatives []int) (*Ring, error) {
	if len(representatives) == 0 {
		return nil, fmt.Errorf("%w: at least one representative required", util.ErrInvalidArgument)
	}
	//
	reps := slices.Clone(representatives)
	slices.Sort(reps)
	// Reject duplicates, which would silently change the modulus.
	for i := 1; i < len(reps); i++ {
		if reps[i] == reps[i-1] {
			return nil, fmt.Errorf("%w: duplicate representative %d", util.ErrInvalidArgument, reps[i])
		}
	}
	//
	r := &Ring{representatives: reps, size: len(reps)}
	r.additionTable = r.buildTable(r.Sum)
	r.multiplicationTable = r.buildTable(r.Multiply)
	r.units = r.buildUnits()
	// Done
	return r, nil
}

// FromRange constructs the ring over the inclusive integer range [from, to].
func FromRange(from int, to int) (*Ring, error) {
	if from > to {
		return nil, fmt.Errorf("%w: empty range [%d, %d]", util.ErrInvalidArgument, from, to)
	}
	//
	reps := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		reps = append(reps, i)
	}
	//
	return New(reps)
}

// FromCount constructs the canonical ring Z_n over [0, n-1].
func FromCount(n int) (*Ring, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: ring size must be positive, got %d", util.ErrInvalidArgument, n)
	}
	//
	return FromRange(0, n-1)
}

// Size returns the cardinality of this ring.
func (r *Ring) Size() int {
	return r.size
}

// Representatives returns a copy of the (sorted) representative set.
func (r *Ring) Representatives() []int {
	return slices.Clone(r.representatives)
}

// Sum returns (a + b) mod size.  Operands are raw values, not positions.
func (r *Ring) Sum(a int, b int) int {
	return (a + b) % r.size
}

// Multiply returns (a * b) mod size.  Operands are raw values, not positions.
func (r *Ring) Multiply(a int, b int) int {
	return (a * b) % r.size
}

// AdditionTable returns a deep copy of the cached addition table.  Cell [i][j]
// holds (i + j) mod size (see the package note on position arithmetic).
func (r *Ring) AdditionTable() [][]int {
	return copyTable(r.additionTable)
}

// MultiplicationTable returns a deep copy of the cached multiplication table.
// Cell [i][j] holds (i * j) mod size (see the package note on position
// arithmetic).
func (r *Ring) MultiplicationTable() [][]int {
	return copyTable(r.multiplicationTable)
}

// FindInverse returns the multiplicative inverse of x, i.e. the first y with
// x * y = 1 in the cached table, or an empty option when x is not a unit.
// Fails when x is zero, or not a representative of this ring.
func (r *Ring) FindInverse(x int) (util.Option[int], error) {
	if x == 0 {
		return util.None[int](), fmt.Errorf(
			"%w: the additive identity has no multiplicative inverse", util.ErrInvalidArgument)
	}
	//
	i, err := r.indexOf(x)
	if err != nil {
		return util.None[int](), err
	}
	//
	return r.scanRow(r.multiplicationTable[i], 1), nil
}

// FindAdditiveInverse returns the additive inverse of x, i.e. the first y
// with x + y = 0 in the cached table, or an empty option when none exists.
// Fails when x is not a representative of this ring.
func (r *Ring) FindAdditiveInverse(x int) (util.Option[int], error) {
	i, err := r.indexOf(x)
	if err != nil {
		return util.None[int](), err
	}
	//
	return r.scanRow(r.additionTable[i], 0), nil
}

// FindAllInverses pairs every nonzero representative with its multiplicative
// inverse (or an empty option when it has none).
func (r *Ring) FindAllInverses() []util.Pair[int, util.Option[int]] {
	pairs := make([]util.Pair[int, util.Option[int]], 0, r.size)
	//
	for i, x := range r.representatives {
		if x == 0 {
			continue
		}
		//
		pairs = append(pairs, util.NewPair(x, r.scanRow(r.multiplicationTable[i], 1)))
	}
	//
	return pairs
}

// FindAllAdditiveInverses pairs every representative with its additive
// inverse (or an empty option when it has none).
func (r *Ring) FindAllAdditiveInverses() []util.Pair[int, util.Option[int]] {
	pairs := make([]util.Pair[int, util.Option[int]], r.size)
	//
	for i, x := range r.representatives {
		pairs[i] = util.NewPair(x, r.scanRow(r.additionTable[i], 0))
	}
	//
	return pairs
}

// VariableSummary bundles everything known about one representative: its
// additive inverse and, for nonzero representatives, its multiplicative
// inverse.
type VariableSummary struct {
	// The representative itself.
	Variable int
	// Additive inverse, if any.
	AdditiveInverse util.Option[int]
	// Multiplicative inverse, if any.  Always empty for the zero
	// representative.
	Inverse util.Option[int]
}

// Summary reports the inverses of every representative.  This is raw data;
// rendering it is a presentation concern.
func (r *Ring) Summary() []VariableSummary {
	summaries := make([]VariableSummary, r.size)
	//
	for i, x := range r.representatives {
		summaries[i] = VariableSummary{
			Variable:        x,
			AdditiveInverse: r.scanRow(r.additionTable[i], 0),
		}
		//
		if x != 0 {
			summaries[i].Inverse = r.scanRow(r.multiplicationTable[i], 1)
		}
	}
	//
	return summaries
}

// Units returns the set of table positions whose representative has a
// multiplicative inverse.  The returned set is a copy.
func (r *Ring) Units() *bitset.BitSet {
	return r.units.Clone()
}

// AsField returns a field view bound to this ring, through which elements can
// be created and chained arithmetic performed.  The view carries no state of
// its own.
func (r *Ring) AsField() field.Field {
	return ringField{r}
}

// indexOf locates a representative within the sorted representative set.
func (r *Ring) indexOf(x int) (int, error) {
	i, ok := slices.BinarySearch(r.representatives, x)
	if !ok {
		return 0, fmt.Errorf("%w: %d is not a representative of this ring", util.ErrInvalidArgument, x)
	}
	//
	return i, nil
}

// scanRow finds the first column of a table row holding the given identity,
// returning the representative at that column.
func (r *Ring) scanRow(row []int, identity int) util.Option[int] {
	for j, v := range row {
		if v == identity {
			return util.Some(r.representatives[j])
		}
	}
	//
	return util.None[int]()
}

// buildTable constructs one size x size operation table.  The operation is
// applied to positions (not representative values) and assigned symmetrically,
// exploiting commutativity.
func (r *Ring) buildTable(op func(int, int) int) [][]int {
	table := make([][]int, r.size)
	for i := range table {
		table[i] = make([]int, r.size)
	}
	//
	for i := 0; i < r.size; i++ {
		for j := i; j < r.size; j++ {
			v := op(i, j)
			table[i][j] = v
			table[j][i] = v
		}
	}
	//
	return table
}

// buildUnits scans the multiplication table for rows containing the
// multiplicative identity.
func (r *Ring) buildUnits() *bitset.BitSet {
	units := bitset.New(uint(r.size))
	//
	for i, row := range r.multiplicationTable {
		if slices.Contains(row, 1) {
			units.Set(uint(i))
		}
	}
	//
	return units
}

func copyTable(table [][]int) [][]int {
	rows := make([][]int, len(table))
	for i, row := range table {
		rows[i] = slices.Clone(row)
	}
	//
	return rows
}
