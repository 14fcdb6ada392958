// Package combin provides elementary counting formulas: factorials,
// permutations, combinations and arrangements with repetition.  All results
// are exact uint64 values; arguments large enough to overflow (e.g. n > 20
// for Factorial) wrap silently, as these utilities target small classroom
// examples.
package combin

import (
	"fmt"

	"github.com/rluvaton/math-helper-scripts/pkg/util"
)

// Factorial computes n! (with 0! = 1).
func Factorial(n uint64) uint64 {
	result := uint64(1)
	//
	for i := uint64(2); i <= n; i++ {
		result *= i
	}
	//
	return result
}

// Permutations counts the orderings of n distinct items, i.e. n!.
func Permutations(n uint64) uint64 {
	return Factorial(n)
}

// PartialPermutations counts the ordered selections of k items out of n,
// i.e. n!/(n-k)!.  Fails when k exceeds n.
func PartialPermutations(n uint64, k uint64) (uint64, error) {
	if k > n {
		return 0, fmt.Errorf("%w: cannot select %d items out of %d", util.ErrInvalidArgument, k, n)
	}
	//
	result := uint64(1)
	for i := n - k + 1; i <= n; i++ {
		result *= i
	}
	//
	return result, nil
}

// Combinations counts the unordered selections of k items out of n, i.e. the
// binomial coefficient n choose k.  Fails when k exceeds n.
func Combinations(n uint64, k uint64) (uint64, error) {
	if k > n {
		return 0, fmt.Errorf("%w: cannot choose %d items out of %d", util.ErrInvalidArgument, k, n)
	}
	// Use the smaller of k and n-k.
	if k > n-k {
		k = n - k
	}
	// Multiply and divide incrementally; the intermediate result after step i
	// is (n-k+i) choose i, hence always divisible by i.
	result := uint64(1)
	for i := uint64(1); i <= k; i++ {
		result = result * (n - k + i) / i
	}
	//
	return result, nil
}

// ArrangementsWithRepetition counts the sequences of length k over n symbols,
// i.e. n^k, by square-and-multiply.
func ArrangementsWithRepetition(n uint64, k uint64) uint64 {
	result := uint64(1)
	//
	for {
		if k&1 == 1 {
			result *= n
		}
		// div 2
		k >>= 1
		//
		if k == 0 {
			break
		}
		//
		n *= n
	}

	return result
}
