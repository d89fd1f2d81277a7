package bsearch

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrUnsorted is returned by SearchChecked when the input is not ascending.
var ErrUnsorted = errors.New("bsearch: sequence is not sorted in ascending order")

// Result is the outcome of a search.
type Result struct {
	// Iterations is the number of midpoint probes performed.
	Iterations int

	// Index is the position of target when Found, otherwise its
	// insertion point in [0, len(seq)].
	Index int

	// Found reports whether seq[Index] equals target under cmp.Compare,
	// where NaN equals NaN and sorts before every other value.
	Found bool
}

// String renders the result for logs and the CLI.
func (r Result) String() string {
	if r.Found {
		return fmt.Sprintf("found at index %d after %d iterations", r.Index, r.Iterations)
	}

	return fmt.Sprintf("not present; insertion point %d after %d iterations", r.Index, r.Iterations)
}

// Search looks for target in seq, which must be sorted ascending.
// Unsorted input yields an unspecified (but in-range) Result.
//
// Algorithm:
//  1. lo, hi = 0, len(seq)-1.
//  2. While lo <= hi: probe mid = lo + (hi-lo)/2 and compare with cmp.Compare.
//     seq[mid] < target → lo = mid+1; seq[mid] > target → hi = mid-1;
//     equal → return immediately.
//  3. On exhaustion lo is the insertion point.
//
// Ordering follows cmp.Compare, the same total order IsSorted checks, so a
// NaN target is never reported equal to a number.
func Search[T cmp.Ordered](seq []T, target T) Result {
	lo, hi := 0, len(seq)-1
	iterations := 0
	for lo <= hi {
		mid := lo + (hi-lo)/2
		iterations++
		switch c := cmp.Compare(seq[mid], target); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return Result{Iterations: iterations, Index: mid, Found: true}
		}
	}

	return Result{Iterations: iterations, Index: lo}
}

// SearchChecked verifies that seq is ascending before searching.
//
// Errors:
//   - ErrUnsorted, wrapped with the first offending index.
func SearchChecked[T cmp.Ordered](seq []T, target T) (Result, error) {
	if i := firstUnsorted(seq); i >= 0 {
		return Result{}, fmt.Errorf("%w: seq[%d] > seq[%d]", ErrUnsorted, i-1, i)
	}

	return Search(seq, target), nil
}

// IsSorted reports whether seq is in ascending order.
func IsSorted[T cmp.Ordered](seq []T) bool {
	return firstUnsorted(seq) < 0
}

// firstUnsorted returns the first i with seq[i-1] > seq[i], or -1.
func firstUnsorted[T cmp.Ordered](seq []T) int {
	for i := 1; i < len(seq); i++ {
		if cmp.Less(seq[i], seq[i-1]) {
			return i
		}
	}

	return -1
}
