// Package bsearch implements binary search over an ascending slice that
// reports how many probes it took and, on a miss, where the target would
// be inserted.
//
// One result shape covers both outcomes:
//
//	Result{Found: true,  Index: i, Iterations: k}  seq[i] == target
//	Result{Found: false, Index: p, Iterations: k}  p = insertion point
//
// The insertion point is the smallest index whose element is >= target
// (len(seq) when every element is smaller), the same convention as
// sort.Search and slices.BinarySearch. Inserting target at p keeps the
// slice sorted.
//
// Iterations counts midpoint probes, so it never exceeds
// floor(log2(len(seq))) + 1.
//
// ⚙️ Usage:
//
//	seq := []float64{2.2, 2.5, 3, 3.9, 4.7, 11}
//	r := bsearch.Search(seq, 2.5)  // {Iterations: 3, Index: 1, Found: true}
//	r  = bsearch.Search(seq, 2.3)  // {Iterations: 3, Index: 1, Found: false}
package bsearch
