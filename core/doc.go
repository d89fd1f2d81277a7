// Package core holds the vocabulary shared by every substring finder in
// lvsearch: the Symbol constraint over which texts and patterns are
// built, the NotFound sentinel, and the IndexFunc signature that lets the
// benchmark harness treat KMP, Boyer-Moore and Rabin-Karp uniformly.
//
// 🚀 What lives here?
//
//	• Symbol     — the element types a text may be made of ([]byte, []rune, []uint16 …)
//	• NotFound   — the single "no match" result (-1), never an error
//	• IndexFunc  — func(text, pattern []E) int, the shape of every finder
//	• Window     — resolves the degenerate cases every finder shares
//
// Degenerate inputs:
//
//   - Empty pattern: matches at index 0, even in an empty text
//     (same convention as strings.Index).
//   - Pattern longer than text: NotFound.
//
// The package has no state and performs no I/O; everything here is safe
// for concurrent use.
package core
