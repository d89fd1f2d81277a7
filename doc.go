// Package lvsearch is a small, pure-Go collection of classic search
// algorithms, written to be read, compared and timed side by side.
//
// 🚀 What is inside?
//
//	• Exact substring search: Knuth–Morris–Pratt, Boyer–Moore, Rabin–Karp
//	• Ordered search: binary search with probe count and insertion point
//	• A benchmark harness and CLI that time the finders on real text
//
// ✨ Why lvsearch?
//
//   - Generic – every finder works on []byte, []rune or any core.Symbol slice
//   - Pure functions – no shared state, safe to call from many goroutines
//   - One result shape – core.NotFound (-1) or an index; bsearch.Result for ordered search
//   - Pure Go – no cgo
//
// Everything is organized in subpackages:
//
//	core/       — Symbol constraint, NotFound, IndexFunc, degenerate-input rules
//	kmp/        — Knuth–Morris–Pratt + LPS table
//	boyermoore/ — Boyer–Moore (bad-character rule) + shift table
//	rabinkarp/  — Rabin–Karp rolling hash, tunable base and modulus
//	bsearch/    — binary search over cmp.Ordered slices
//	bench/      — Measure, Runner, YAML suites, slog logger
//	cmd/lvsearch — command-line front end
//
// Quick example:
//
//	kmp.IndexString("ababcabcabababd", "ababd")      // 10
//	boyermoore.IndexString("abczabcabcz", "abcabcz") // 4
//	rabinkarp.IndexString("hello world", "world")    // 6
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch
