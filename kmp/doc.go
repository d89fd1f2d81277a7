// Package kmp implements Knuth–Morris–Pratt exact substring search.
//
// 🚀 What is KMP?
//
//	KMP scans the text exactly once. When a mismatch happens after a
//	partial match, it does not move the text cursor back; instead it
//	consults the LPS ("longest proper prefix which is also a suffix")
//	table to learn how much of the pattern is already matched and resumes
//	from there.
//
// ✨ Key features:
//   - O(M) preprocessing (BuildLPS), O(N) matching in the worst case, no hashing
//   - Generic over core.Symbol: []byte, []rune, []uint16 …
//   - Compile once, search many texts (Matcher)
//   - First match only; core.NotFound (-1) when absent
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsearch/kmp"
//
//	idx := kmp.IndexString("ababcabcabababd", "ababd") // 10
//
//	m := kmp.Compile([]rune("алгоритм"))
//	pos := m.Index(text)
//
// Degenerate inputs follow core.Window: an empty pattern matches at 0,
// a pattern longer than the text is not found.
//
// Performance:
//
//   - Time:   O(N + M)
//   - Memory: O(M) for the LPS table
package kmp
