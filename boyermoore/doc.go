// Package boyermoore implements a simplified Boyer–Moore substring search
// that uses only the bad-character (last-character) shift rule, the
// variant usually credited to Horspool.
//
// 🚀 How it works
//
//	The pattern is aligned against the text and compared back to front.
//	On a mismatch the window jumps forward by the shift recorded for the
//	text symbol sitting under the pattern's last position. Symbols that
//	never occur in the pattern let the window jump its full length.
//
// ✨ Key features:
//   - Sub-linear on typical text: long patterns skip many symbols at once
//   - Generic over core.Symbol with a map-backed ShiftTable
//   - Compile once, search many texts (Matcher)
//
// ⚠️ No good-suffix rule is applied, so the worst case is O(N·M)
// (e.g. text "aaaa…a", pattern "baaa"). Use package kmp when a linear
// bound matters.
//
// ⚙️ Usage:
//
//	idx := boyermoore.IndexString("abczabcabcz", "abcabcz") // 4
//
// Degenerate inputs follow core.Window: an empty pattern matches at 0,
// a pattern longer than the text is not found.
package boyermoore
