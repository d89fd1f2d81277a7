package core

// NotFound is returned by every substring finder when the pattern does not
// occur in the text.
const NotFound = -1

// Symbol is the set of element types a text or pattern may consist of.
//
//   - ~byte   — raw UTF-8 code units (what IndexString helpers use)
//   - ~uint16 — UTF-16 code units
//   - ~rune   — Unicode code points
//   - ~uint32 — any other 32-bit alphabet
//
// Each Symbol converts losslessly to uint64, which the rolling hash relies on.
type Symbol interface {
	~byte | ~uint16 | ~rune | ~uint32
}

// IndexFunc reports the offset of the first occurrence of pattern in text,
// or NotFound. Implementations must be pure: no shared mutable state and
// no side effects, so that callers may time or run them concurrently.
type IndexFunc[E Symbol] func(text, pattern []E) int

// Window resolves the inputs for which no search is needed.
//
//	m == 0      → (0, true)         empty pattern matches at the start
//	m > n       → (NotFound, true)  pattern cannot fit
//	otherwise   → (0, false)        caller must search
//
// n is the text length and m the pattern length.
func Window(n, m int) (idx int, done bool) {
	switch {
	case m == 0:
		return 0, true
	case m > n:
		return NotFound, true
	default:
		return 0, false
	}
}

// Equal reports whether a and b hold the same symbols.
func Equal[E Symbol](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
