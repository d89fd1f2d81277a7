package boyermoore

import "github.com/katalvlaran/lvsearch/core"

// Index returns the offset of the first occurrence of pattern in text,
// or core.NotFound.
func Index[E core.Symbol](text, pattern []E) int {
	if idx, done := core.Window(len(text), len(pattern)); done {
		return idx
	}

	return search(text, pattern, BuildShiftTable(pattern))
}

// IndexString is Index over the bytes of text and pattern; the result is
// a byte offset.
func IndexString(text, pattern string) int {
	return Index([]byte(text), []byte(pattern))
}

// Matcher is a pattern with a precomputed shift table. It is read-only
// after Compile and safe for concurrent use.
type Matcher[E core.Symbol] struct {
	pattern []E
	table   ShiftTable[E]
}

// Compile copies pattern and builds its shift table.
func Compile[E core.Symbol](pattern []E) *Matcher[E] {
	p := make([]E, len(pattern))
	copy(p, pattern)

	return &Matcher[E]{pattern: p, table: BuildShiftTable(p)}
}

// Index returns the first occurrence of the compiled pattern in text.
func (m *Matcher[E]) Index(text []E) int {
	if idx, done := core.Window(len(text), len(m.pattern)); done {
		return idx
	}

	return search(text, m.pattern, m.table)
}

// Len returns the pattern length.
func (m *Matcher[E]) Len() int { return len(m.pattern) }

// Table returns the compiled shift table.
func (m *Matcher[E]) Table() ShiftTable[E] { return m.table }

// search slides the window start i over [0, n-m], comparing right to left.
func search[E core.Symbol](text, pattern []E, table ShiftTable[E]) int {
	n, m := len(text), len(pattern)
	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return i
		}
		i += table.Skip(text[i+m-1])
	}

	return core.NotFound
}
