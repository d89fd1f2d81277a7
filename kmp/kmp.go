package kmp

import "github.com/katalvlaran/lvsearch/core"

// Index returns the offset of the first occurrence of pattern in text,
// or core.NotFound.
//
// Example:
//
//	kmp.Index([]byte("hello world"), []byte("world")) // 6
func Index[E core.Symbol](text, pattern []E) int {
	if idx, done := core.Window(len(text), len(pattern)); done {
		return idx
	}

	return search(text, pattern, BuildLPS(pattern))
}

// IndexString is Index over the bytes of text and pattern. The returned
// offset is a byte offset, like strings.Index.
func IndexString(text, pattern string) int {
	return Index([]byte(text), []byte(pattern))
}

// Matcher is a pattern whose LPS table has been computed once. It is
// read-only after Compile and safe for concurrent use.
type Matcher[E core.Symbol] struct {
	pattern []E
	lps     LPS
}

// Compile copies pattern and precomputes its LPS table.
func Compile[E core.Symbol](pattern []E) *Matcher[E] {
	p := make([]E, len(pattern))
	copy(p, pattern)

	return &Matcher[E]{pattern: p, lps: BuildLPS(p)}
}

// Index returns the first occurrence of the compiled pattern in text.
func (m *Matcher[E]) Index(text []E) int {
	if idx, done := core.Window(len(text), len(m.pattern)); done {
		return idx
	}

	return search(text, m.pattern, m.lps)
}

// Len returns the pattern length.
func (m *Matcher[E]) Len() int { return len(m.pattern) }

// LPS returns a copy of the compiled failure table.
func (m *Matcher[E]) LPS() LPS {
	out := make(LPS, len(m.lps))
	copy(out, m.lps)

	return out
}

// search runs the matching phase. i walks the text and never moves back;
// j is the number of pattern symbols currently matched.
func search[E core.Symbol](text, pattern []E, lps LPS) int {
	n, m := len(text), len(pattern)
	i, j := 0, 0
	for i < n {
		switch {
		case pattern[j] == text[i]:
			i++
			j++
		case j != 0:
			j = lps[j-1]
		default:
			i++
		}
		if j == m {
			return i - m
		}
	}

	return core.NotFound
}
