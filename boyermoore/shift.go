package boyermoore

import "github.com/katalvlaran/lvsearch/core"

// ShiftTable maps a text symbol to how far the search window may advance
// when that symbol sits under the pattern's last position.
//
// Every recorded shift lies in [1, M]; symbols absent from the table shift
// by M, the pattern length.
type ShiftTable[E core.Symbol] struct {
	shifts map[E]int
	length int
}

// BuildShiftTable computes the bad-character table of pattern.
//
//  1. For pos = 0..M-2: shifts[pattern[pos]] = M - pos - 1
//     (a later occurrence overwrites an earlier one, so the smallest
//     distance to the end wins).
//  2. The last symbol gets shift M only if step 1 did not record it.
func BuildShiftTable[E core.Symbol](pattern []E) ShiftTable[E] {
	m := len(pattern)
	t := ShiftTable[E]{shifts: make(map[E]int, m), length: m}
	if m == 0 {
		return t
	}
	for pos, c := range pattern[:m-1] {
		t.shifts[c] = m - pos - 1
	}
	if _, ok := t.shifts[pattern[m-1]]; !ok {
		t.shifts[pattern[m-1]] = m
	}

	return t
}

// Skip returns the shift for c, defaulting to the pattern length.
func (t ShiftTable[E]) Skip(c E) int {
	if s, ok := t.shifts[c]; ok {
		return s
	}

	return t.length
}

// Lookup returns the recorded shift for c and whether c occurs in the pattern.
func (t ShiftTable[E]) Lookup(c E) (int, bool) {
	s, ok := t.shifts[c]

	return s, ok
}

// Len returns the pattern length, which is also the default shift.
func (t ShiftTable[E]) Len() int { return t.length }

// Size returns the number of distinct symbols recorded.
func (t ShiftTable[E]) Size() int { return len(t.shifts) }
