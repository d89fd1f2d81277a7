package kmp

import "github.com/katalvlaran/lvsearch/core"

// LPS is the KMP failure function of a pattern: LPS[i] is the length of the
// longest proper prefix of pattern[0..i] that is also a suffix of it.
//
// Invariants: len(LPS) == len(pattern), LPS[0] == 0, LPS[i] <= i.
type LPS []int

// BuildLPS computes the LPS table in a single left-to-right pass.
//
// Algorithm:
//  1. length = 0 tracks the currently matched prefix, i starts at 1.
//  2. pattern[i] == pattern[length] → extend: lps[i] = ++length, i++.
//  3. mismatch with length > 0 → fall back to lps[length-1], keep i.
//  4. mismatch with length == 0 → lps[i] = 0, i++.
//
// Each step either advances i or strictly shrinks length, so the loop runs
// at most 2·M times.
func BuildLPS[E core.Symbol](pattern []E) LPS {
	lps := make(LPS, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length != 0:
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}

	return lps
}
