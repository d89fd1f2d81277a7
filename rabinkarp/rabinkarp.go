package rabinkarp

import "github.com/katalvlaran/lvsearch/core"

// Result describes one Rabin–Karp scan.
type Result struct {
	// Index is the first verified match, or core.NotFound.
	Index int

	// Windows is the number of text windows whose hash was compared.
	Windows int

	// HashHits counts windows whose hash equalled the pattern hash.
	HashHits int

	// Collisions counts hash hits rejected by direct comparison.
	// HashHits - Collisions is 1 when a match was found, 0 otherwise.
	Collisions int
}

// Index returns the offset of the first occurrence of pattern in text, or
// core.NotFound, using DefaultBase and DefaultModulus.
func Index[E core.Symbol](text, pattern []E) int {
	return scan(defaultHasher, text, pattern).Index
}

// IndexString is Index over the bytes of text and pattern; the result is
// a byte offset.
func IndexString(text, pattern string) int {
	return Index([]byte(text), []byte(pattern))
}

// Scan searches like Index but with configurable hash parameters and
// returns the collision statistics of the run.
//
// Errors:
//   - ErrOptionViolation if an option is out of range.
func Scan[E core.Symbol](text, pattern []E, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{Index: core.NotFound}, o.err
	}
	h, err := NewHasher(o.Base, o.Modulus)
	if err != nil {
		return Result{Index: core.NotFound}, err
	}

	return scan(h, text, pattern), nil
}

// scan visits windows i = 0..n-m. A window whose hash equals the pattern
// hash is verified before it is accepted.
func scan[E core.Symbol](h *Hasher, text, pattern []E) Result {
	n, m := len(text), len(pattern)
	if idx, done := core.Window(n, m); done {
		return Result{Index: idx}
	}

	var res Result
	target := Hash(h, pattern)
	cur := Hash(h, text[:m])
	mult := h.Multiplier(m)
	for i := 0; i <= n-m; i++ {
		res.Windows++
		if cur == target {
			res.HashHits++
			if core.Equal(text[i:i+m], pattern) {
				res.Index = i

				return res
			}
			res.Collisions++
		}
		if i < n-m {
			cur = Roll(h, cur, text[i], text[i+m], mult)
		}
	}
	res.Index = core.NotFound

	return res
}
