package bench

import (
	"time"

	"github.com/katalvlaran/lvsearch/core"
)

// Measure invokes fn(text, pattern) exactly once and returns its result
// together with the wall-clock time it took.
func Measure[E core.Symbol](fn core.IndexFunc[E], text, pattern []E) (int, time.Duration) {
	start := time.Now()
	idx := fn(text, pattern)

	return idx, time.Since(start)
}

// measureWith is Measure against an injectable clock.
func measureWith[E core.Symbol](now func() time.Time, fn core.IndexFunc[E], text, pattern []E) (int, time.Duration) {
	start := now()
	idx := fn(text, pattern)

	return idx, now().Sub(start)
}
