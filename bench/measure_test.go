package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bench"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/kmp"
)

// TestMeasure returns the finder's result and a non-negative duration,
// calling the finder exactly once.
func TestMeasure(t *testing.T) {
	calls := 0
	counting := func(text, pattern []byte) int {
		calls++

		return kmp.Index(text, pattern)
	}

	idx, elapsed := bench.Measure[byte](counting, []byte("ababcabcabababd"), []byte("ababd"))
	assert.Equal(t, 10, idx)
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
	assert.Equal(t, 1, calls)
}

// TestAlgorithms_Agree runs every registered finder on shared scenarios.
func TestAlgorithms_Agree(t *testing.T) {
	scenarios := []struct {
		text, pattern string
		want          int
	}{
		{"ababcabcabababd", "ababd", 10},
		{"abczabcabcz", "abcabcz", 4},
		{"hello world", "world", 6},
		{"hello world", "xyz", core.NotFound},
		{"пошук бази даних", "баз", 6},
		{"abc", "", 0},
		{"ab", "abc", core.NotFound},
	}
	for _, a := range bench.Algorithms[rune]() {
		for _, sc := range scenarios {
			got := a.Find([]rune(sc.text), []rune(sc.pattern))
			assert.Equal(t, sc.want, got, "%s(%q, %q)", a.Name, sc.text, sc.pattern)
		}
	}
}

// TestLookup resolves known names and rejects unknown ones.
func TestLookup(t *testing.T) {
	assert.Equal(t, []string{bench.RabinKarp, bench.BoyerMoore, bench.KMP}, bench.Names())
	for _, name := range bench.Names() {
		a, err := bench.Lookup[byte](name)
		require.NoError(t, err)
		assert.Equal(t, name, a.Name)
		assert.NotNil(t, a.Find)
	}
	_, err := bench.Lookup[byte]("aho-corasick")
	assert.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}
