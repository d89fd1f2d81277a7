package rabinkarp_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/rabinkarp"
)

// TestNewHasher_Errors rejects out-of-range parameters.
func TestNewHasher_Errors(t *testing.T) {
	for _, tc := range []struct {
		name          string
		base, modulus uint64
	}{
		{"base too small", 1, 101},
		{"modulus zero", 256, 0},
		{"modulus one", 256, 1},
		{"modulus too large", 256, rabinkarp.MaxModulus},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rabinkarp.NewHasher(tc.base, tc.modulus)
			assert.ErrorIs(t, err, rabinkarp.ErrOptionViolation)
		})
	}
}

// TestHash matches hand-computed values for base 256, modulus 101.
func TestHash(t *testing.T) {
	h, err := rabinkarp.NewHasher(rabinkarp.DefaultBase, rabinkarp.DefaultModulus)
	require.NoError(t, err)

	// (97·256 + 98) mod 101 = 24930 mod 101 = 84
	assert.Equal(t, uint64(84), rabinkarp.Hash(h, []byte("ab")))
	assert.Equal(t, uint64(0), rabinkarp.Hash(h, []byte{}))
	// 256² mod 101 = 88
	assert.Equal(t, uint64(88), h.Multiplier(3))
	assert.Equal(t, uint64(1), h.Multiplier(1))
	assert.Equal(t, uint64(0), h.Multiplier(0))
	assert.Equal(t, uint64(101), h.Modulus())
}

// TestRoll_MatchesDirectHash checks that after every slide the rolling
// hash equals a fresh hash of the new window.
func TestRoll_MatchesDirectHash(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, modulus := range []uint64{2, 101, 65_521, 1_000_000_007} {
		h, err := rabinkarp.NewHasher(rabinkarp.DefaultBase, modulus)
		require.NoError(t, err)
		text := []rune("пошук базы данных: алгоритм Рабина–Карпа")
		for iter := 0; iter < 50; iter++ {
			m := 1 + rng.Intn(8)
			mult := h.Multiplier(m)
			cur := rabinkarp.Hash(h, text[:m])
			for i := 0; i+m < len(text); i++ {
				cur = rabinkarp.Roll(h, cur, text[i], text[i+m], mult)
				require.Equal(t, rabinkarp.Hash(h, text[i+1:i+1+m]), cur,
					"modulus=%d m=%d window=%d", modulus, m, i+1)
				require.Less(t, cur, modulus)
			}
		}
	}
}

// TestIndex_Scenarios covers fixed inputs and degenerate cases.
func TestIndex_Scenarios(t *testing.T) {
	cases := []struct {
		name          string
		text, pattern string
		want          int
	}{
		{"hello world", "hello world", "world", 6},
		{"absent", "hello world", "xyz", core.NotFound},
		{"classic", "ababcabcabababd", "ababd", 10},
		{"skip over partial", "abczabcabcz", "abcabcz", 4},
		{"whole text", "abc", "abc", 0},
		{"last window", "xxxxab", "ab", 4},
		{"empty pattern", "abc", "", 0},
		{"empty text", "", "a", core.NotFound},
		{"pattern longer than text", "ab", "abc", core.NotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rabinkarp.IndexString(tc.text, tc.pattern))
		})
	}
}

// TestIndex_Runes checks code points above the base are handled.
func TestIndex_Runes(t *testing.T) {
	text := []rune("база даних і ще одна база")
	assert.Equal(t, 0, rabinkarp.Index(text, []rune("баз")))
	assert.Equal(t, 13, rabinkarp.Index(text, []rune("ще")))
	assert.Equal(t, core.NotFound, rabinkarp.Index(text, []rune("оиненопиьи")))
}

// TestScan_CollisionsAreRejected forces collisions with modulus 2: every
// 'a' (97) hashes like 'c' (99) but must not be reported as a match.
func TestScan_CollisionsAreRejected(t *testing.T) {
	res, err := rabinkarp.Scan([]byte("aaab"), []byte("c"), rabinkarp.WithModulus(2))
	require.NoError(t, err)
	assert.Equal(t, rabinkarp.Result{
		Index:      core.NotFound,
		Windows:    4,
		HashHits:   3,
		Collisions: 3,
	}, res)

	res, err = rabinkarp.Scan([]byte("aaac"), []byte("c"), rabinkarp.WithModulus(2))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Index)
	assert.Equal(t, 3, res.Collisions)
	assert.Equal(t, 1, res.HashHits-res.Collisions)
}

// TestScan_Stats checks the hit/collision bookkeeping on a found pattern.
func TestScan_Stats(t *testing.T) {
	res, err := rabinkarp.Scan([]byte("hello world"), []byte("world"))
	require.NoError(t, err)
	assert.Equal(t, 6, res.Index)
	assert.Equal(t, 7, res.Windows)
	assert.Equal(t, 1, res.HashHits-res.Collisions)

	res, err = rabinkarp.Scan([]byte("abc"), []byte(""))
	require.NoError(t, err)
	assert.Equal(t, rabinkarp.Result{Index: 0}, res, "empty pattern needs no windows")
}

// TestScan_OptionErrors surfaces invalid options as ErrOptionViolation.
func TestScan_OptionErrors(t *testing.T) {
	for name, opt := range map[string]rabinkarp.Option{
		"base":        rabinkarp.WithBase(0),
		"modulus low": rabinkarp.WithModulus(1),
		"modulus max": rabinkarp.WithModulus(rabinkarp.MaxModulus),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := rabinkarp.Scan([]byte("abc"), []byte("b"), opt)
			assert.ErrorIs(t, err, rabinkarp.ErrOptionViolation)
			assert.Equal(t, core.NotFound, res.Index)
		})
	}
}

// TestScan_MatchesBytesIndex cross-checks several moduli against bytes.Index.
func TestScan_MatchesBytesIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, modulus := range []uint64{2, 3, 101, 1_000_000_007} {
		for iter := 0; iter < 1000; iter++ {
			text := randomBytes(rng, rng.Intn(40), "abc")
			pattern := randomBytes(rng, rng.Intn(6), "abc")
			want := bytes.Index(text, pattern)

			res, err := rabinkarp.Scan(text, pattern, rabinkarp.WithModulus(modulus), rabinkarp.WithBase(31))
			require.NoError(t, err)
			require.Equal(t, want, res.Index, "modulus=%d text=%q pattern=%q", modulus, text, pattern)
			if modulus == rabinkarp.DefaultModulus {
				require.Equal(t, want, rabinkarp.Index(text, pattern))
			}
		}
	}
}

func randomBytes(rng *rand.Rand, n int, alphabet string) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return out
}
