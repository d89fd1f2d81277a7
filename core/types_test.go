package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvsearch/core"
)

// TestWindow covers every branch of the degenerate-input resolver.
func TestWindow(t *testing.T) {
	cases := []struct {
		name     string
		n, m     int
		wantIdx  int
		wantDone bool
	}{
		{"empty pattern in empty text", 0, 0, 0, true},
		{"empty pattern in text", 5, 0, 0, true},
		{"pattern longer than text", 3, 4, core.NotFound, true},
		{"pattern equals text length", 4, 4, 0, false},
		{"regular search", 10, 3, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, done := core.Window(tc.n, tc.m)
			assert.Equal(t, tc.wantIdx, idx)
			assert.Equal(t, tc.wantDone, done)
		})
	}
}

// TestEqual checks symbol-wise comparison for bytes and runes.
func TestEqual(t *testing.T) {
	assert.True(t, core.Equal([]byte("abc"), []byte("abc")))
	assert.False(t, core.Equal([]byte("abc"), []byte("abd")))
	assert.False(t, core.Equal([]byte("ab"), []byte("abc")))
	assert.True(t, core.Equal([]rune("база"), []rune("база")))
	assert.True(t, core.Equal([]rune{}, nil), "empty and nil are equal")
}
