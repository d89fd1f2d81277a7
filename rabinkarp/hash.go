package rabinkarp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	// DefaultBase is the polynomial base.
	DefaultBase uint64 = 256

	// DefaultModulus is the hash modulus. It is deliberately small.
	DefaultModulus uint64 = 101

	// MaxModulus bounds the modulus so that a product of two reduced
	// operands stays below 2^62.
	MaxModulus uint64 = 1 << 31
)

// ErrOptionViolation is returned when a base or modulus is out of range.
var ErrOptionViolation = errors.New("rabinkarp: invalid option supplied")

// Hasher computes polynomial hashes modulo a fixed modulus.
// A Hasher is immutable and safe for concurrent use.
type Hasher struct {
	base    uint64 // already reduced modulo modulus
	modulus uint64
}

// NewHasher validates base and modulus.
//
//	base    >= 2
//	modulus in [2, MaxModulus)
func NewHasher(base, modulus uint64) (*Hasher, error) {
	if base < 2 {
		return nil, fmt.Errorf("%w: base must be >= 2 (got %d)", ErrOptionViolation, base)
	}
	if modulus < 2 || modulus >= MaxModulus {
		return nil, fmt.Errorf("%w: modulus must be in [2, %d) (got %d)", ErrOptionViolation, MaxModulus, modulus)
	}

	return &Hasher{base: base % modulus, modulus: modulus}, nil
}

// defaultHasher backs Index and IndexString; the defaults are valid.
var defaultHasher = &Hasher{base: DefaultBase % DefaultModulus, modulus: DefaultModulus}

// Modulus returns the hash modulus.
func (h *Hasher) Modulus() uint64 { return h.modulus }

// Hash returns H(window) in [0, modulus), evaluated with Horner's rule.
func Hash[E core.Symbol](h *Hasher, window []E) uint64 {
	var v uint64
	for _, c := range window {
		v = (v*h.base + value(h, c)) % h.modulus
	}

	return v
}

// Multiplier returns base^(m-1) mod modulus, the weight of the leading
// symbol of an m-symbol window. It returns 0 for m < 1.
func (h *Hasher) Multiplier(m int) uint64 {
	if m < 1 {
		return 0
	}
	pow, sq := uint64(1)%h.modulus, h.base
	for e := m - 1; e > 0; e >>= 1 {
		if e&1 != 0 {
			pow = pow * sq % h.modulus
		}
		sq = sq * sq % h.modulus
	}

	return pow
}

// Roll slides a window hash by one symbol: out leaves at the front, in
// enters at the back. mult must be Multiplier(window length).
//
// The outgoing contribution is removed by adding its additive inverse, so
// the intermediate value never leaves [0, 2·modulus).
func Roll[E core.Symbol](h *Hasher, cur uint64, out, in E, mult uint64) uint64 {
	drop := value(h, out) * mult % h.modulus
	cur = (cur + h.modulus - drop) % h.modulus

	return (cur*h.base + value(h, in)) % h.modulus
}

// value reduces a symbol modulo the modulus before any multiplication.
func value[E core.Symbol](h *Hasher, c E) uint64 {
	return uint64(c) % h.modulus
}
