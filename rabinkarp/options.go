package rabinkarp

import "fmt"

// Option configures Scan via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Scan runs.
type Option func(*Options)

// Options holds the hash parameters used by Scan.
type Options struct {
	// Base is the polynomial base, >= 2.
	Base uint64

	// Modulus is the hash modulus, in [2, MaxModulus).
	Modulus uint64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns base 256 and modulus 101.
func DefaultOptions() Options {
	return Options{Base: DefaultBase, Modulus: DefaultModulus}
}

// WithBase sets the polynomial base.
func WithBase(b uint64) Option {
	return func(o *Options) {
		if b < 2 {
			o.err = fmt.Errorf("%w: base must be >= 2 (got %d)", ErrOptionViolation, b)

			return
		}
		o.Base = b
	}
}

// WithModulus sets the hash modulus. Larger moduli make collisions rarer.
func WithModulus(m uint64) Option {
	return func(o *Options) {
		if m < 2 || m >= MaxModulus {
			o.err = fmt.Errorf("%w: modulus must be in [2, %d) (got %d)", ErrOptionViolation, MaxModulus, m)

			return
		}
		o.Modulus = m
	}
}
