package bench

import (
	"fmt"
	"time"
)

// Option configures a Runner. An invalid Option is recorded and surfaced
// as ErrOptionViolation by NewRunner.
type Option func(*Options)

// Options holds Runner parameters.
type Options struct {
	// Logger receives per-measure and per-case records.
	Logger *Logger

	// Repeat is how many times each (case, algorithm) pair is timed;
	// the fastest run is reported. Must be >= 1.
	Repeat int

	// Algorithms lists built-in algorithm names to run, in order.
	Algorithms []string

	// Custom finders run after the built-in ones.
	Custom []Algorithm[rune]

	// Clock returns the current time; overridable for tests.
	Clock func() time.Time

	// internal error recorded during option parsing
	err error
}

// DefaultOptions runs every built-in algorithm once, without logging.
func DefaultOptions() Options {
	return Options{
		Logger:     NoopLogger(),
		Repeat:     1,
		Algorithms: Names(),
		Clock:      time.Now,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRepeat times each pair n times and keeps the best.
//
//	n >= 1: repeat n times
//	n < 1:  invalid → ErrOptionViolation
func WithRepeat(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: repeat must be >= 1 (got %d)", ErrOptionViolation, n)

			return
		}
		o.Repeat = n
	}
}

// WithAlgorithms restricts the run to the named built-in algorithms.
// An empty list is an ErrOptionViolation.
func WithAlgorithms(names ...string) Option {
	return func(o *Options) {
		if len(names) == 0 {
			o.err = fmt.Errorf("%w: algorithm list is empty", ErrOptionViolation)

			return
		}
		o.Algorithms = append([]string(nil), names...)
	}
}

// WithCustom adds a caller-supplied finder to the run.
func WithCustom(name string, find func(text, pattern []rune) int) Option {
	return func(o *Options) {
		if name == "" || find == nil {
			o.err = fmt.Errorf("%w: custom algorithm needs a name and a function", ErrOptionViolation)

			return
		}
		o.Custom = append(o.Custom, Algorithm[rune]{Name: name, Find: find})
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}
