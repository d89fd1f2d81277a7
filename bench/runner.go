package bench

import (
	"context"
	"fmt"
	"time"
)

// Case is one (text, pattern) pair to time.
type Case struct {
	// Name identifies the case in reports, e.g. "public1/алгоритм".
	Name string

	Text    []rune
	Pattern []rune
}

// Runner times a fixed set of algorithms over cases. A Runner holds no
// mutable state and may be reused.
type Runner struct {
	algorithms []Algorithm[rune]
	repeat     int
	log        *Logger
	now        func() time.Time
}

// NewRunner resolves options and algorithm names.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrUnknownAlgorithm for a name not in the registry.
func NewRunner(opts ...Option) (*Runner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	algs := make([]Algorithm[rune], 0, len(o.Algorithms)+len(o.Custom))
	for _, name := range o.Algorithms {
		a, err := Lookup[rune](name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, a)
	}
	algs = append(algs, o.Custom...)

	return &Runner{algorithms: algs, repeat: o.Repeat, log: o.Logger, now: o.Clock}, nil
}

// Algorithms returns the names the runner will time, in order.
func (r *Runner) Algorithms() []string {
	names := make([]string, len(r.algorithms))
	for i, a := range r.algorithms {
		names[i] = a.Name
	}

	return names
}

// Run times every algorithm on every case, sequentially. ctx is checked
// before each measurement; on cancellation the partial report is returned
// with ctx.Err().
//
// Errors:
//   - ErrNoCases if cases is empty.
//   - ErrDuplicateCase if two cases share a name, since rows are keyed by it.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	var rep Report
	if len(cases) == 0 {
		r.log.LogRun(ctx, 0, 0, ErrNoCases)

		return rep, ErrNoCases
	}
	seen := make(map[string]struct{}, len(cases))
	for _, c := range cases {
		if _, dup := seen[c.Name]; dup {
			err := fmt.Errorf("%w: %q", ErrDuplicateCase, c.Name)
			r.log.LogRun(ctx, len(cases), 0, err)

			return rep, err
		}
		seen[c.Name] = struct{}{}
	}

	for _, c := range cases {
		clog := r.log.WithCase(c.Name)
		first, agree := 0, true
		for ai, a := range r.algorithms {
			idx, best, err := r.measure(ctx, a, c)
			if err != nil {
				r.log.LogRun(ctx, len(cases), len(rep.Rows), err)

				return rep, err
			}
			clog.LogMeasure(ctx, a.Name, idx, best)
			rep.Rows = append(rep.Rows, Row{
				Case:      c.Name,
				Pattern:   string(c.Pattern),
				Algorithm: a.Name,
				Index:     idx,
				Elapsed:   best,
			})
			if ai == 0 {
				first = idx
			} else if idx != first {
				agree = false
			}
		}
		if !agree {
			rep.Disagreements = append(rep.Disagreements, c.Name)
		}
		clog.LogCase(ctx, first, agree)
	}
	r.log.LogRun(ctx, len(cases), len(rep.Rows), nil)

	return rep, nil
}

// measure times a on c r.repeat times and keeps the fastest run.
func (r *Runner) measure(ctx context.Context, a Algorithm[rune], c Case) (int, time.Duration, error) {
	idx, best := 0, time.Duration(-1)
	for i := 0; i < r.repeat; i++ {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		got, elapsed := measureWith(r.now, a.Find, c.Text, c.Pattern)
		idx = got
		if best < 0 || elapsed < best {
			best = elapsed
		}
	}

	return idx, best, nil
}
