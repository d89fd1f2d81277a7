package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Row is one timed (case, algorithm) pair.
type Row struct {
	Case      string        `json:"case"`
	Pattern   string        `json:"pattern"`
	Algorithm string        `json:"algorithm"`
	Index     int           `json:"index"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Found reports whether the pattern was located.
func (r Row) Found() bool { return r.Index >= 0 }

// Report is the output of Runner.Run.
type Report struct {
	Rows []Row `json:"rows"`

	// Disagreements lists cases where algorithms returned different indices.
	Disagreements []string `json:"disagreements,omitempty"`
}

// Fastest returns, for each case name, the algorithm with the smallest
// elapsed time. Ties keep the earlier algorithm.
func (rep Report) Fastest() map[string]string {
	best := make(map[string]Row)
	for _, row := range rep.Rows {
		cur, ok := best[row.Case]
		if !ok || row.Elapsed < cur.Elapsed {
			best[row.Case] = row
		}
	}
	out := make(map[string]string, len(best))
	for name, row := range best {
		out[name] = row.Algorithm
	}

	return out
}

// WriteText renders the report as an aligned table.
func (rep Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tALGORITHM\tINDEX\tELAPSED")
	for _, row := range rep.Rows {
		idx := fmt.Sprint(row.Index)
		if !row.Found() {
			idx = "not found"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.6fs\n", row.Case, row.Algorithm, idx, row.Elapsed.Seconds())
	}
	for _, name := range rep.Disagreements {
		fmt.Fprintf(tw, "WARNING: algorithms disagree on %s\t\t\t\n", name)
	}

	return tw.Flush()
}

// WriteJSON renders the report as indented JSON.
func (rep Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}
