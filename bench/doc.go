// Package bench times lvsearch's substring finders against each other.
//
// 🚀 What is in here?
//
//	• Measure    — run one finder once, return (index, elapsed)
//	• Algorithms — the registered finders: rabin-karp, boyer-moore, kmp
//	• Runner     — run every algorithm over a list of Cases, best of N
//	• Suite      — a YAML file naming text files and the patterns to look for
//	• Logger     — slog wrapper used by Runner
//
// Cases hold code points ([]rune), so offsets are counted in characters,
// not bytes, whatever the script of the input text.
//
// ⚙️ Usage:
//
//	suite, err := bench.LoadSuite("suite.yaml")
//	cases, err := suite.Cases()
//	r, err := bench.NewRunner(append(suite.Options(), bench.WithLogger(log))...)
//	report, err := r.Run(ctx, cases)
//	report.WriteText(os.Stdout)
//
// Runs are strictly sequential: measurements taken concurrently would
// compete for the CPU and distort each other.
package bench
