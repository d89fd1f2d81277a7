package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/bench"
)

// benchOptions holds CLI flags for bench.
type benchOptions struct {
	suite      string
	text       string
	patterns   []string
	repeat     int
	algorithms []string
	format     string // "text", "json"
}

func newBenchCmd(root *rootOptions) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every substring algorithm on the given texts",
		Long: `Time Rabin-Karp, Boyer-Moore and KMP on each (text, pattern) pair and
print the index each one found with its best elapsed time.

Inputs come either from a YAML suite (--suite) or from a single text file
with one or more --pattern flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.suite, "suite", "", "YAML suite file")
	cmd.Flags().StringVar(&opts.text, "text", "", "UTF-8 text file (without --suite)")
	cmd.Flags().StringArrayVarP(&opts.patterns, "pattern", "p", nil, "Pattern to search (repeatable)")
	cmd.Flags().IntVarP(&opts.repeat, "repeat", "n", 1, "Time each pair n times and keep the best")
	cmd.Flags().StringSliceVar(&opts.algorithms, "algo", nil, "Algorithms to run (default: all)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runBench(cmd *cobra.Command, root *rootOptions, opts benchOptions) error {
	log, err := root.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var (
		cases   []bench.Case
		runOpts []bench.Option
	)
	switch {
	case opts.suite != "":
		suite, err := bench.LoadSuite(opts.suite)
		if err != nil {
			return err
		}
		if cases, err = suite.Cases(); err != nil {
			return err
		}
		runOpts = suite.Options()
	case opts.text != "":
		if len(opts.patterns) == 0 {
			return fmt.Errorf("--text needs at least one --pattern")
		}
		text, err := bench.ReadText(opts.text)
		if err != nil {
			return err
		}
		for _, p := range opts.patterns {
			cases = append(cases, bench.Case{Name: p, Text: text, Pattern: []rune(p)})
		}
	default:
		return fmt.Errorf("either --suite or --text is required")
	}

	// Explicit flags win over suite settings.
	if cmd.Flags().Changed("repeat") {
		runOpts = append(runOpts, bench.WithRepeat(opts.repeat))
	}
	if len(opts.algorithms) > 0 {
		runOpts = append(runOpts, bench.WithAlgorithms(opts.algorithms...))
	}
	runOpts = append(runOpts, bench.WithLogger(log))

	runner, err := bench.NewRunner(runOpts...)
	if err != nil {
		return err
	}
	rep, err := runner.Run(cmd.Context(), cases)
	if err != nil {
		return err
	}

	switch opts.format {
	case "json":
		return rep.WriteJSON(cmd.OutOrStdout())
	case "text":
		return rep.WriteText(cmd.OutOrStdout())
	default:
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}
}
