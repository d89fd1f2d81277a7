package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/bench"
	"github.com/katalvlaran/lvsearch/rabinkarp"
)

// findOptions holds CLI flags for find.
type findOptions struct {
	algorithm string
	modulus   uint64
}

func newFindCmd() *cobra.Command {
	var opts findOptions

	cmd := &cobra.Command{
		Use:   "find <file> <pattern>",
		Short: "Find the first occurrence of a pattern in a text file",
		Long: `Find the first occurrence of pattern in a UTF-8 text file with one
algorithm. The offset is counted in characters (code points).

With --algo rabin-karp, --modulus selects the hash modulus and the number
of hash collisions is reported as well.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algo", "a", bench.KMP, "Algorithm: rabin-karp, boyer-moore, kmp")
	cmd.Flags().Uint64Var(&opts.modulus, "modulus", rabinkarp.DefaultModulus, "Rabin-Karp hash modulus")

	return cmd
}

func runFind(cmd *cobra.Command, path, pattern string, opts findOptions) error {
	alg, err := bench.Lookup[rune](opts.algorithm)
	if err != nil {
		return err
	}
	text, err := bench.ReadText(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if alg.Name == bench.RabinKarp {
		start := time.Now()
		res, err := rabinkarp.Scan(text, []rune(pattern), rabinkarp.WithModulus(opts.modulus))
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		printIndex(cmd, res.Index)
		_, err = fmt.Fprintf(out, "windows=%d hash_hits=%d collisions=%d elapsed=%s\n",
			res.Windows, res.HashHits, res.Collisions, elapsed)

		return err
	}

	idx, elapsed := bench.Measure(alg.Find, text, []rune(pattern))
	printIndex(cmd, idx)
	_, err = fmt.Fprintf(out, "elapsed=%s\n", elapsed)

	return err
}

func printIndex(cmd *cobra.Command, idx int) {
	if idx < 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "not found")

		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "index=%d\n", idx)
}
