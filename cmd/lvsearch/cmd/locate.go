package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/bsearch"
)

func newLocateCmd() *cobra.Command {
	var values []float64
	var unchecked bool

	cmd := &cobra.Command{
		Use:   "locate <target>",
		Short: "Binary search a sorted list of numbers",
		Long: `Binary search target in an ascending list of numbers. Prints the index
and the number of probes; when the target is absent, prints the index at
which it would be inserted.

Example:
  lvsearch locate --values 2.2,2.5,3,3.9,4.7,11 2.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", args[0], err)
			}
			var res bsearch.Result
			if unchecked {
				res = bsearch.Search(values, target)
			} else if res, err = bsearch.SearchChecked(values, target); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)

			return err
		},
	}

	cmd.Flags().Float64SliceVar(&values, "values", nil, "Ascending comma-separated values")
	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "Skip the sortedness check")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}
