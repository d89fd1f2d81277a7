// Package cmd provides the CLI commands for lvsearch.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/bench"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// rootOptions holds persistent flags shared by every subcommand.
type rootOptions struct {
	debug     bool
	logFormat string // "text", "json"
}

// NewRootCmd creates the root command for the lvsearch CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lvsearch",
		Short: "Compare classic search algorithms on real text",
		Long: `lvsearch times Rabin-Karp, Boyer-Moore and Knuth-Morris-Pratt substring
search against each other and runs binary search over sorted values.

Examples:
  lvsearch bench --suite suite.yaml
  lvsearch bench --text public1.txt --pattern алгоритм --pattern шинапотплгп
  lvsearch find --algo boyer-moore public2.txt баз
  lvsearch locate --values 2.2,2.5,3,3.9 2.3`,
		Version:      Version,
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate("lvsearch version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log every measurement")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format: text, json")

	cmd.AddCommand(newBenchCmd(opts))
	cmd.AddCommand(newFindCmd())
	cmd.AddCommand(newLocateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// logger builds the harness logger from the persistent flags.
func (o *rootOptions) logger(w io.Writer) (*bench.Logger, error) {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	switch o.logFormat {
	case "text":
		return bench.NewTextLogger(w, level), nil
	case "json":
		return bench.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", o.logFormat)
	}
}
