// Package cli provides the command-line interface for the rankdex engine:
// a build subcommand that ingests a JSON corpus into a TSV-persisted index
// pair, and a query subcommand that loads an index and answers a single
// top-k ranked query.
//
// Errors are never printed by Cobra's own usage machinery — every
// subcommand returns its error instead of printing it, and Execute's caller
// (cmd/rankdex/main.go) is the single place that prints it and sets the
// process exit code.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/corvidlabs/rankdex/internal/rankerr"
)

var rootCmd = &cobra.Command{
	Use:   "rankdex",
	Short: "A positional inverted index and ranked Boolean/phrase query engine",
}

// Execute runs the root command and returns any error from the selected
// subcommand. It does not print anything itself or call os.Exit.
func Execute() error {
	return rootCmd.Execute()
}

// UsageHint returns the brief usage banner the caller prints alongside a
// failed command's error line. Cobra's own usage dump is silenced (see
// init below) so every error path ends the same way: one error line
// followed by this usage banner.
func UsageHint() string {
	return "Usage:\n" +
		"  rankdex build <input.json> <index_dir>\n" +
		"  rankdex query <index_dir> <k> <query>"
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(queryCmd)
	for _, c := range []*cobra.Command{buildCmd, queryCmd} {
		validate := c.Args
		c.Args = func(cmd *cobra.Command, args []string) error {
			if err := validate(cmd, args); err != nil {
				return rankerr.Wrap(rankerr.ArgShape, "wrong number of arguments", err)
			}
			return nil
		}
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
