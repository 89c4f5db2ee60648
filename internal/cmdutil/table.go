package cmdutil

import (
	"github.com/cstructs/rewrite"
	"github.com/cstructs/rewrite/internal/logging"
	"github.com/cstructs/rewrite/internal/logging/logfields"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewTableCommand returns a command that runs table over the file named by
// its one argument and writes the result to stdout. Without an argument it
// prints its usage and succeeds.
func NewTableCommand(use, long string, table rewrite.Table) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <C or header file>",
		Short: "Rename old cstructs identifiers in a C file",
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return Usage(cmd, 0)
			}
			in, err := OpenInput(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			e := rewrite.NewEngine(table)
			e.Log = logging.DefaultLogger.WithFields(logrus.Fields{
				logfields.LogSubsys: use,
				logfields.File:      args[0],
			})
			return e.Process(cmd.Context(), in, cmd.OutOrStdout())
		},
	}
	AddLoggingFlags(cmd, cmd.Flags())
	return cmd
}
