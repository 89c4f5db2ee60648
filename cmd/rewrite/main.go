package main

import (
	"github.com/cstructs/rewrite"
	"github.com/cstructs/rewrite/internal/cmdutil"
	"github.com/cstructs/rewrite/internal/logging"
	"github.com/cstructs/rewrite/internal/logging/logfields"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const long = `Applies the rules of rule_file, in order, to every line of source_file
and writes the result to stdout.

A rule file is made of sections:

  rules:
    pattern -> replacement     regexp replacement, $1 expands groups
  namespace:
    pattern -> prefix          strip prefix, then FooBarBaz -> foo__bar_baz
  camel:
    pattern                    fooBarBaz -> foo_bar_baz

Blank lines and lines starting with # are ignored.`

func main() {
	cmdutil.Execute(newCommand())
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite rule_file source_file",
		Short: "Rewrite a source file with the rules of a rule file",
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return cmdutil.Usage(cmd, 2)
			}
			table, err := rewrite.LoadTable(args[0])
			if err != nil {
				return err
			}
			code, err := cmdutil.OpenInput(args[1])
			if err != nil {
				return err
			}
			defer code.Close()

			e := rewrite.NewEngine(table)
			e.Log = logging.DefaultLogger.WithFields(logrus.Fields{
				logfields.LogSubsys: "rewrite",
				logfields.Table:     args[0],
				logfields.File:      args[1],
			})
			return e.Process(cmd.Context(), code, cmd.OutOrStdout())
		},
	}
	cmdutil.AddLoggingFlags(cmd, cmd.Flags())
	return cmd
}
