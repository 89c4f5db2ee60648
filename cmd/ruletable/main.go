package main

import (
	"github.com/creachadair/atomicfile"
	"github.com/cstructs/rewrite"
	"github.com/cstructs/rewrite/internal/cmdutil"
	"github.com/cstructs/rewrite/internal/gen"
	"github.com/cstructs/rewrite/internal/logging"
	"github.com/cstructs/rewrite/internal/logging/logfields"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"path/filepath"
)

func main() {
	cmdutil.Execute(newCommand())
}

func newCommand() *cobra.Command {
	opts := gen.Options{Package: "rewrite"}
	var outName string
	cmd := &cobra.Command{
		Use:   "ruletable --name Name [--pkg package] [-o file.go] rule_file",
		Short: "Generate a Go rule table from a rule file",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || opts.Name == "" {
				return cmdutil.Usage(cmd, 2)
			}
			specs, err := rewrite.ParseRuleFile(args[0])
			if err != nil {
				return err
			}
			opts.Source = filepath.Base(args[0])
			src, err := gen.Generate(opts, specs)
			if err != nil {
				return err
			}
			if outName == "" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}
			if err := atomicfile.WriteData(outName, src, 0644); err != nil {
				return errors.Wrapf(err, "writing %s", outName)
			}
			logging.DefaultLogger.WithFields(logrus.Fields{
				logfields.Table: opts.Name,
				logfields.File:  outName,
			}).Debugf("Generated %d rules", len(specs))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.Name, "name", "", "Name of the generated table variable")
	flags.StringVar(&opts.Package, "pkg", opts.Package, "Package of the generated file")
	flags.StringVarP(&outName, "out", "o", "", "Output file; stdout when empty")
	cmdutil.AddLoggingFlags(cmd, flags)
	return cmd
}
