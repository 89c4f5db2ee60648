package main

import (
	"github.com/creachadair/atomicfile"
	"github.com/cstructs/rewrite"
	"github.com/cstructs/rewrite/internal/cmdutil"
	"github.com/cstructs/rewrite/internal/logging"
	"github.com/cstructs/rewrite/internal/logging/logfields"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
)

const long = `Replaces all camel-case identifiers in the input with a snake-case
version in the output.

  bye_camels <input_file> [<output_file>]
  bye_camels -i <input_file> <output_file>

Using -i asks about each distinct identifier, so that you can leave some
special-case camel-case identifiers as they are. When not using -i and
giving a single file name, output is sent to stdout; when using -i the
output file name is required.`

func newCommand() *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "bye_camels [-i] <input_file> [<output_file>]",
		Short: "Convert camel-case identifiers to snake case",
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || (interactive && len(args) < 2) {
				return cmdutil.Usage(cmd, 2)
			}
			return run(cmd, interactive, args)
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask before converting each distinct identifier")
	cmdutil.AddLoggingFlags(cmd, cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, interactive bool, args []string) error {
	inName := args[0]
	in, err := cmdutil.OpenInput(inName)
	if err != nil {
		return err
	}
	defer in.Close()

	confirmer := &rewrite.Confirmer{}
	if interactive {
		confirmer = rewrite.NewConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	e := rewrite.NewCamelEngine(confirmer)
	e.Log = logging.DefaultLogger.WithFields(logrus.Fields{
		logfields.LogSubsys: "bye-camels",
		logfields.File:      inName,
	})

	if len(args) < 2 {
		return e.Process(cmd.Context(), in, cmd.OutOrStdout())
	}
	return processToFile(cmd, e, in, args[1])
}

// processToFile only replaces outName once the whole input is converted.
func processToFile(cmd *cobra.Command, e *rewrite.CamelEngine, in io.Reader, outName string) error {
	out, err := atomicfile.New(outName, 0644)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outName)
	}
	defer out.Cancel()
	if err := e.Process(cmd.Context(), in, out); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", outName)
	}
	logging.DefaultLogger.WithField(logfields.File, outName).Debug("Wrote output")
	return nil
}
