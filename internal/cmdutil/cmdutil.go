// Package cmdutil holds the plumbing shared by the commands under cmd/.
package cmdutil

import (
	"fmt"
	"github.com/cstructs/rewrite/internal/logging"
	"github.com/cstructs/rewrite/internal/logging/logfields"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"os"
)

// ExitError carries the process exit status of a failed or cut-short run.
// Err may be nil when the message was already shown, e.g. usage text.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Exit returns an ExitError with the given code.
func Exit(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// Usage prints the long help of cmd and returns an ExitError with code.
func Usage(cmd *cobra.Command, code int) error {
	if err := cmd.Help(); err != nil {
		return Exit(1, err)
	}
	return Exit(code, nil)
}

// AddLoggingFlags registers --debug on flags and applies it before cmd runs.
func AddLoggingFlags(cmd *cobra.Command, flags *pflag.FlagSet) {
	var debug bool
	flags.BoolVar(&debug, "debug", false, "Log every rewrite to stderr")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		logging.SetupLogging(cmd.ErrOrStderr(), debug)
	}
}

// OpenInput opens the input file of a run.
func OpenInput(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		logging.DefaultLogger.WithError(err).WithField(logfields.File, name).Debug("Open failed")
		return nil, Exit(1, errors.Errorf("Couldn't open the file \"%s\".", name))
	}
	return f, nil
}

// Run executes cmd with args and returns the exit status of the run,
// logging any error.
func Run(cmd *cobra.Command, args []string) int {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return Exit(2, err)
	})
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	code := 1
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		err = exitErr.Err
	}
	if err != nil {
		logging.DefaultLogger.WithField(logfields.LogSubsys, cmd.Name()).Error(err)
	}
	return code
}

// Execute runs cmd with the process arguments and exits.
func Execute(cmd *cobra.Command) {
	os.Exit(Run(cmd, os.Args[1:]))
}
