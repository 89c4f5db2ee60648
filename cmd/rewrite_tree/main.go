package main

import (
	"bytes"
	"context"
	"github.com/creachadair/atomicfile"
	"github.com/cstructs/rewrite"
	"github.com/cstructs/rewrite/internal/cmdutil"
	"github.com/cstructs/rewrite/internal/logging"
	"github.com/cstructs/rewrite/internal/logging/logfields"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const long = `Applies a rule table in place to every C source and header file under
path. Files the rules do not change are left untouched.

The table is either one of the built-in ones (array, map) or a rule file,
in the format read by rewrite.`

var builtinTables = map[string]rewrite.Table{
	"array": rewrite.ArrayRules,
	"map":   rewrite.MapRules,
}

var sourceSuffixes = []string{".c", ".h"}

func main() {
	cmdutil.Execute(newCommand())
}

func newCommand() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "rewrite_tree <array|map|rule_file> path",
		Short: "Rewrite a tree of C files in place",
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return cmdutil.Usage(cmd, 2)
			}
			table, ok := builtinTables[args[0]]
			if !ok {
				var err error
				if table, err = rewrite.LoadTable(args[0]); err != nil {
					return err
				}
			}
			e := rewrite.NewEngine(table)
			return rewriteTree(cmd.Context(), e, args[1], dryRun)
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Only log the files that would change")
	cmdutil.AddLoggingFlags(cmd, cmd.Flags())
	return cmd
}

func isSource(path string) bool {
	for _, suffix := range sourceSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func rewriteTree(ctx context.Context, e *rewrite.Engine, root string, dryRun bool) error {
	log := logging.DefaultLogger.WithField(logfields.LogSubsys, "rewrite-tree")
	changed := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSource(path) {
			return nil
		}
		modified, err := rewriteFile(ctx, e, path, d, dryRun)
		if err != nil {
			return errors.Wrap(err, path)
		}
		if modified {
			changed++
			msg := "modifying"
			if dryRun {
				msg = "would modify"
			}
			log.WithField(logfields.File, path).Info(msg)
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"changed": changed, "dry-run": dryRun}).Debug("Done")
	return nil
}

func rewriteFile(ctx context.Context, e *rewrite.Engine, path string, d fs.DirEntry, dryRun bool) (bool, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	fe := *e
	fe.Log = e.Log.WithField(logfields.File, path)
	var out bytes.Buffer
	if err := fe.Process(ctx, bytes.NewReader(code), &out); err != nil {
		return false, err
	}
	if bytes.Equal(code, out.Bytes()) {
		return false, nil
	}
	if dryRun {
		return true, nil
	}
	info, err := d.Info()
	if err != nil {
		return false, err
	}
	return true, atomicfile.WriteData(path, out.Bytes(), info.Mode().Perm())
}
