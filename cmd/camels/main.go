package main

import (
	"fmt"
	"github.com/cstructs/rewrite"
	"github.com/cstructs/rewrite/internal/cmdutil"
	"github.com/spf13/cobra"
	"io"
)

func main() {
	cmdutil.Execute(newCommand())
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camels <input_file>",
		Short: "List the camel-case identifiers bye_camels would convert",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return cmdutil.Usage(cmd, 2)
			}
			in, err := cmdutil.OpenInput(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			lines, err := rewrite.ReadLines(in)
			if err != nil {
				return err
			}
			return printTokens(cmd.OutOrStdout(), collect(lines))
		},
	}
	cmdutil.AddLoggingFlags(cmd, cmd.Flags())
	return cmd
}

type tokenCount struct {
	token string
	count int
}

// collect counts tokens, keeping the order in which they first appear.
func collect(lines []string) []*tokenCount {
	var out []*tokenCount
	seen := map[string]*tokenCount{}
	for _, line := range lines {
		for _, tok := range rewrite.Tokens(line) {
			tc, ok := seen[tok]
			if !ok {
				tc = &tokenCount{token: tok}
				seen[tok] = tc
				out = append(out, tc)
			}
			tc.count++
		}
	}
	return out
}

func printTokens(w io.Writer, tokens []*tokenCount) error {
	width := 0
	for _, tc := range tokens {
		if len(tc.token) > width {
			width = len(tc.token)
		}
	}
	for _, tc := range tokens {
		if _, err := fmt.Fprintf(w, "%-*s -> %s (%d)\n", width, tc.token, rewrite.Snake(tc.token), tc.count); err != nil {
			return err
		}
	}
	return nil
}
