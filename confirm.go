package rewrite

import (
	"bufio"
	"context"
	"fmt"
	"github.com/cstructs/rewrite/internal/logging"
	"github.com/cstructs/rewrite/internal/logging/logfields"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"io"
	"strings"
)

// DecisionCache remembers, for one run, whether each token should be
// converted.
type DecisionCache map[string]bool

// Confirmer decides whether a camel-case token gets converted. In
// interactive mode it asks once per distinct token and caches the answer.
type Confirmer struct {
	Interactive bool
	Cache       DecisionCache

	in        *bufio.Scanner
	out       io.Writer
	highlight *color.Color
}

// NewConfirmer returns an interactive Confirmer that prompts on out and
// reads replies from in.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		Interactive: true,
		Cache:       DecisionCache{},
		in:          bufio.NewScanner(in),
		out:         out,
		highlight:   color.New(color.FgYellow, color.Bold),
	}
}

// Confirm reports whether token should be converted. Any reply other than
// "n" or "N" means yes.
func (c *Confirmer) Confirm(token string) (bool, error) {
	if c == nil || !c.Interactive {
		return true, nil
	}
	if do, ok := c.Cache[token]; ok {
		return do, nil
	}
	if c.in == nil || c.out == nil {
		return false, errors.New("interactive confirmer has no input")
	}
	shown := token
	if c.highlight != nil {
		shown = c.highlight.Sprint(token)
	}
	if _, err := fmt.Fprintf(c.out, "Update \"%s\"? [Y/n] ", shown); err != nil {
		return false, errors.Wrap(err, "writing prompt")
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return false, errors.Wrapf(err, "reading reply for %q", token)
		}
		return false, errors.Wrapf(io.ErrUnexpectedEOF, "no reply for %q", token)
	}
	do := !strings.EqualFold(c.in.Text(), "n")
	if c.Cache == nil {
		c.Cache = DecisionCache{}
	}
	c.Cache[token] = do
	return do, nil
}

// CamelEngine converts every camel-case token of its input to snake case,
// subject to its Confirmer.
type CamelEngine struct {
	Confirmer *Confirmer
	Log       logrus.FieldLogger
}

func NewCamelEngine(c *Confirmer) *CamelEngine {
	return &CamelEngine{
		Confirmer: c,
		Log:       logging.DefaultLogger.WithField(logfields.LogSubsys, "bye-camels"),
	}
}

// ConvertLine converts the confirmed tokens of line. Tokens are found on
// the line as given; each confirmed one then replaces every occurrence of
// its text in the line so far, including inside longer identifiers.
func (e *CamelEngine) ConvertLine(line string) (string, error) {
	out := line
	t := NewTokenizer(line)
	for {
		tok, ok := t.Next()
		if !ok {
			return out, nil
		}
		do, err := e.Confirmer.Confirm(tok)
		if err != nil {
			return "", err
		}
		if !do {
			continue
		}
		out = strings.ReplaceAll(out, tok, Snake(tok))
		if e.Log != nil {
			e.Log.WithField(logfields.Token, tok).Debug("Converted token")
		}
	}
}

// Process reads all of r, then writes every converted line to w.
func (e *CamelEngine) Process(ctx context.Context, r io.Reader, w io.Writer) error {
	return processLines(ctx, r, w, func(_ int, line string) (string, error) {
		return e.ConvertLine(line)
	})
}
