// Package rewrite renames identifiers in C sources by running every line
// through an ordered table of regular-expression rules.
package rewrite

//go:generate go run ./cmd/ruletable --name ArrayRules -o array_rules.go rules/array.rules
//go:generate go run ./cmd/ruletable --name MapRules -o map_rules.go rules/map.rules

import (
	"bufio"
	"context"
	"github.com/cstructs/rewrite/internal/logging"
	"github.com/cstructs/rewrite/internal/logging/logfields"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"io"
	"regexp"
	"strings"
)

// Rule is one pattern -> replacement step of a Table. When Func is set it
// computes the replacement for each match; otherwise Replacement is
// expanded as a regexp template ($1, ${name}).
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
	Func        func(match string) string
}

// Literal returns a rule replacing every match of pattern with repl.
func Literal(pattern, repl string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Replacement: repl}
}

// Namespaced returns a rule that strips trim from the front of every match
// of pattern and converts the rest with a fresh Converter, so that
// CArrayNewThing with trim "C" becomes array__new_thing.
func Namespaced(pattern, trim string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Func: namespacedFunc(trim)}
}

// Camel returns a rule converting every match of pattern with Snake.
func Camel(pattern string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Func: Snake}
}

func namespacedFunc(trim string) func(string) string {
	return func(match string) string {
		var c Converter
		return c.Namespaced(strings.TrimPrefix(match, trim))
	}
}

// Apply runs the rule over line. A rule with no match returns line as is.
func (r Rule) Apply(line string) string {
	if r.Func != nil {
		return r.Pattern.ReplaceAllStringFunc(line, r.Func)
	}
	return r.Pattern.ReplaceAllString(line, r.Replacement)
}

func (r Rule) String() string {
	return r.Pattern.String()
}

// Table is an ordered list of rules. Each rule sees the output of the
// rules before it, so reordering a table changes its results.
type Table []Rule

// Apply runs every rule of the table over line, in order.
func (t Table) Apply(line string) string {
	return t.apply(line, nil)
}

func (t Table) apply(line string, changed func(i int, before, after string)) string {
	for i, rule := range t {
		out := rule.Apply(line)
		if changed != nil && out != line {
			changed(i, line, out)
		}
		line = out
	}
	return line
}

// Engine applies a Table to whole files.
type Engine struct {
	Table Table
	Log   logrus.FieldLogger
}

func NewEngine(t Table) *Engine {
	return &Engine{
		Table: t,
		Log:   logging.DefaultLogger.WithField(logfields.LogSubsys, "rewrite"),
	}
}

// Process reads all of r, then writes every line, transformed, to w.
func (e *Engine) Process(ctx context.Context, r io.Reader, w io.Writer) error {
	return processLines(ctx, r, w, func(n int, line string) (string, error) {
		return e.ConvertLine(n, line), nil
	})
}

// ConvertLine applies the table to a single line; n is only used for logging.
func (e *Engine) ConvertLine(n int, line string) string {
	return e.Table.apply(line, func(i int, before, after string) {
		if e.Log == nil {
			return
		}
		e.Log.WithFields(logrus.Fields{
			logfields.Line:    n,
			logfields.Rule:    i,
			logfields.Pattern: e.Table[i].String(),
		}).Debugf("Rewrote %q to %q", strings.TrimRight(before, "\n"), strings.TrimRight(after, "\n"))
	})
}

// ReadLines reads everything from r and splits it into lines, each keeping
// its terminator.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func processLines(ctx context.Context, r io.Reader, w io.Writer, convert func(n int, line string) (string, error)) error {
	lines, err := ReadLines(r)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := convert(i+1, line)
		if err != nil {
			return errors.Wrapf(err, "line %d", i+1)
		}
		if _, err := bw.WriteString(out); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return errors.Wrap(bw.Flush(), "writing output")
}
