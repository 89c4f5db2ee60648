package rewrite

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"os"
	"regexp"
	"strings"
)

type RuleKind int

const (
	KindLiteral RuleKind = iota + 1
	KindNamespaced
	KindCamel
)

var kindSections = map[string]RuleKind{
	"rules:":     KindLiteral,
	"namespace:": KindNamespaced,
	"camel:":     KindCamel,
}

func (k RuleKind) String() string {
	switch k {
	case KindLiteral:
		return "rules"
	case KindNamespaced:
		return "namespace"
	case KindCamel:
		return "camel"
	}
	return "unknown"
}

// RuleSpec is the uncompiled form of a Rule as written in a rule file.
// Replacement holds the trimmed prefix for namespaced rules and is unused
// for camel rules.
type RuleSpec struct {
	Kind        RuleKind
	Pattern     string
	Replacement string
	Line        int
}

// ParseRuleFile reads a rule file. Rule files are split into sections by
// "rules:", "namespace:" and "camel:" lines; every other non-blank,
// non-comment line is a "pattern -> replacement" entry of the current
// section. Sections may repeat and the order of entries is kept.
func ParseRuleFile(ruleFile string) ([]RuleSpec, error) {
	f, err := os.Open(ruleFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	specs, err := ParseRules(f)
	if err != nil {
		return nil, errors.Wrap(err, ruleFile)
	}
	return specs, nil
}

func ParseRules(r io.Reader) ([]RuleSpec, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanLines)
	var specs []RuleSpec
	var curKind RuleKind
	lineNo := 0
	for s.Scan() {
		lineNo++
		curLine := strings.TrimSpace(s.Text())
		if curLine == "" || strings.HasPrefix(curLine, "#") {
			continue
		}
		if kind, ok := kindSections[curLine]; ok {
			curKind = kind
			continue
		}
		if curKind == 0 {
			return nil, errors.Errorf("line %d: %q is outside of any section", lineNo, curLine)
		}
		spec, err := buildRuleSpec(curKind, curLine)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		spec.Line = lineNo
		specs = append(specs, spec)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return specs, nil
}

func buildRuleSpec(kind RuleKind, line string) (RuleSpec, error) {
	in, out, found := strings.Cut(line, "->")
	spec := RuleSpec{
		Kind:        kind,
		Pattern:     strings.TrimSpace(in),
		Replacement: strings.TrimSpace(out),
	}
	if !found && kind != KindCamel {
		return RuleSpec{}, errors.Errorf("%s entry %q has no \"->\"", kind, line)
	}
	if spec.Pattern == "" {
		return RuleSpec{}, errors.Errorf("%s entry %q has no pattern", kind, line)
	}
	if _, err := regexp.Compile(spec.Pattern); err != nil {
		return RuleSpec{}, errors.Wrapf(err, "bad pattern %q", spec.Pattern)
	}
	return spec, nil
}

// BuildTable compiles specs, in order, into a Table.
func BuildTable(specs []RuleSpec) (Table, error) {
	table := make(Table, 0, len(specs))
	for _, spec := range specs {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad pattern %q", spec.Line, spec.Pattern)
		}
		rule := Rule{Pattern: re}
		switch spec.Kind {
		case KindLiteral:
			rule.Replacement = spec.Replacement
		case KindNamespaced:
			rule.Func = namespacedFunc(spec.Replacement)
		case KindCamel:
			rule.Func = Snake
		default:
			return nil, errors.Errorf("line %d: unknown rule kind %d", spec.Line, spec.Kind)
		}
		table = append(table, rule)
	}
	return table, nil
}

// LoadTable parses ruleFile and compiles it into a Table.
func LoadTable(ruleFile string) (Table, error) {
	specs, err := ParseRuleFile(ruleFile)
	if err != nil {
		return nil, err
	}
	return BuildTable(specs)
}
