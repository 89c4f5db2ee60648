package rewrite

import (
	"regexp"
	"strings"
)

// CamelPattern matches camel-case identifiers: optional lowercase letters,
// one or more capitals, then a lowercase letter and any further letters.
// All-caps words only match when a lowercase letter follows.
const CamelPattern = `\b[a-z]*[A-Z]+[a-z][A-Za-z]*`

var (
	camelToken    = regexp.MustCompile(CamelPattern)
	boundaryUpper = regexp.MustCompile(`\B[A-Z]`)
)

// Tokenizer walks the camel-case tokens of one line, left to right. It
// finds each token only when Next is called and cannot be rewound.
type Tokenizer struct {
	line       string
	pos        int
	start, end int
}

func NewTokenizer(line string) *Tokenizer {
	return &Tokenizer{line: line}
}

// Next returns the next token, or false once the line is exhausted.
func (t *Tokenizer) Next() (string, bool) {
	if t.pos > len(t.line) {
		return "", false
	}
	// A token never ends right before a letter, so resuming on the
	// remainder cannot invent a word boundary that is not in the line.
	loc := camelToken.FindStringIndex(t.line[t.pos:])
	if loc == nil {
		t.pos = len(t.line) + 1
		return "", false
	}
	t.start, t.end = t.pos+loc[0], t.pos+loc[1]
	t.pos = t.end
	return t.line[t.start:t.end], true
}

// Span returns the byte offsets of the token last returned by Next.
func (t *Tokenizer) Span() (int, int) {
	return t.start, t.end
}

// Tokens returns every camel-case token of line in order of appearance.
func Tokens(line string) []string {
	var out []string
	t := NewTokenizer(line)
	for {
		tok, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// Snake converts one identifier to snake case: every capital that does not
// start the identifier gets a leading underscore, then everything is
// lowercased. Runs of capitals get one underscore each (HTTPServer ->
// h_t_t_p_server).
func Snake(token string) string {
	return strings.ToLower(boundaryUpper.ReplaceAllString(token, "_${0}"))
}

// Converter converts one top-level match at a time, emitting a double
// underscore at the first case transition and single ones after it.
type Converter struct {
	first bool
}

// Namespaced converts token, e.g. ArrayAddItem -> array__add_item.
func (c *Converter) Namespaced(token string) string {
	c.first = true
	return strings.ToLower(boundaryUpper.ReplaceAllStringFunc(token, c.separate))
}

func (c *Converter) separate(upper string) string {
	if c.first {
		c.first = false
		return "__" + upper
	}
	return "_" + upper
}
