package gen

import (
	"github.com/cstructs/rewrite"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

type ruleCall struct {
	Fun  string
	Args []string
}

// tableCalls returns the package name and the rule constructor calls of
// the table declared as name in src.
func tableCalls(t *testing.T, src []byte, name string) (string, []ruleCall) {
	t.Helper()
	f, err := decorator.Parse(src)
	require.NoError(t, err)

	var calls []ruleCall
	found := false
	dst.Inspect(f, func(n dst.Node) bool {
		vs, ok := n.(*dst.ValueSpec)
		if !ok || len(vs.Names) != 1 || vs.Names[0].Name != name {
			return true
		}
		found = true
		lit := vs.Values[0].(*dst.CompositeLit)
		for _, elt := range lit.Elts {
			call := elt.(*dst.CallExpr)
			rc := ruleCall{}
			switch fun := call.Fun.(type) {
			case *dst.Ident:
				rc.Fun = fun.Name
			case *dst.SelectorExpr:
				rc.Fun = fun.X.(*dst.Ident).Name + "." + fun.Sel.Name
			}
			for _, a := range call.Args {
				s, err := strconv.Unquote(a.(*dst.BasicLit).Value)
				require.NoError(t, err)
				rc.Args = append(rc.Args, s)
			}
			calls = append(calls, rc)
		}
		return false
	})
	require.True(t, found, "no table %s", name)
	return f.Name.Name, calls
}

func TestGenerate(t *testing.T) {
	specs := []rewrite.RuleSpec{
		{Kind: rewrite.KindLiteral, Pattern: `\bCList\b`, Replacement: "List"},
		{Kind: rewrite.KindNamespaced, Pattern: `CList[A-Z]\w*`, Replacement: "C"},
		{Kind: rewrite.KindCamel, Pattern: "a`b"},
	}
	src, err := Generate(Options{Package: "rewrite", Name: "ListRules", Source: "list.rules"}, specs)
	require.NoError(t, err)

	assert.Contains(t, string(src), "// Code generated by ruletable from list.rules. DO NOT EDIT.")
	assert.Contains(t, string(src), "// ListRules is the rule table generated from list.rules.")
	assert.NotContains(t, string(src), "import")

	pkg, calls := tableCalls(t, src, "ListRules")
	assert.Equal(t, "rewrite", pkg)
	assert.Equal(t, []ruleCall{
		{Fun: "Literal", Args: []string{`\bCList\b`, "List"}},
		{Fun: "Namespaced", Args: []string{`CList[A-Z]\w*`, "C"}},
		{Fun: "Camel", Args: []string{"a`b"}},
	}, calls)
}

func TestGenerateOtherPackage(t *testing.T) {
	specs := []rewrite.RuleSpec{
		{Kind: rewrite.KindLiteral, Pattern: `\bmap__find\b`, Replacement: "map__get"},
	}
	src, err := Generate(Options{Package: "tables", Name: "MapRules", Source: "map.rules"}, specs)
	require.NoError(t, err)
	assert.Contains(t, string(src), `import "github.com/cstructs/rewrite"`)

	pkg, calls := tableCalls(t, src, "MapRules")
	assert.Equal(t, "tables", pkg)
	assert.Equal(t, []ruleCall{
		{Fun: "rewrite.Literal", Args: []string{`\bmap__find\b`, "map__get"}},
	}, calls)
}

func TestGenerateInvalidNames(t *testing.T) {
	_, err := Generate(Options{Package: "rewrite", Name: "not a name"}, nil)
	assert.Error(t, err)
	_, err = Generate(Options{Package: "9pkg", Name: "Rules"}, nil)
	assert.Error(t, err)
}

// The checked-in tables must be what go generate would write.
func TestGenerateMatchesCheckedInTables(t *testing.T) {
	for _, tt := range []struct{ name, ruleFile, goFile string }{
		{"ArrayRules", "array.rules", "array_rules.go"},
		{"MapRules", "map.rules", "map_rules.go"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			root := filepath.Join("..", "..")
			specs, err := rewrite.ParseRuleFile(filepath.Join(root, "rules", tt.ruleFile))
			require.NoError(t, err)
			src, err := Generate(Options{Package: "rewrite", Name: tt.name, Source: tt.ruleFile}, specs)
			require.NoError(t, err)
			checkedIn, err := os.ReadFile(filepath.Join(root, tt.goFile))
			require.NoError(t, err)

			_, want := tableCalls(t, checkedIn, tt.name)
			_, got := tableCalls(t, src, tt.name)
			assert.Equal(t, want, got)
		})
	}
}
