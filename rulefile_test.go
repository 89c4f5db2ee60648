package rewrite

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseRules(t *testing.T) {
	const src = `
# comment
rules:
  CArrayStruct -> ArrayStruct
  foo ->
namespace:
  CList[A-Z]\w* -> C
camel:
  \bget[A-Z]\w*
rules:
  \bCList\b -> List
`
	specs, err := ParseRules(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []RuleSpec{
		{Kind: KindLiteral, Pattern: "CArrayStruct", Replacement: "ArrayStruct", Line: 4},
		{Kind: KindLiteral, Pattern: "foo", Replacement: "", Line: 5},
		{Kind: KindNamespaced, Pattern: `CList[A-Z]\w*`, Replacement: "C", Line: 7},
		{Kind: KindCamel, Pattern: `\bget[A-Z]\w*`, Line: 9},
		{Kind: KindLiteral, Pattern: `\bCList\b`, Replacement: "List", Line: 11},
	}, specs)

	table, err := BuildTable(specs)
	require.NoError(t, err)
	assert.Equal(t, "List l = list__new(); x = get_value();",
		table.Apply("CList l = CListNew(); x = getValue();"))
}

func TestParseRulesErrors(t *testing.T) {
	tests := map[string]string{
		"outside section": "foo -> bar\n",
		"missing arrow":   "rules:\nfoo bar\n",
		"bad pattern":     "rules:\nfoo( -> bar\n",
		"empty pattern":   "namespace:\n -> C\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRules(strings.NewReader(src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line ")
		})
	}
}

func TestParseRuleFileMissing(t *testing.T) {
	_, err := ParseRuleFile(filepath.Join(t.TempDir(), "missing.rules"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildTableUnknownKind(t *testing.T) {
	_, err := BuildTable([]RuleSpec{{Kind: 42, Pattern: "x", Line: 1}})
	assert.Error(t, err)
}

// The rule files must stay in step with the generated tables.
func TestRuleFilesMatchGeneratedTables(t *testing.T) {
	tests := []struct {
		ruleFile string
		table    Table
		input    string
	}{
		{"array.rules", ArrayRules, "carray.h"},
		{"map.rules", MapRules, "map.c"},
	}
	for _, tt := range tests {
		t.Run(tt.ruleFile, func(t *testing.T) {
			loaded, err := LoadTable(filepath.Join("rules", tt.ruleFile))
			require.NoError(t, err)
			require.Len(t, loaded, len(tt.table))
			for i := range loaded {
				assert.Equal(t, tt.table[i].String(), loaded[i].String(), "rule %d", i)
				assert.Equal(t, tt.table[i].Replacement, loaded[i].Replacement, "rule %d", i)
				assert.Equal(t, tt.table[i].Func == nil, loaded[i].Func == nil, "rule %d", i)
			}

			src, err := os.ReadFile(filepath.Join("testdata", tt.input))
			require.NoError(t, err)
			var fromFile, generated bytes.Buffer
			require.NoError(t, NewEngine(loaded).Process(context.Background(), bytes.NewReader(src), &fromFile))
			require.NoError(t, NewEngine(tt.table).Process(context.Background(), bytes.NewReader(src), &generated))
			assert.Equal(t, generated.String(), fromFile.String())
		})
	}
}
