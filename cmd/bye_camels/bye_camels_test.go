package main

import (
	"bytes"
	"github.com/cstructs/rewrite/internal/cmdutil"
	"github.com/cstructs/rewrite/internal/logging"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func init() {
	color.NoColor = true
	logging.DefaultLogger.SetOutput(io.Discard)
}

func runCommand(t *testing.T, stdin string, args ...string) (int, string) {
	t.Helper()
	cmd := newCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	return cmdutil.Run(cmd, args), out.String()
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "in.c")
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
	return name
}

func TestUsage(t *testing.T) {
	code, out := runCommand(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "bye_camels -i <input_file> <output_file>")

	in := writeInput(t, "fooBar\n")
	code, _ = runCommand(t, "", "-i", in)
	assert.Equal(t, 2, code)
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	outName := filepath.Join(dir, "out.c")
	code, _ := runCommand(t, "", filepath.Join(dir, "nope.c"), outName)
	assert.Equal(t, 1, code)
	assert.NoFileExists(t, outName)
}

func TestBatchToStdout(t *testing.T) {
	in := writeInput(t, "myVarName = getValue();\n")
	code, out := runCommand(t, "", in)
	assert.Equal(t, 0, code)
	assert.Equal(t, "my_var_name = get_value();\n", out)
}

func TestBatchToFile(t *testing.T) {
	in := writeInput(t, "myVarName = getValue();\n")
	outName := filepath.Join(t.TempDir(), "out.c")
	code, out := runCommand(t, "", in, outName)
	assert.Equal(t, 0, code)
	assert.Empty(t, out)

	data, err := os.ReadFile(outName)
	require.NoError(t, err)
	assert.Equal(t, "my_var_name = get_value();\n", string(data))
}

func TestInteractive(t *testing.T) {
	in := writeInput(t, "fooBar = bazQux;\nreturn fooBar;\n")
	outName := filepath.Join(t.TempDir(), "out.c")
	code, prompts := runCommand(t, "n\n\n", "-i", in, outName)
	assert.Equal(t, 0, code)
	assert.Equal(t, `Update "fooBar"? [Y/n] Update "bazQux"? [Y/n] `, prompts)

	data, err := os.ReadFile(outName)
	require.NoError(t, err)
	assert.Equal(t, "fooBar = baz_qux;\nreturn fooBar;\n", string(data))
}

func TestInteractiveEOFLeavesNoOutput(t *testing.T) {
	in := writeInput(t, "fooBar = bazQux;\n")
	outName := filepath.Join(t.TempDir(), "out.c")
	code, _ := runCommand(t, "y\n", "-i", in, outName)
	assert.Equal(t, 1, code)
	assert.NoFileExists(t, outName)
}
