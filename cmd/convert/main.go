package main

import (
	"github.com/cstructs/rewrite"
	"github.com/cstructs/rewrite/internal/cmdutil"
)

const long = `Converts C code using the old CArray names to the array__ names.

Renames with no simple pattern come from a fixed table; every other
CArrayFooBar becomes array__foo_bar and a bare CArray becomes Array.
Output is sent to stdout.`

func main() {
	cmdutil.Execute(cmdutil.NewTableCommand("convert", long, rewrite.ArrayRules))
}
