package main

import (
	"github.com/cstructs/rewrite"
	"github.com/cstructs/rewrite/internal/cmdutil"
)

const long = `Converts C code calling map__find to call map__get instead.

Output is sent to stdout.`

func main() {
	cmdutil.Execute(cmdutil.NewTableCommand("convert2", long, rewrite.MapRules))
}
