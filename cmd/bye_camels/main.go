package main

import (
	"github.com/cstructs/rewrite/internal/cmdutil"
)

func main() {
	cmdutil.Execute(newCommand())
}
