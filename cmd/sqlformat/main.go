// Command sqlformat is a thin command-line wrapper around the sqlformat
// library: read SQL from a file, stdin, or an inline argument, format it
// for one of the twelve supported dialects, and write the result out.
package main

import (
	"fmt"
	"os"

	"github.com/sqlfmt-go/sqlformat/internal/cli"
)

// Version information, overridden at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
