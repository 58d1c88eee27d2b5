// Command myunit runs the bundled test suite.
package main

import (
	"os"

	"github.com/roach88/myunit/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
