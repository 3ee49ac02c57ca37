// Package main provides the bigo command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/bigo/cmd/bigo/commands"
)

var version = "0.1.0"

func main() {
	if err := commands.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
