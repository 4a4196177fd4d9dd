// Package main provides the entry point for scalaris-pic, the tool that builds
// and publishes default attributes for Scalaris deployment targets.
package main

import (
	"os"

	"github.com/concave-dev/scalaris-pic/cmd/scalaris-pic/commands"
)

func init() {
	commands.SetupCommands()
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
