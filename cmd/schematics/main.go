// Command schematics is a small command-line client for the Schematics API.
//
// Usage:
//
//	schematics workspaces list
//	schematics workspaces get <workspace-id>
//	schematics jobs list --workspace <workspace-id>
//	schematics call GetAction actionID=<action-id>
//	schematics operations
//
// Settings come from a YAML profile (--config, default ~/.schematics.yaml),
// a .env file in the working directory and SCHEMATICS_* environment
// variables, in increasing order of precedence.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
