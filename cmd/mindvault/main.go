// MindVault: a second brain for the terminal.
//
// Usage:
//
//	mindvault add <text...>     Add a note (tags and mood are inferred)
//	mindvault list              Show recent notes
//	mindvault search <keyword>  Search note text
//	mindvault tag <tag>         Search by tag
//	mindvault stats             Count notes per mood
//	mindvault tui               Interactive browser
package main

import (
	"io"
	"os"
)

func main() {
	if err := execute(&app{}, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs one command line against a. The logger is released even when
// the command fails, since cobra skips post-run hooks on error.
func execute(a *app, args []string, out, errOut io.Writer) error {
	defer a.teardown()

	rootCmd := newRootCmd(a)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
