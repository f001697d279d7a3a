package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		fmt.Fprintln(os.Stderr, "use 'kwic --help' for usage")
		os.Exit(1)
	}
}
