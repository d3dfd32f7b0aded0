// Command algotrace runs an instrumented algorithm and dumps every snapshot it
// produces.
//
//	algotrace sort --algo quick --values 5,3,8,1,9 --format text
//	algotrace graph --algo dijkstra --start A --final
//	algotrace dp --algo lcs --a AGCAT --b GAC --format yaml
//	algotrace list --family tree
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}
