package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	pagerui "github.com/kk-code-lab/fview/internal/ui/pager"
	"github.com/kk-code-lab/fview/internal/viewer"
)

func printHelp() {
	fmt.Print(`fview - Terminal file viewer

USAGE:
    fview [OPTIONS] PATH

Views text files with incremental loading, directories as sorted listings,
and binary files as a hex dump.

OPTIONS:
    -h, --help    Show this help message and exit
`)
}

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII content displays
	// correctly on terminals with limited locale support.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	args := os.Args[1:]
	if len(args) == 0 {
		printHelp()
		os.Exit(1)
	}
	if args[0] == "-h" || args[0] == "--help" {
		printHelp()
		os.Exit(0)
	}

	session := viewer.Open(args[0])
	if err := session.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	p, err := pagerui.New(session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	if err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
