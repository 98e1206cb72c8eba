package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/meldlab/pbckit/internal/cli"
	"github.com/meldlab/pbckit/pkg/pbc"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(pbc.ExitPanic)
		}
	}()

	// Deliberate panic used to exercise the recover path end to end.
	if os.Getenv("PBCKIT_TEST_PANIC") == "1" {
		panic("test panic triggered by PBCKIT_TEST_PANIC")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(pbc.ExitCodeForError(err))
	}
}
