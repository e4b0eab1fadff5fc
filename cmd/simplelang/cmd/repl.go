package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/cwbudde/go-simplelang/internal/interp"
)

// runREPL starts the interactive read-eval-print loop. Each line is a
// complete program: the main latch is reset before every evaluation so
// repeated top-level execution works, and a trailing newline is printed
// whenever the line produced output.
func runREPL() error {
	fmt.Printf("SimpleLang REPL (platform : %s)\n", runtime.GOOS)

	abortOnInterrupt()

	// The REPL and the input built-in share one reader so that prompts
	// inside scripts consume from the same buffered stream.
	in := bufio.NewReader(os.Stdin)
	it := interp.New(os.Stdout, interp.WithInput(in))

	for {
		fmt.Print("> ")

		line, err := in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				if line != "" {
					evalLine(it, line)
				}
				fmt.Println()
				return nil
			}
			return err
		}

		evalLine(it, line)
	}
}

// evalLine evaluates one REPL line and reports any script error.
func evalLine(it *interp.Interpreter, line string) {
	it.ResetSession()

	if err := it.Run(line); err != nil {
		fmt.Printf("%s\n", err)
	}

	if it.Printed() {
		fmt.Println()
		it.ResetPrinted()
	}
}
