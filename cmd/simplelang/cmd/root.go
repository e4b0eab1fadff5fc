package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/cwbudde/go-simplelang/internal/interp"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "simplelang [file]",
	Short: "SimpleLang interpreter",
	Long: `go-simplelang is a Go implementation of the SimpleLang scripting language.

SimpleLang is a small dynamically-typed, S-expression-based language:
a program is a sequence of parenthesized forms evaluated by prefixing
the '$' sigil.

Run a script file by passing its path, or start the interactive REPL
by passing no arguments.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.SilenceUsage = true
}

func runRoot(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}
	return runREPL()
}

// runFile reads, parses and evaluates a script file. Script errors are
// reported in the "[Error-x] message" format; execution has already
// aborted at that point so the process still exits cleanly.
func runFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Print("[Error-IO] That file doesn't exist!\n")
		os.Exit(1)
	}

	abortOnInterrupt()

	it := interp.New(os.Stdout, interp.WithInput(os.Stdin))
	if err := it.Run(string(content)); err != nil {
		fmt.Printf("%s\n", err)
	}
	return nil
}

// abortOnInterrupt terminates the process with the language's abort
// message when the user sends an interrupt signal.
func abortOnInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		<-ch
		fmt.Print("\nAborted by user.\n")
		os.Exit(0)
	}()
}
