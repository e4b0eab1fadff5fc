package cmd

import (
	"fmt"

	"github.com/cwbudde/go-simplelang/internal/lexer"
	"github.com/cwbudde/go-simplelang/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a SimpleLang file or expression and dump the code tree",
	Long: `Parse a SimpleLang program and print the resulting code tree.

The printed tree is the wrapped top-level form $(main (…)) that the
evaluator actually executes.

Examples:
  # Parse a script file
  simplelang parse script.sl

  # Parse an inline expression
  simplelang parse -e '$(print $(add 1 2))'`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)

	root := p.Parse()
	if msgs := p.Errors(); len(msgs) > 0 {
		for _, msg := range msgs {
			fmt.Printf("[Error-syntax] %s\n", msg)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(msgs))
	}

	fmt.Println(root.String())
	return nil
}
