package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-simplelang/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a SimpleLang file or expression",
	Long: `Tokenize (lex) a SimpleLang program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
SimpleLang source code is tokenized.

Examples:
  # Tokenize a script file
  simplelang lex script.sl

  # Tokenize an inline expression
  simplelang lex -e '$(let x 42)'

  # Show token types and positions
  simplelang lex --show-type --show-pos script.sl`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

// readInput resolves the source text for the front-end debug commands:
// inline code via -e, or the contents of the file argument.
func readInput(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	errorCount := 0

	for {
		tok := l.NextToken()
		if tok.Type == lexer.ILLEGAL {
			errorCount++
		}

		printToken(tok)

		if tok.Type == lexer.EOF {
			break
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok lexer.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-7s]", tok.Type)
	}

	switch tok.Type {
	case lexer.EOF:
		output += " EOF"
	case lexer.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	default:
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(output)
}
