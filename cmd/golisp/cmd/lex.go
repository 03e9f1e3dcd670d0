package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golisp-lang/golisp/internal/lexer"
	"github.com/golisp-lang/golisp/internal/token"
)

var (
	lexShowPos    bool
	lexShowType   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a golisp file and print its tokens",
	Long: `Tokenize a golisp source file and print the resulting token stream,
one token per line. Useful for debugging the reader.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "print no tokens (the lexer itself reports no errors)")
}

func runLex(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	tokens := lexer.New(string(content)).Tokens()
	for _, t := range tokens {
		if lexOnlyErrors {
			continue // the reader, not the lexer, is what rejects malformed tokens
		}
		printToken(t)
	}
	if !lexOnlyErrors {
		printToken(token.Token{Type: token.EOF})
	}
	return nil
}

func printToken(t token.Token) {
	var out string
	if lexShowType {
		out = fmt.Sprintf("[%-12s]", t.Type)
	}
	if t.Type == token.EOF {
		out += " EOF"
	} else {
		out += fmt.Sprintf(" %q", t.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", t.Pos.Line, t.Pos.Column)
	}
	fmt.Println(out)
}
