package cmd

import (
	"fmt"
	"os"

	"github.com/mekolab/lisp-interp/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr string
	showPos     bool
	onlyErrors  bool
	lexTrace    bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file or expression",
	Long: `Tokenize a program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
source code is tokenized.

Examples:
  # Tokenize a script file
  lisp lex script.lsp

  # Tokenize an inline expression
  lisp lex -e "(+ 1 2)"

  # Show token positions
  lisp lex --show-pos script.lsp`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only the bracket/tokenizing error, if any")
	lexCmd.Flags().BoolVar(&lexTrace, "trace", false, "print each token as the lexer scans it")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	var opts []lexer.LexerOption
	if lexTrace {
		opts = append(opts, lexer.WithTracing(true))
	}
	toks, terr := lexer.New(input, opts...).Tokenize()
	if terr != nil {
		fmt.Fprintln(os.Stderr, terr.Error())
		return fmt.Errorf("tokenizing failed")
	}

	if !onlyErrors {
		for _, tok := range toks {
			printToken(tok)
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(toks))
	}

	return nil
}

func printToken(tok lexer.Token) {
	output := fmt.Sprintf("[%-11s]", tok.Type)

	if tok.Type == lexer.EOF {
		output += " EOF"
	} else if tok.Text == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Text)
	}

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}
