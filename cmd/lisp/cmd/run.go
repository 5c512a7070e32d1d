package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mekolab/lisp-interp/internal/diag"
	cerrors "github.com/mekolab/lisp-interp/internal/errors"
	"github.com/mekolab/lisp-interp/internal/lexer"
	"github.com/mekolab/lisp-interp/internal/parser"
	"github.com/mekolab/lisp-interp/pkg/lisp"
	"github.com/spf13/cobra"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

var (
	runEvalExpr string
	showContext bool
	logStack    bool
	dumpAST     bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program and print its results",
	Long: `Execute a program from a file or inline expression, printing the
value of every top-level expression and the outcome of every check-expect,
in source order.

Examples:
  # Run a script file
  lisp run program.lsp

  # Evaluate an inline expression
  lisp run -e "(+ 1 2)"

  # Render a failure with a caret pointing at the offending column
  lisp run --context program.lsp

  # Print the call stack an unhandled error left behind
  lisp run --log-stack program.lsp

  # Print the parsed syntax tree before running
  lisp run --dump-ast program.lsp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&showContext, "context", false, "render a failing diagnostic with its source line and a caret")
	runCmd.Flags().BoolVar(&logStack, "log-stack", false, "print the interpreter's call stack after a runtime error")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed syntax tree before running it")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(runEvalExpr, args)
	if err != nil {
		return err
	}

	if dumpAST {
		if err := dumpParsedAST(input); err != nil {
			return err
		}
	}

	if logStack {
		return runWithStackLogging(input, filename)
	}

	result, rerr := lisp.Interpret(input)
	if rerr != nil {
		reportError(rerr, input, filename)
		return fmt.Errorf("execution failed")
	}
	printResult(result)
	return nil
}

func runWithStackLogging(input, filename string) error {
	result, it, rerr := lisp.InterpretWithTrace(input, true)
	if rerr != nil {
		reportError(rerr, input, filename)
		if it != nil && len(it.Stack) > 0 {
			fmt.Fprintln(os.Stderr, "Call stack:")
			fmt.Fprintln(os.Stderr, it.Stack.String())
		}
		return fmt.Errorf("execution failed")
	}
	printResult(result)
	return nil
}

// dumpParsedAST re-lexes and re-parses input to print its syntax tree ahead
// of execution, sharing dumpASTNode with the parse command. Running it
// twice through the front end is wasted work, but --dump-ast is a debugging
// aid, not a hot path.
func dumpParsedAST(input string) error {
	toks, terr := lexer.New(input).Tokenize()
	if terr != nil {
		return nil
	}
	prog, perr := parser.Parse(toks)
	if perr != nil {
		return nil
	}
	for _, stmt := range prog.Statements {
		dumpASTNode(stmt, 0)
	}
	fmt.Println("---")
	return nil
}

func printResult(result *lisp.Result) {
	for _, out := range result.Outputs {
		fmt.Println(out)
	}
	for _, test := range result.Tests {
		if test.Passed {
			fmt.Printf("check-expect at %d:%d: %s\n", test.Line, test.Column, passStyle.Render("PASS"))
		} else {
			fmt.Printf("check-expect at %d:%d: %s (got %s, expected %s)\n",
				test.Line, test.Column, failStyle.Render("FAIL"), test.Actual, test.Expected)
		}
	}
}

func reportError(err error, source, filename string) {
	if !showContext {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	diagErr, ok := err.(*diag.Error)
	if !ok {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	compilerErr := cerrors.FromDiagError(diagErr, source, filename)
	fmt.Fprintln(os.Stderr, compilerErr.Format(true))
}
