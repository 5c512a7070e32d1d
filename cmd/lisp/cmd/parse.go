package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/lexer"
	"github.com/mekolab/lisp-interp/internal/parser"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source code and display the syntax tree",
	Long: `Parse a program and dump its syntax tree.

If no file is provided, reads from stdin. Use -e to parse a single
expression given on the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	input, _, err := readInput(parseEvalExpr, args)
	if err != nil {
		return err
	}

	toks, terr := lexer.New(input).Tokenize()
	if terr != nil {
		fmt.Fprintln(os.Stderr, terr.Error())
		return fmt.Errorf("tokenizing failed")
	}

	prog, perr := parser.Parse(toks)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.Error())
		return fmt.Errorf("parsing failed")
	}

	for _, stmt := range prog.Statements {
		dumpASTNode(stmt, 0)
	}
	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.Bool:
		fmt.Printf("%sBool: %v\n", prefix, n.Value)
	case *ast.Num:
		fmt.Printf("%sNum: %s\n", prefix, n.Value.String())
	case *ast.Str:
		fmt.Printf("%sStr: %q\n", prefix, n.Value)
	case *ast.Sym:
		fmt.Printf("%sSym: '%s\n", prefix, n.Value)
	case *ast.Id:
		fmt.Printf("%sId: %s\n", prefix, n.Name)
	case *ast.ProcCall:
		fmt.Printf("%sProcCall\n", prefix)
		dumpASTNode(n.Operator, indent+1)
		for _, arg := range n.Args {
			dumpASTNode(arg, indent+1)
		}
	case *ast.IdAssign:
		fmt.Printf("%sIdAssign: %s\n", prefix, n.Name)
		dumpASTNode(n.Value, indent+1)
	case *ast.ProcAssign:
		fmt.Printf("%sProcAssign: %s%v\n", prefix, n.Name, n.Params)
		dumpASTNode(n.Body, indent+1)
	case *ast.StructAssign:
		fmt.Printf("%sStructAssign: %s%v\n", prefix, n.Name, n.Fields)
	case *ast.Cond:
		fmt.Printf("%sCond\n", prefix)
		for _, b := range n.Branches {
			fmt.Printf("%s  branch:\n", prefix)
			dumpASTNode(b.Predicate, indent+2)
			dumpASTNode(b.Body, indent+2)
		}
		if n.Else != nil {
			fmt.Printf("%s  else:\n", prefix)
			dumpASTNode(n.Else.Body, indent+2)
		}
	case *ast.CheckExpect:
		fmt.Printf("%sCheckExpect\n", prefix)
		dumpASTNode(n.Actual, indent+1)
		dumpASTNode(n.Expected, indent+1)
	default:
		fmt.Printf("%s%T\n", prefix, node)
	}
}
