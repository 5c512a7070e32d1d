package parser

import (
	"testing"

	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lerr := lexer.New(src).Tokenize()
	if lerr != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", src, lerr)
	}
	prog, perr := Parse(toks)
	if perr != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, perr)
	}
	return prog
}

func TestParseLiterals(t *testing.T) {
	prog := parseSource(t, `#t "hi" 'sym 42 1/2 3.5`)
	if len(prog.Statements) != 6 {
		t.Fatalf("got %d statements, want 6", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*ast.Bool); !ok {
		t.Errorf("Statements[0] = %T, want *ast.Bool", prog.Statements[0])
	}
	if _, ok := prog.Statements[1].(*ast.Str); !ok {
		t.Errorf("Statements[1] = %T, want *ast.Str", prog.Statements[1])
	}
	sym, ok := prog.Statements[2].(*ast.Sym)
	if !ok || sym.Value != "sym" {
		t.Errorf("Statements[2] = %+v, want Sym{Value: sym}", prog.Statements[2])
	}
	if _, ok := prog.Statements[3].(*ast.Num); !ok {
		t.Errorf("Statements[3] = %T, want *ast.Num", prog.Statements[3])
	}
}

func TestParseProcCall(t *testing.T) {
	prog := parseSource(t, "(+ 1 2 3)")
	call, ok := prog.Statements[0].(*ast.ProcCall)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.ProcCall", prog.Statements[0])
	}
	if id, ok := call.Operator.(*ast.Id); !ok || id.Name != "+" {
		t.Errorf("Operator = %+v, want Id{+}", call.Operator)
	}
	if len(call.Args) != 3 {
		t.Fatalf("Args = %d, want 3", len(call.Args))
	}
}

func TestParseEmptyCallIsError(t *testing.T) {
	toks, _ := lexer.New("()").Tokenize()
	if _, err := Parse(toks); err == nil {
		t.Fatal("Parse(\"()\") returned no error")
	}
}

func TestParseIdDefine(t *testing.T) {
	prog := parseSource(t, "(define x 5)")
	def, ok := prog.Statements[0].(*ast.IdAssign)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.IdAssign", prog.Statements[0])
	}
	if def.Name != "x" {
		t.Errorf("Name = %q, want x", def.Name)
	}
}

func TestParseProcDefine(t *testing.T) {
	prog := parseSource(t, "(define (f x y) (+ x y))")
	def, ok := prog.Statements[0].(*ast.ProcAssign)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.ProcAssign", prog.Statements[0])
	}
	if def.Name != "f" {
		t.Errorf("Name = %q, want f", def.Name)
	}
	if len(def.Params) != 2 || def.Params[0] != "x" || def.Params[1] != "y" {
		t.Errorf("Params = %v, want [x y]", def.Params)
	}
}

func TestParseStructDefine(t *testing.T) {
	prog := parseSource(t, "(define-struct p [x y])")
	def, ok := prog.Statements[0].(*ast.StructAssign)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.StructAssign", prog.Statements[0])
	}
	if def.Name != "p" {
		t.Errorf("Name = %q, want p", def.Name)
	}
	if len(def.Fields) != 2 || def.Fields[0] != "x" || def.Fields[1] != "y" {
		t.Errorf("Fields = %v, want [x y]", def.Fields)
	}
}

func TestParseCheckExpect(t *testing.T) {
	prog := parseSource(t, "(check-expect (+ 1 1) 2)")
	ce, ok := prog.Statements[0].(*ast.CheckExpect)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.CheckExpect", prog.Statements[0])
	}
	if ce.Actual == nil || ce.Expected == nil {
		t.Error("CheckExpect missing Actual/Expected")
	}
}

func TestParseCond(t *testing.T) {
	prog := parseSource(t, "(cond [#f 1] [else 2])")
	c, ok := prog.Statements[0].(*ast.Cond)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.Cond", prog.Statements[0])
	}
	if len(c.Branches) != 1 {
		t.Fatalf("Branches = %d, want 1 (trailing else reclassified)", len(c.Branches))
	}
	if c.Else == nil {
		t.Fatal("Else = nil, want the reclassified else-branch")
	}
}

func TestParseQuotedList(t *testing.T) {
	prog := parseSource(t, "'(1 2 3)")
	if _, ok := prog.Statements[0].(*ast.ProcCall); !ok {
		t.Fatalf("Statements[0] = %T, want a cons/empty ProcCall chain", prog.Statements[0])
	}
}

func TestParseDefineNotTopLevelInsideCall(t *testing.T) {
	// A "define" used as an operator deep inside an ordinary call is left as
	// a plain ProcCall by the parser; the semantic analyzer reports the
	// precise "not at top level" diagnostic instead.
	prog := parseSource(t, "(f (define x 1))")
	call := prog.Statements[0].(*ast.ProcCall)
	if _, ok := call.Args[0].(*ast.ProcCall); !ok {
		t.Errorf("Args[0] = %T, want *ast.ProcCall (define left unspecialized)", call.Args[0])
	}
}

func TestUnclosedFormRejectedBeforeParsing(t *testing.T) {
	// internal/lexer's bracket pre-analyzer rejects this before the parser
	// ever runs, so Tokenize itself must fail here.
	if _, err := lexer.New("(+ 1 2").Tokenize(); err == nil {
		t.Fatal("Tokenize(\"(+ 1 2\") returned no error")
	}
}
