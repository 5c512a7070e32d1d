package interp

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
)

// if is registered as an ordinary builtin (controlflow.py's If) so that an
// `if` appearing anywhere other than tail position — e.g. nested inside a
// larger expression like `(+ 1 (if p a b))` — is evaluated exactly like any
// other call. Tail-position self-recursion through `if` never reaches this
// function: evalTail intercepts that case directly so it can trampoline
// instead of recursing. Both paths apply the same "evaluate only the
// selected branch" rule.
func init() {
	register("if", 3, intp(3), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		test, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		b, err := asBool(pos, "if", test, true, 0)
		if err != nil {
			return nil, err
		}
		if b {
			return it.eval(args[1], env)
		}
		return it.eval(args[2], env)
	})
}
