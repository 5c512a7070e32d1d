package interp

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
)

// Grounded on predefined/_symbol.py: SymbolHuh, SymbolToString,
// SymbolSymEqualHuh.
func init() {
	register("symbol?", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		_, ok := v.(Sym)
		return Bool(ok), nil
	})

	register("symbol->string", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		s, err := asSym(pos, "symbol->string", vals[0], false, 0)
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	})

	register("symbol=?", 1, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		first, err := asSym(pos, "symbol=?", vals[0], multi, 0)
		if err != nil {
			return nil, err
		}
		for i, v := range vals[1:] {
			s, err := asSym(pos, "symbol=?", v, multi, i+1)
			if err != nil {
				return nil, err
			}
			if s != first {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	})
}
