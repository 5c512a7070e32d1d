package interp

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
)

// Grounded on predefined/_boolean.py: And, Or, Not, BooleanToString,
// BooleanSymEqualHuh, FalseHuh.
func init() {
	register("and", 0, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		result := Bool(true)
		multi := len(args) > 1
		for i, a := range args {
			v, err := it.eval(a, env)
			if err != nil {
				return nil, err
			}
			b, err := asBool(pos, "and", v, multi, i)
			if err != nil {
				return nil, err
			}
			result = Bool(b)
			if !b {
				break
			}
		}
		return result, nil
	})

	register("or", 0, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		result := Bool(false)
		multi := len(args) > 1
		for i, a := range args {
			v, err := it.eval(a, env)
			if err != nil {
				return nil, err
			}
			b, err := asBool(pos, "or", v, multi, i)
			if err != nil {
				return nil, err
			}
			result = Bool(b)
			if b {
				break
			}
		}
		return result, nil
	})

	register("not", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		b, err := asBool(pos, "not", v, false, 0)
		if err != nil {
			return nil, err
		}
		return Bool(!b), nil
	})

	register("boolean->string", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		b, err := asBool(pos, "boolean->string", vals[0], false, 0)
		if err != nil {
			return nil, err
		}
		return Str(Bool(b).String()), nil
	})

	register("boolean=?", 2, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		first, err := asBool(pos, "boolean=?", vals[0], true, 0)
		if err != nil {
			return nil, err
		}
		for i, v := range vals[1:] {
			b, err := asBool(pos, "boolean=?", v, true, i+1)
			if err != nil {
				return nil, err
			}
			if b != first {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	})

	register("false?", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		b, ok := v.(Bool)
		return Bool(ok && !bool(b)), nil
	})
}
