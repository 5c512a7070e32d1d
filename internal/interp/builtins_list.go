package interp

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/numeric"
)

// Grounded on predefined/_list.py: Append, Cons, ConsHuh, EmptyHuh, Length,
// List, ListHuh, MakeList, Member, Rest, Reverse, First..Eighth. `empty`
// itself is not in this registry — original_source never registers it as a
// callable BuiltInProc (there is no `class Empty` anywhere in the package),
// so it is bound directly as the value List{} in New, the same way a
// define-struct type name is bound as a StructType rather than routed
// through Builtins.
//
// foldr/foldl/map/filter/andmap/ormap have no original_source counterpart
// (see DESIGN.md); they round out the list surface, implemented with
// ordinary Racket/BSL semantics and restricted to a single list argument to
// keep this beginning-student surface small.
func init() {
	register("cons", 2, intp(2), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		rest, err := asList(pos, "cons", vals[1], true, 1)
		if err != nil {
			return nil, err
		}
		result := make(List, 0, len(rest)+1)
		result = append(result, vals[0])
		result = append(result, rest...)
		return result, nil
	})

	register("cons?", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		l, ok := v.(List)
		return Bool(ok && len(l) > 0), nil
	})

	register("empty?", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		l, ok := v.(List)
		return Bool(ok && len(l) == 0), nil
	})

	register("list?", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		_, ok := v.(List)
		return Bool(ok), nil
	})

	register("first", 1, intp(1), nthAccessor("first", 0))
	register("second", 1, intp(1), nthAccessor("second", 1))
	register("third", 1, intp(1), nthAccessor("third", 2))
	register("fourth", 1, intp(1), nthAccessor("fourth", 3))
	register("fifth", 1, intp(1), nthAccessor("fifth", 4))
	register("sixth", 1, intp(1), nthAccessor("sixth", 5))
	register("seventh", 1, intp(1), nthAccessor("seventh", 6))
	register("eighth", 1, intp(1), nthAccessor("eighth", 7))

	register("rest", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		l, err := asList(pos, "rest", vals[0], false, 0)
		if err != nil {
			return nil, err
		}
		if len(l) == 0 {
			return nil, diag.IncorrectArgumentTypeErr(pos, "rest", "non-empty list", describeValue(vals[0]), false, 0)
		}
		return append(List{}, l[1:]...), nil
	})

	register("length", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		l, err := asList(pos, "length", vals[0], false, 0)
		if err != nil {
			return nil, err
		}
		return Num{N: numeric.NewIntegerFromInt64(int64(len(l)))}, nil
	})

	register("list", 0, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		return append(List{}, vals...), nil
	})

	register("make-list", 2, intp(2), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		count, err := asNum(pos, "make-list", vals[0], "integer", true, 0)
		if err != nil {
			return nil, err
		}
		n, ok := count.Integer()
		if !ok || n.Sign() < 0 {
			return nil, diag.IncorrectArgumentTypeErr(pos, "make-list", "natural number", describeValue(vals[0]), true, 0)
		}
		result := make(List, n.Int64())
		for i := range result {
			result[i] = vals[1]
		}
		return result, nil
	})

	register("append", 0, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		result := List{}
		for i, v := range vals {
			l, err := asList(pos, "append", v, multi, i)
			if err != nil {
				return nil, err
			}
			result = append(result, l...)
		}
		return result, nil
	})

	register("member", 2, intp(2), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		l, err := asList(pos, "member", vals[1], true, 1)
		if err != nil {
			return nil, err
		}
		for _, e := range l {
			if Equal(e, vals[0]) {
				return Bool(true), nil
			}
		}
		return Bool(false), nil
	})

	register("reverse", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		l, err := asList(pos, "reverse", vals[0], false, 0)
		if err != nil {
			return nil, err
		}
		result := make(List, len(l))
		for i, v := range l {
			result[len(l)-1-i] = v
		}
		return result, nil
	})

	register("map", 2, intp(2), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		proc, err := asProc(pos, "map", vals[0], true, 0)
		if err != nil {
			return nil, err
		}
		l, err := asList(pos, "map", vals[1], true, 1)
		if err != nil {
			return nil, err
		}
		result := make(List, len(l))
		for i, e := range l {
			v, err := it.applyProc(pos, proc.Name, []Value{e})
			if err != nil {
				return nil, err
			}
			result[i] = v
		}
		return result, nil
	})

	register("filter", 2, intp(2), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		proc, err := asProc(pos, "filter", vals[0], true, 0)
		if err != nil {
			return nil, err
		}
		l, err := asList(pos, "filter", vals[1], true, 1)
		if err != nil {
			return nil, err
		}
		result := List{}
		for _, e := range l {
			v, err := it.applyProc(pos, proc.Name, []Value{e})
			if err != nil {
				return nil, err
			}
			keep, err := asBool(pos, "filter", v, false, 0)
			if err != nil {
				return nil, err
			}
			if keep {
				result = append(result, e)
			}
		}
		return result, nil
	})

	register("foldl", 3, intp(3), fold("foldl", false))
	register("foldr", 3, intp(3), fold("foldr", true))

	register("andmap", 2, intp(2), quantify("andmap", true))
	register("ormap", 2, intp(2), quantify("ormap", false))
}

func nthAccessor(name string, idx int) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		l, err := asList(pos, name, vals[0], false, 0)
		if err != nil {
			return nil, err
		}
		if len(l) <= idx {
			return nil, diag.IncorrectArgumentTypeErr(pos, name, "list of sufficient length", describeValue(vals[0]), false, 0)
		}
		return l[idx], nil
	}
}

// fold implements foldl (left-to-right accumulation) and, when rightToLeft
// is true, foldr (right-to-left), both calling proc as `(proc elem acc)`
// per Racket's argument order.
func fold(name string, rightToLeft bool) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		proc, err := asProc(pos, name, vals[0], true, 0)
		if err != nil {
			return nil, err
		}
		l, err := asList(pos, name, vals[2], true, 2)
		if err != nil {
			return nil, err
		}
		acc := vals[1]
		if rightToLeft {
			for i := len(l) - 1; i >= 0; i-- {
				acc, err = it.applyProc(pos, proc.Name, []Value{l[i], acc})
				if err != nil {
					return nil, err
				}
			}
		} else {
			for _, e := range l {
				acc, err = it.applyProc(pos, proc.Name, []Value{e, acc})
				if err != nil {
					return nil, err
				}
			}
		}
		return acc, nil
	}
}

// quantify implements andmap (all) and, when all is false, ormap (any),
// short-circuiting exactly like the `and`/`or` special forms do.
func quantify(name string, all bool) BuiltinFunc {
	return func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		proc, err := asProc(pos, name, vals[0], true, 0)
		if err != nil {
			return nil, err
		}
		l, err := asList(pos, name, vals[1], true, 1)
		if err != nil {
			return nil, err
		}
		for _, e := range l {
			v, err := it.applyProc(pos, proc.Name, []Value{e})
			if err != nil {
				return nil, err
			}
			b, err := asBool(pos, name, v, false, 0)
			if err != nil {
				return nil, err
			}
			if b != all {
				return Bool(!all), nil
			}
		}
		return Bool(all), nil
	}
}
