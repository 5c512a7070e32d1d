package interp

import (
	"strings"

	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
	"github.com/mekolab/lisp-interp/internal/numeric"
)

// Grounded on predefined/_string.py: StringHuh, StringLength, StringAppend.
// string=?/string<? follow the same n-ary chained-comparison shape as
// SymEqual/SymLessThan in predefined/_numeric.py, rounding out string
// comparisons beyond the `string?` predicate spec.md §4.5 names.
func init() {
	register("string?", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		v, err := it.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		_, ok := v.(Str)
		return Bool(ok), nil
	})

	register("string-length", 1, intp(1), func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		s, err := asStr(pos, "string-length", vals[0], false, 0)
		if err != nil {
			return nil, err
		}
		return Num{N: numeric.NewIntegerFromInt64(int64(len([]rune(s))))}, nil
	})

	register("string-append", 0, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		var sb strings.Builder
		for i, v := range vals {
			s, err := asStr(pos, "string-append", v, multi, i)
			if err != nil {
				return nil, err
			}
			sb.WriteString(s)
		}
		return Str(sb.String()), nil
	})

	register("string=?", 1, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		first, err := asStr(pos, "string=?", vals[0], multi, 0)
		if err != nil {
			return nil, err
		}
		for i, v := range vals[1:] {
			s, err := asStr(pos, "string=?", v, multi, i+1)
			if err != nil {
				return nil, err
			}
			if s != first {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	})

	register("string<?", 1, nil, func(it *Interp, env *Env, args []ast.Node, pos diag.Position) (Value, *diag.Error) {
		vals, err := evalArgs(it, env, args)
		if err != nil {
			return nil, err
		}
		multi := len(vals) > 1
		strs := make([]string, len(vals))
		for i, v := range vals {
			s, err := asStr(pos, "string<?", v, multi, i)
			if err != nil {
				return nil, err
			}
			strs[i] = s
		}
		for i := 1; i < len(strs); i++ {
			if !(strs[i-1] < strs[i]) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	})
}
