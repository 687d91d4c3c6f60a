package report

import (
	"iter"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Check evaluates a boolean starlark expression, such as
// "cycles == 53 and r2 == 0", with each of vars predeclared.
func Check(expr string, vars iter.Seq2[string, int]) (ok bool, err error) {
	thread := starlark.Thread{Name: "expect"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, value := range vars {
		pred[name] = starlark.MakeInt(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expect", prog, pred)
	if err != nil {
		return
	}

	st_rc, found := dict["rc"]
	if !found {
		err = ErrExpression(expr)
		return
	}

	st_bool, is_bool := st_rc.(starlark.Bool)
	if !is_bool {
		err = ErrExpression(expr)
		return
	}

	ok = bool(st_bool)
	return
}
