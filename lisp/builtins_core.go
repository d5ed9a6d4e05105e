package lisp

import "fmt"

// builtinDefine implements def, which binds in the root scope, and =, which
// binds in the scope of the caller.
func builtinDefine(fn string) LBuiltinFunc {
	return func(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
		err := expectNonEmpty(fn, args, line)
		if err != nil {
			return nil, err
		}
		err = expectType(fn, args[0], LQExpr, line)
		if err != nil {
			return nil, err
		}
		syms := args[0].Cells
		err = expectSymbols(fn, syms, line)
		if err != nil {
			return nil, err
		}
		err = expectArity(fn, args, len(syms)+1, line)
		if err != nil {
			return nil, err
		}
		vals := make([]*LVal, len(syms))
		for i, v := range args[1:] {
			vals[i], err = rt.Eval(v, scope, line)
			if err != nil {
				return nil, err
			}
		}
		target := scope
		if fn == "def" {
			target = scope.Root()
		}
		for i := range syms {
			target.Bind(syms[i].Str, vals[i])
		}
		return Nil(), nil
	}
}

func expectSymbols(fn string, cells []*LVal, line int) error {
	for _, v := range cells {
		err := expectType(fn, v, LSymbol, line)
		if err != nil {
			return err
		}
	}
	return nil
}

// listCells returns the cells of a data list or call-form.
func listCells(fn string, v *LVal, line int) ([]*LVal, error) {
	if !v.IsList() {
		return nil, errIncompatibleType(fn, "Qexpr or Sexpr", v.TypeName(), line)
	}
	return v.Cells, nil
}

// builtinLambda creates a lambda that captures a new child of the caller's
// scope.
func builtinLambda(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	err := expectArity(lambdaOp, args, 2, line)
	if err != nil {
		return nil, err
	}
	formals, err := listCells(lambdaOp, args[0], line)
	if err != nil {
		return nil, err
	}
	err = expectSymbols(lambdaOp, formals, line)
	if err != nil {
		return nil, err
	}
	body, err := listCells(lambdaOp, args[1], line)
	if err != nil {
		return nil, err
	}
	return Lambda(scope.Child(), QExpr(formals), QExpr(body)), nil
}

// builtinFun defines a named lambda in the root scope.
//
//	(fun {name formals...} body)
func builtinFun(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	const fn = "fun"
	err := expectArity(fn, args, 2, line)
	if err != nil {
		return nil, err
	}
	sig, err := listCells(fn, args[0], line)
	if err != nil {
		return nil, err
	}
	err = expectNonEmpty(fn, sig, line)
	if err != nil {
		return nil, err
	}
	err = expectSymbols(fn, sig, line)
	if err != nil {
		return nil, err
	}
	body, err := listCells(fn, args[1], line)
	if err != nil {
		return nil, err
	}
	lambda := Lambda(scope.Child(), QExpr(copyCells(sig[1:])), QExpr(body))
	scope.Root().Bind(sig[0].Str, lambda)
	return Nil(), nil
}

// builtinIf evaluates one of two quoted branches.  The branch is evaluated as
// a call-form in the caller's scope.
func builtinIf(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	const fn = "if"
	err := expectArity(fn, args, 3, line)
	if err != nil {
		return nil, err
	}
	err = expectType(fn, args[0], LNumber, line)
	if err != nil {
		return nil, err
	}
	for _, v := range args[1:] {
		err = expectType(fn, v, LQExpr, line)
		if err != nil {
			return nil, err
		}
	}
	branch := args[2]
	if args[0].Num != 0 {
		branch = args[1]
	}
	return rt.EvalSExpr(SExpr(branch.Cells), scope, line)
}

// builtinEval evaluates the elements of a data list in order and returns the
// last value.
func builtinEval(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	err := expectArity("eval", args, 1, line)
	if err != nil {
		return nil, err
	}
	err = expectType("eval", args[0], LQExpr, line)
	if err != nil {
		return nil, err
	}
	return rt.evalSequence(args[0].Cells, scope, line)
}

func builtinPrint(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	err := expectArity("print", args, 1, line)
	if err != nil {
		return nil, err
	}
	_, err = fmt.Fprintln(rt.Stdout, args[0].String())
	if err != nil {
		return nil, errIO(err, line, "print: %v", err)
	}
	return Nil(), nil
}

func builtinLoad(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	path, err := stringArg("load", args, line)
	if err != nil {
		return nil, err
	}
	return rt.loadFile(path, scope, line)
}

func builtinRead(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	path, err := stringArg("read", args, line)
	if err != nil {
		return nil, err
	}
	source, err := rt.readSource(path, line)
	if err != nil {
		return nil, err
	}
	return String(string(source)), nil
}
