package lisp

// Eval evaluates v in the context of scope and returns the resulting LVal.
// The line is reported by any error produced during evaluation.
//
// NOTE:  Eval recurses once per level of nesting in v.  Deeply nested
// expressions and deep recursion in lisp functions consume goroutine stack.
func (rt *Runtime) Eval(v *LVal, scope Scope, line int) (*LVal, error) {
	switch v.Type {
	case LSymbol:
		val, ok := scope.Lookup(v.Str)
		if !ok {
			return nil, errUndefinedSymbol(v.Str, line)
		}
		return val, nil
	case LComment:
		return Nil(), nil
	case LSExpr:
		return rt.EvalSExpr(v, scope, line)
	default:
		return v, nil
	}
}

// EvalSExpr evaluates every cell of s from left to right and calls the first
// result with the remaining results as arguments.  An expression with a single
// cell evaluates to the value of that cell.
func (rt *Runtime) EvalSExpr(s *LVal, scope Scope, line int) (*LVal, error) {
	if len(s.Cells) == 0 {
		return Nil(), nil
	}
	cells := make([]*LVal, len(s.Cells))
	for i := range s.Cells {
		v, err := rt.Eval(s.Cells[i], scope, line)
		if err != nil {
			return nil, err
		}
		cells[i] = v
	}
	if len(cells) == 1 {
		return cells[0], nil
	}
	return rt.Call(cells[0], cells[1:], scope, line)
}

// Call invokes fun with args.  Scope is the scope of the caller, it is only
// visible to builtins.
func (rt *Runtime) Call(fun *LVal, args []*LVal, scope Scope, line int) (*LVal, error) {
	switch fun.Type {
	case LBuiltin:
		return rt.Dispatch(fun.Str, scope, args, line)
	case LLambda:
		return rt.Apply(fun, args, line)
	default:
		return nil, errMissingOperator(line)
	}
}

// Apply binds args to the formals of the lambda fun in a new child of the
// scope fun captured.  When every formal is bound Apply evaluates the body of
// fun.  Otherwise it returns a lambda awaiting the remaining formals.
func (rt *Runtime) Apply(fun *LVal, args []*LVal, line int) (*LVal, error) {
	frame := fun.Env.Child()
	formals := fun.Formals.Cells
	nformals := len(formals)
	for i := 0; i < len(args); i++ {
		if len(formals) == 0 {
			return nil, errWrongAmountOfArgs(lambdaOp, nformals, len(args), line)
		}
		sym := formals[0]
		formals = formals[1:]
		if sym.Type != LSymbol {
			return nil, errIncompatibleType(lambdaOp, "Symbol", sym.TypeName(), line)
		}
		if sym.Str == VarArgSymbol {
			rest, err := restFormal(formals, line)
			if err != nil {
				return nil, err
			}
			frame.Bind(rest, QExpr(copyCells(args[i:])))
			formals = formals[1:]
			break
		}
		frame.Bind(sym.Str, args[i])
	}
	if len(formals) != 0 && formals[0].Type == LSymbol && formals[0].Str == VarArgSymbol {
		// The variadic formal was never reached so it binds no arguments.
		rest, err := restFormal(formals[1:], line)
		if err != nil {
			return nil, err
		}
		frame.Bind(rest, QExpr(nil))
		formals = nil
	}
	if len(formals) != 0 {
		return Lambda(frame, QExpr(formals), fun.Body), nil
	}
	return rt.evalBody(fun.Body, frame, line)
}

// restFormal returns the name following a variadic marker.
func restFormal(formals []*LVal, line int) (string, error) {
	if len(formals) == 0 {
		return "", errWrongAmountOfArgs(lambdaOp, 1, 0, line)
	}
	if formals[0].Type != LSymbol {
		return "", errIncompatibleType(lambdaOp, "Symbol", formals[0].TypeName(), line)
	}
	return formals[0].Str, nil
}

// evalBody evaluates a lambda body in frame.  A body whose first cell is a
// list holds a sequence of forms, evaluated in order with quoted forms treated
// as call-forms.  Any other body is a single call-form.
func (rt *Runtime) evalBody(body *LVal, frame Scope, line int) (*LVal, error) {
	if len(body.Cells) == 0 {
		return Nil(), nil
	}
	if !body.Cells[0].IsList() {
		return rt.EvalSExpr(SExpr(body.Cells), frame, line)
	}
	return rt.evalSequence(body.Cells, frame, line)
}

// evalSequence evaluates exprs in order and returns the last value.  Quoted
// lists are evaluated as call-forms.
func (rt *Runtime) evalSequence(exprs []*LVal, scope Scope, line int) (*LVal, error) {
	result := Nil()
	for _, expr := range exprs {
		if expr.Type == LQExpr {
			expr = SExpr(expr.Cells)
		}
		v, err := rt.Eval(expr, scope, line)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func copyCells(cells []*LVal) []*LVal {
	if len(cells) == 0 {
		return nil
	}
	cp := make([]*LVal, len(cells))
	copy(cp, cells)
	return cp
}
