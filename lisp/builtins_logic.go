package lisp

func builtinEqual(op string) LBuiltinFunc {
	return func(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
		err := expectArity(op, args, 2, line)
		if err != nil {
			return nil, err
		}
		eq := args[0].Equal(args[1])
		if op == "!=" {
			return Bool(!eq), nil
		}
		return Bool(eq), nil
	}
}

// builtinOrd compares two Numbers.  Floats are rejected.
func builtinOrd(op string) LBuiltinFunc {
	return func(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
		err := expectArity(op, args, 2, line)
		if err != nil {
			return nil, err
		}
		for _, v := range args {
			err = expectType(op, v, LNumber, line)
			if err != nil {
				return nil, err
			}
		}
		a, b := args[0].Num, args[1].Num
		switch op {
		case ">":
			return Bool(a > b), nil
		case "<":
			return Bool(a < b), nil
		case ">=":
			return Bool(a >= b), nil
		default:
			return Bool(a <= b), nil
		}
	}
}

func builtinAnd(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	for _, v := range args {
		err := expectType("and", v, LNumber, line)
		if err != nil {
			return nil, err
		}
		if v.Num == 0 {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

func builtinOr(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	for _, v := range args {
		err := expectType("or", v, LNumber, line)
		if err != nil {
			return nil, err
		}
		if v.Num != 0 {
			return Bool(true), nil
		}
	}
	return Bool(false), nil
}

func builtinNot(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	err := expectArity("not", args, 1, line)
	if err != nil {
		return nil, err
	}
	err = expectType("not", args[0], LNumber, line)
	if err != nil {
		return nil, err
	}
	return Bool(args[0].Num == 0), nil
}
