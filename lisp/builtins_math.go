package lisp

import "math"

var unaryFloatOps = map[string]func(float64) float64{
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"round": math.Round,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"exp":   math.Exp,
}

func numericArg(fn string, args []*LVal, line int) (*LVal, error) {
	err := expectArity(fn, args, 1, line)
	if err != nil {
		return nil, err
	}
	if !args[0].IsNumeric() {
		return nil, errIncompatibleType(fn, "Number or Float", args[0].TypeName(), line)
	}
	return args[0], nil
}

// builtinUnaryFloat applies a math function.  The result is always a Float.
func builtinUnaryFloat(fn string) LBuiltinFunc {
	op := unaryFloatOps[fn]
	return func(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
		x, err := numericArg(fn, args, line)
		if err != nil {
			return nil, err
		}
		return Float(float32(op(float64(toFloat(x))))), nil
	}
}

func builtinSqrt(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	x, err := numericArg("sqrt", args, line)
	if err != nil {
		return nil, err
	}
	if toFloat(x) < 0 {
		return nil, errParse(nil, line, "sqrt argument must be non-negative")
	}
	return Float(float32(math.Sqrt(float64(toFloat(x))))), nil
}

func builtinLog(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	x, err := numericArg("log", args, line)
	if err != nil {
		return nil, err
	}
	if toFloat(x) <= 0 {
		return nil, errParse(nil, line, "log argument must be positive")
	}
	return Float(float32(math.Log(float64(toFloat(x))))), nil
}

func builtinAbs(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	x, err := numericArg("abs", args, line)
	if err != nil {
		return nil, err
	}
	if x.Type == LFloat {
		return Float(float32(math.Abs(float64(x.Float)))), nil
	}
	if x.Num < 0 {
		return Number(-x.Num), nil
	}
	return x, nil
}

// builtinMinMax returns a Number only when both operands are Numbers.
func builtinMinMax(fn string) LBuiltinFunc {
	return func(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
		err := expectArity(fn, args, 2, line)
		if err != nil {
			return nil, err
		}
		for _, v := range args {
			if !v.IsNumeric() {
				return nil, errIncompatibleType(fn, "Number or Float", v.TypeName(), line)
			}
		}
		a, b := args[0], args[1]
		if a.Type == LNumber && b.Type == LNumber {
			if (fn == "min") == (a.Num < b.Num) {
				return a, nil
			}
			return b, nil
		}
		x, y := float64(toFloat(a)), float64(toFloat(b))
		if fn == "min" {
			return Float(float32(math.Min(x, y))), nil
		}
		return Float(float32(math.Max(x, y))), nil
	}
}

// builtinTruncate passes Numbers through and floors Floats to Numbers.
func builtinTruncate(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	x, err := numericArg("truncate", args, line)
	if err != nil {
		return nil, err
	}
	if x.Type == LNumber {
		return x, nil
	}
	return Number(int32(math.Floor(float64(x.Float)))), nil
}
