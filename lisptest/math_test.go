package lisptest

import "testing"

func TestMath(t *testing.T) {
	tests := TestSuite{
		{"roots and logarithms", TestSequence{
			{"(sqrt 16)", "4", ""},
			{"(sqrt 2.25)", "1.5", ""},
			{"(sqrt -1)", "parse error: sqrt argument must be non-negative at line 1", ""},
			{"(log 1)", "0", ""},
			{"(log 0)", "parse error: log argument must be positive at line 1", ""},
			{"(exp 0)", "1", ""},
		}},
		{"rounding", TestSequence{
			{"(floor 2.7)", "2", ""},
			{"(ceil 2.1)", "3", ""},
			{"(round 2.5)", "3", ""},
			{"(round -2.5)", "-3", ""},
			{"(== (floor 2) 2)", "0", ""},
			{"(== (floor 2) 2.0)", "1", ""},
			{"(truncate 2.7)", "2", ""},
			{"(truncate -2.5)", "-3", ""},
			{"(truncate 5)", "5", ""},
			{"(== (truncate 2.7) 2)", "1", ""},
		}},
		{"trigonometry", TestSequence{
			{"(sin 0)", "0", ""},
			{"(cos 0)", "1", ""},
			{"(tan 0)", "0", ""},
		}},
		{"abs min max", TestSequence{
			{"(abs -3)", "3", ""},
			{"(abs -2.5)", "2.5", ""},
			{"(min 1 2)", "1", ""},
			{"(max 1 2)", "2", ""},
			{"(max 1 2.5)", "2.5", ""},
			{"(== (min 3 2.0) 2.0)", "1", ""},
			{"(min 1)", "wrong amount of args to func 'min', expected 2 but got 1 at line 1", ""},
			{`(abs "x")`, "type error in 'abs' expected Number or Float, got String at line 1", ""},
			{`(max 1 "x")`, "type error in 'max' expected Number or Float, got String at line 1", ""},
		}},
	}
	RunTestSuite(t, tests)
}
