package lisptest

import "testing"

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"self evaluating", TestSequence{
			{"42", "42", ""},
			{"-3", "-3", ""},
			{"2.5", "2.5", ""},
			{"'x'", "'x'", ""},
			{`"hi there"`, `"hi there"`, ""},
			{"{1 (+ 1 1) x}", "{1 (+ 1 1) x}", ""},
			{"+", "<builtin +>", ""},
			{"; just a comment", "()", ""},
		}},
		{"call forms", TestSequence{
			{"()", "()", ""},
			{"(5)", "5", ""},
			{"((((+ 1 2))))", "3", ""},
			{"(1 2)", "missing operator at line 1", ""},
			{"({1} 2)", "missing operator at line 1", ""},
			{"foo", "undefined symbol 'foo' at line 1", ""},
			{"(foo 1)", "undefined symbol 'foo' at line 1", ""},
		}},
		{"eval", TestSequence{
			{"(eval {+ 1 2})", "2", ""},
			{"(eval {{+ 1 2}})", "3", ""},
			{"(eval {(+ 1 2) (* 2 3)})", "6", ""},
			{"(eval {})", "()", ""},
			{"(eval (tail {1 (+ 2 3)}))", "5", ""},
			{"(eval 1)", "type error in 'eval' expected Qexpr, got Number at line 1", ""},
			{"(eval {1} {2})", "wrong amount of args to func 'eval', expected 1 but got 2 at line 1", ""},
		}},
		{"if", TestSequence{
			{"(if 1 {10} {20})", "10", ""},
			{"(if 0 {10} {20})", "20", ""},
			{"(if (> 2 1) {+ 1 2} {0})", "3", ""},
			{"(if 1 {+ 1 2})", "wrong amount of args to func 'if', expected 3 but got 2 at line 1", ""},
			{"(if {1} {1} {2})", "type error in 'if' expected Number, got Qexpr at line 1", ""},
			{"(if 1 2 {2})", "type error in 'if' expected Qexpr, got Number at line 1", ""},
		}},
		{"only the chosen branch runs", TestSequence{
			{`(if 1 {print "yes"} {print "no"})`, "()", "\"yes\"\n"},
			{`(if 0 {print "yes"} {print "no"})`, "()", "\"no\"\n"},
			{`(if 0 {def {x} 1} {def {y} 2})`, "()", ""},
			{"x", "undefined symbol 'x' at line 1", ""},
			{"y", "2", ""},
		}},
		{"print", TestSequence{
			{"(print 42)", "()", "42\n"},
			{`(print "text")`, "()", "\"text\"\n"},
			{"(print {1 'a' 2.5})", "()", "{1 'a' 2.5}\n"},
			{"(print 1 2)", "wrong amount of args to func 'print', expected 1 but got 2 at line 1", ""},
		}},
		{"multiline expressions report their first line", TestSequence{
			{"\n\n(+ 1\n  undefined)", "undefined symbol 'undefined' at line 3", ""},
		}},
	}
	RunTestSuite(t, tests)
}
