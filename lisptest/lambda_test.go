package lisptest

import "testing"

func TestLambda(t *testing.T) {
	tests := TestSuite{
		{"construction", TestSequence{
			{"(\\ {x y} {+ x y})", "(\\ {x y} {+ x y})", ""},
			{"(\\ {} {})", "(\\ {} {})", ""},
			{"(\\ {x} 123)", "type error in '\\' expected Qexpr or Sexpr, got Number at line 1", ""},
			{"(\\ {1} {1})", "type error in '\\' expected Symbol, got Number at line 1", ""},
			{"(\\ {x})", "wrong amount of args to func '\\', expected 2 but got 1 at line 1", ""},
		}},
		{"application", TestSequence{
			{"((\\ {x} {+ x 1}) 1)", "2", ""},
			{"((\\ {x} {+ x 1}) 1 2)", "wrong amount of args to func '\\', expected 1 but got 2 at line 1", ""},
			{"((\\ {x} {(= {y} 100) (+ x y)}) 50)", "150", ""},
			{"((\\ {x} {}) 1)", "()", ""},
			{"((\\ {x} {x}) {1 2})", "{1 2}", ""},
		}},
		{"partial application", TestSequence{
			{"(((\\ {x y} {+ x y}) 10) 5)", "15", ""},
			{"(def {add} (\\ {x y} {+ x y}))", "()", ""},
			{"(def {add10} (add 10))", "()", ""},
			{"add10", "(\\ {y} {+ x y})", ""},
			{"(add10 5)", "15", ""},
			{"(add10 1)", "11", ""},
			{"(def {add3} (\\ {a b c} {+ a b c}))", "()", ""},
			{"(((add3 1) 2) 3)", "6", ""},
			{"((add3 1 2) 3)", "6", ""},
		}},
		{"variadic", TestSequence{
			{"(def {rest} (\\ {x & xs} {xs}))", "()", ""},
			{"(rest 1 2 3)", "{2 3}", ""},
			{"(rest 1)", "{}", ""},
			{"((\\ {& xs} {xs}) 1 2)", "{1 2}", ""},
			{"((\\ {x &} {x}) 1 2)", "wrong amount of args to func '\\', expected 1 but got 0 at line 1", ""},
			{"((\\ {x & a b} {x}) 1 2)", "(\\ {b} {x})", ""},
			{"(((\\ {x & a b} {list a b}) 1 2 3) 4)", "{{2 3} 4}", ""},
		}},
		{"fun", TestSequence{
			{"(fun {sq x} {* x x})", "()", ""},
			{"(sq 5)", "25", ""},
			{"sq", "(\\ {x} {* x x})", ""},
			{"(fun {fact n} {if (<= n 1) {1} {* n (fact (- n 1))}})", "()", ""},
			{"(fact 5)", "120", ""},
			{"(fun {} {1})", "wrong amount of args to func 'fun', expected 1 but got 0 at line 1", ""},
			{"(fun {1 x} {x})", "type error in 'fun' expected Symbol, got Number at line 1", ""},
		}},
		{"higher order", TestSequence{
			{"(fun {twice f x} {f (f x)})", "()", ""},
			{"(twice (\\ {n} {* n 3}) 2)", "18", ""},
			{"(fun {flip f a b} {f b a})", "()", ""},
			{"(flip - 1 10)", "9", ""},
			{"((flip -) 1 10)", "9", ""},
		}},
	}
	RunTestSuite(t, tests)
}
