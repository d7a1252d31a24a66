package csscolorparser

import (
	"testing"

	"github.com/mazznoer/csscolorparser/internal/test"
)

func TestCalcValid(t *testing.T) {
	vars := [4]varBinding{
		{"r", 255},
		{"g", 127},
		{"b", 0},
		{"alpha", 1},
	}

	expectCalc := func(s string, expected float64) {
		t.Helper()
		v, ok := resolveComponent(s, &vars)
		if !ok {
			t.Fatalf("%q failed to evaluate", s)
		}
		test.AssertEqual(t, v, expected)
	}

	expectCalc("calc(4+5.5)", 9.5)
	expectCalc("calc(4 + 5.5)", 9.5)
	expectCalc("CALC(4 + 5.5)", 9.5)
	expectCalc("calc(r-55)", 200)
	expectCalc("calc(r - 55)", 200)
	expectCalc("calc(-97+-18)", -115)
	expectCalc("calc(100--35)", 135)
	expectCalc("calc(g * 2)", 254)
	expectCalc("calc(r / 2)", 127.5)
	expectCalc("calc((r + g) / 2)", 191)
	expectCalc("calc((r - g) + (b + 10))", 138)
	expectCalc("calc(((1 + 1) * 2) + 1)", 5)

	// Bare numbers and variables work without calc().
	expectCalc("42", 42)
	expectCalc("r", 255)
	expectCalc("ALPHA", 1)
}

func TestCalcInvalid(t *testing.T) {
	vars := [4]varBinding{
		{"r", 255},
		{"g", 127},
		{"b", 0},
		{"alpha", 1},
	}

	expectFail := func(s string) {
		t.Helper()
		if _, ok := resolveComponent(s, &vars); ok {
			t.Fatalf("%q evaluated but should not", s)
		}
	}

	expectFail("calc(5)")
	expectFail("calc(+5)")
	expectFail("calc(5+1-4)")
	expectFail("calc(4/0)")
	expectFail("calc(5 + (1.5))")
	expectFail("calc(7---3)")
	expectFail("calc(*3+2)")
	expectFail("calc(x + 1)")
	expectFail("calc()")
	expectFail("calc")
	expectFail("x")
	expectFail("")
}

func TestCalcNestingDepth(t *testing.T) {
	// Arbitrarily deep groups are cut off rather than recursed into.
	var vars [4]varBinding
	s := "(1+1)"
	for i := 0; i < maxNestingDepth; i++ {
		s = "(" + s + "+1)"
	}
	if _, ok := evalCalc(s, &vars, 0); ok {
		t.Fatal("deeply nested calc evaluated but should not")
	}

	s = "(1+1)"
	for i := 0; i < 4; i++ {
		s = "(" + s + "+1)"
	}
	v, ok := evalCalc(s, &vars, 0)
	test.AssertEqual(t, ok, true)
	test.AssertEqual(t, v, 6.0)
}
