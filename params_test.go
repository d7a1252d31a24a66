package csscolorparser

import (
	"testing"

	"github.com/mazznoer/csscolorparser/internal/test"
)

func TestParamValues(t *testing.T) {
	expectValues := func(s string, expected []string) {
		t.Helper()
		pp := paramParser{s: s}
		var values []string
		for {
			pp.space()
			v, ok := pp.value()
			if !ok {
				break
			}
			values = append(values, v)
			pp.commaOrSpace()
			pp.slash()
		}
		test.AssertDeepEqual(t, values, expected)
	}

	expectValues("  ab(1 2,3),45 , xy cd / 10", []string{"ab(1 2,3)", "45", "xy", "cd", "10"})
	expectValues("2.53/9,dog   cat,fx(1 2 (56, 78))", []string{"2.53", "9", "dog", "cat", "fx(1 2 (56, 78))"})
	expectValues("", nil)
	expectValues("   ", nil)
}

func TestParamUnbalancedParens(t *testing.T) {
	// Unmatched closing parens are value content, not separators.
	pp := paramParser{s: ") ( (9)) ("}
	v, ok := pp.value()
	test.AssertEqual(t, ok, true)
	test.AssertEqual(t, v, ")")
	test.AssertEqual(t, pp.space(), true)
	v, ok = pp.value()
	test.AssertEqual(t, ok, true)
	test.AssertEqual(t, v, "( (9))")
	test.AssertEqual(t, pp.space(), true)
	v, ok = pp.value()
	test.AssertEqual(t, ok, true)
	test.AssertEqual(t, v, "(")
	test.AssertEqual(t, pp.isEnd(), true)
}

func TestParamSeparators(t *testing.T) {
	pp := paramParser{s: "1, 2 ,3 / 4"}
	v, _ := pp.value()
	test.AssertEqual(t, v, "1")

	found, comma := pp.commaOrSpace()
	test.AssertEqual(t, found, true)
	test.AssertEqual(t, comma, true)

	v, _ = pp.value()
	test.AssertEqual(t, v, "2")

	found, comma = pp.commaOrSpace()
	test.AssertEqual(t, found, true)
	test.AssertEqual(t, comma, true)

	v, _ = pp.value()
	test.AssertEqual(t, v, "3")

	found, comma = pp.commaOrSlash()
	test.AssertEqual(t, found, true)
	test.AssertEqual(t, comma, false)

	v, _ = pp.value()
	test.AssertEqual(t, v, "4")
	test.AssertEqual(t, pp.isEnd(), true)

	// A second comma is not consumed and blocks the next value.
	pp = paramParser{s: "1,,2"}
	pp.value()
	found, comma = pp.commaOrSpace()
	test.AssertEqual(t, found, true)
	test.AssertEqual(t, comma, true)
	_, ok := pp.value()
	test.AssertEqual(t, ok, false)
}
