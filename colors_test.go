package csscolorparser

import (
	"errors"
	"testing"

	"github.com/mazznoer/csscolorparser/internal/test"
)

func expectColors(t *testing.T, input string, expected []string) {
	t.Helper()
	colors, err := ParseColors(input)
	if err != nil {
		t.Fatalf("%q: %v", input, err)
	}
	var hexes []string
	for _, c := range colors {
		hexes = append(hexes, c.HexString())
	}
	test.AssertDeepEqual(t, hexes, expected)
}

func TestParseColors(t *testing.T) {
	expectColors(t, "a3f", []string{"#aa33ff"})
	expectColors(t, "red, #bad455,ab9", []string{"#ff0000", "#bad455", "#aabb99"})
	expectColors(t, "rgb(0,255,0),#abc,hsl(0, 100%, 50%), , hwb(0 0% 0%) ",
		[]string{"#00ff00", "#aabbcc", "#ff0000", "#ff0000"})
	expectColors(t, "rgb(from #f00 g r b), lime",
		[]string{"#00ff00", "#00ff00"})
	expectColors(t, "", nil)
	expectColors(t, " , ,, ", nil)
}

func TestParseColorsError(t *testing.T) {
	_, err := ParseColors("red, #0ff, âßï, rgb(0,0,255)")
	if err == nil {
		t.Fatal("expected an error")
	}
	var perr *ParseColorsError
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T", err)
	}
	test.AssertEqual(t, perr.S, " âßï")
	test.AssertEqual(t, perr.Err, InvalidUnknown)
	test.AssertEqual(t, errors.Is(err, InvalidUnknown), true)
}

func TestColorScanner(t *testing.T) {
	sc := ScanColors("red, lime")
	test.AssertEqual(t, sc.Scan(), true)
	test.AssertEqual(t, sc.Text(), "red")
	test.AssertEqual(t, sc.Color().HexString(), "#ff0000")
	test.AssertEqual(t, sc.Scan(), true)
	test.AssertEqual(t, sc.Text(), " lime")
	test.AssertEqual(t, sc.Color().HexString(), "#00ff00")
	test.AssertEqual(t, sc.Scan(), false)
	test.AssertEqual(t, sc.Err(), nil)

	sc = ScanColors("blue, nope")
	test.AssertEqual(t, sc.Scan(), true)
	test.AssertEqual(t, sc.Scan(), false)
	if sc.Err() == nil {
		t.Fatal("expected an error")
	}

	// Scan stays false after an error
	test.AssertEqual(t, sc.Scan(), false)
}
