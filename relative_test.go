package csscolorparser

import (
	"strings"
	"testing"

	"github.com/mazznoer/csscolorparser/internal/test"
)

func expectRelative(t *testing.T, input, expectedHex string) {
	t.Helper()
	c, err := Parse(input)
	if err != nil {
		t.Fatalf("%q: %v", input, err)
	}
	test.AssertEqual(t, c.HexString(), expectedHex)
}

func TestRelativeRgb(t *testing.T) {
	expectRelative(t, "rgb(from #f00 r g b)", "#ff0000")
	expectRelative(t, "rgb(from red r g b)", "#ff0000")
	expectRelative(t, "rgb(from rgb(255 0 0) r g b)", "#ff0000")

	// Components can be rearranged, case-insensitively
	expectRelative(t, "rgb(FROM #abcdef g B r / Alpha)", "#cdefab")
	expectRelative(t, "rgb(from #abcdef b g r)", "#efcdab")

	// and computed
	expectRelative(t, "rgb(from #00f r calc(g + 90) calc(b / 2))", "#005a80")
	expectRelative(t, "rgb(from #f00 calc(r - 128) g b)", "#7f0000")
	expectRelative(t, "rgb(from white r g b / 0.5)", "#ffffff80")
}

func TestRelativePolar(t *testing.T) {
	// Identity through every function's own components
	for _, fn := range []string{
		"rgb(from %s r g b)",
		"hsl(from %s h s l)",
		"hwb(from %s h w b)",
		"hsv(from %s h s v)",
		"lab(from %s l a b)",
		"lch(from %s l c h)",
		"oklab(from %s l a b)",
		"oklch(from %s l c h)",
	} {
		input := strings.Replace(fn, "%s", "#bad455", 1)
		expectRelative(t, input, "#bad455")
	}

	// Swapping whiteness and blackness
	expectRelative(t, "hwb(from #bad455 h b w)", "#90aa2b")

	// Halving lightness
	c, err := Parse("hsl(from hsl(120 100% 50%) h s calc(l / 2))")
	if err != nil {
		t.Fatal(err)
	}
	hsla := c.ToHsla()
	test.AssertEqual(t, hsla[0], 120.0)
	test.AssertEqual(t, hsla[1], 1.0)
	test.AssertEqual(t, hsla[2], 0.25)
}

func TestRelativeUnclamped(t *testing.T) {
	// rgb() components past the channel range survive until output
	c, err := Parse("rgb(from #f00 calc(r + 255) g b)")
	if err != nil {
		t.Fatal(err)
	}
	test.AssertEqual(t, c.R, 2.0)
	test.AssertEqual(t, c.HexString(), "#ff0000")
}

func TestRelativeInvalid(t *testing.T) {
	expectInvalid(t, "rgb(from #f00 r g)", InvalidRgb)
	expectInvalid(t, "rgb(frm #f00 r g b)", InvalidRgb)
	expectInvalid(t, "rgb(from blood r g b)", InvalidRgb)
	expectInvalid(t, "rgb(from #f00 r g x)", InvalidRgb)
	expectInvalid(t, "rgb(from #f00 r g calc(b +))", InvalidRgb)
	expectInvalid(t, "rgb(from #f00 r g b / )", InvalidRgb)
	expectInvalid(t, "rgb(from #f00 r g b c)", InvalidRgb)
	expectInvalid(t, "hsl(from #f00 h s)", InvalidHsl)
	expectInvalid(t, "cmyk(from #f00 c m y)", InvalidFunction)
}

func TestRelativeNesting(t *testing.T) {
	wrap := func(s string, n int) string {
		for i := 0; i < n; i++ {
			s = "rgb(from " + s + " r g b)"
		}
		return s
	}

	expectRelative(t, wrap("#bad455", 5), "#bad455")

	_, err := Parse(wrap("#bad455", maxNestingDepth+1))
	test.AssertEqual(t, err, InvalidNesting)
}
