// Package csscolorparser parses CSS color strings.
//
// Parse understands the color formats from CSS Color Module Level 4:
// named colors, "transparent", hex notation with 3, 4, 6, or 8 digits
// (the "#" prefix is optional), and the rgb(), rgba(), hsl(), hsla(),
// hwb(), lab(), lch(), oklab(), and oklch() functions in both the legacy
// comma dialect and the modern space dialect. The nonstandard hsv() and
// hsva() functions are accepted as well. Every function also takes the
// relative form "rgb(from <color> r g b)" with calc() expressions over
// the origin color's components.
//
//	c, err := csscolorparser.Parse("rgb(from tomato calc(r / 2) g b)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.HexString())
//
// The resulting Color stores sRGB channels as float64 and converts to and
// from HSL, HSV, HWB, CIE Lab, LCh, Oklab, and Oklch, serializes back to
// the CSS string forms, and implements image/color.Color.
package csscolorparser
