package csscolorparser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a color with red, green, blue, and alpha components, each
// nominally in [0,1]. Components are not eagerly clamped: relative-color
// arithmetic may produce transient out-of-range values, and those must
// survive until the color is converted to a bounded output representation
// (ToArray, ToRgba8, the string forms). Colors are values; derived colors
// are always new values.
type Color struct {
	R, G, B, A float64
}

// FromRgba8 creates a Color from 8-bit channels.
func FromRgba8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromLinearRgba creates a Color from linear-light RGB components in [0,1].
func FromLinearRgba(r, g, b, a float64) Color {
	return Color{
		R: gam_srgb(r),
		G: gam_srgb(g),
		B: gam_srgb(b),
		A: a,
	}
}

// FromLinearRgba8 creates a Color from 8-bit linear-light channels.
func FromLinearRgba8(r, g, b, a uint8) Color {
	return FromLinearRgba(
		float64(r)/255,
		float64(g)/255,
		float64(b)/255,
		float64(a)/255,
	)
}

// FromHsva creates a Color from hue in degrees, saturation, value, and
// alpha in [0,1].
func FromHsva(h, s, v, a float64) Color {
	r, g, b := hsv_to_rgb(normalize_angle(h), clamp01(s), clamp01(v))
	return Color{R: r, G: g, B: b, A: a}
}

// FromHsla creates a Color from hue in degrees, saturation, lightness, and
// alpha in [0,1].
func FromHsla(h, s, l, a float64) Color {
	r, g, b := hsl_to_rgb(normalize_angle(h), clamp01(s), clamp01(l))
	return Color{R: r, G: g, B: b, A: a}
}

// FromHwba creates a Color from hue in degrees, whiteness, blackness, and
// alpha in [0,1].
func FromHwba(h, w, b, a float64) Color {
	red, green, blue := hwb_to_rgb(normalize_angle(h), clamp01(w), clamp01(b))
	return Color{R: red, G: green, B: blue, A: a}
}

// FromOklaba creates a Color from Oklab coordinates.
func FromOklaba(l, a, b, alpha float64) Color {
	red, green, blue := oklab_to_lin_srgb(l, a, b)
	return FromLinearRgba(red, green, blue, alpha)
}

// FromOklcha creates a Color from OkLCh coordinates, hue in degrees.
func FromOklcha(l, c, h, alpha float64) Color {
	ll, a, b := lch_to_lab(l, c, h)
	return FromOklaba(ll, a, b, alpha)
}

// FromLaba creates a Color from CIE Lab coordinates.
func FromLaba(l, a, b, alpha float64) Color {
	red, green, blue := lab_to_lin_srgb(l, a, b)
	return FromLinearRgba(red, green, blue, alpha)
}

// FromLcha creates a Color from CIE LCh coordinates, hue in degrees.
func FromLcha(l, c, h, alpha float64) Color {
	ll, a, b := lch_to_lab(l, c, h)
	return FromLaba(ll, a, b, alpha)
}

// Clamp restricts all components to [0,1].
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

// Name returns the CSS name of this color, if it has one. Transparency is
// ignored.
func (c Color) Name() (string, bool) {
	rgba := c.ToRgba8()
	name, ok := colorNames[[3]uint8{rgba[0], rgba[1], rgba[2]}]
	return name, ok
}

// ToArray returns [r, g, b, a] clamped to [0,1].
func (c Color) ToArray() [4]float64 {
	return [4]float64{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// ToRgba8 returns [r, g, b, a] in [0,255].
func (c Color) ToRgba8() [4]uint8 {
	u8 := func(t float64) uint8 {
		return uint8(clamp01(t)*255 + 0.5)
	}
	return [4]uint8{u8(c.R), u8(c.G), u8(c.B), u8(c.A)}
}

// ToRgba16 returns [r, g, b, a] in [0,65535].
func (c Color) ToRgba16() [4]uint16 {
	u16 := func(t float64) uint16 {
		return uint16(clamp01(t)*65535 + 0.5)
	}
	return [4]uint16{u16(c.R), u16(c.G), u16(c.B), u16(c.A)}
}

// ToLinearRgba returns the linear-light [r, g, b, a], unclamped.
func (c Color) ToLinearRgba() [4]float64 {
	return [4]float64{lin_srgb(c.R), lin_srgb(c.G), lin_srgb(c.B), c.A}
}

// ToLinearRgba8 returns the linear-light channels in [0,255].
func (c Color) ToLinearRgba8() [4]uint8 {
	v := c.ToLinearRgba()
	u8 := func(t float64) uint8 {
		return uint8(math.Round(clamp01(t) * 255))
	}
	return [4]uint8{u8(v[0]), u8(v[1]), u8(v[2]), u8(v[3])}
}

// ToHsva returns [h, s, v, a] with hue in degrees. The hue of an
// achromatic color is NaN.
func (c Color) ToHsva() [4]float64 {
	h, s, v := rgb_to_hsv(clamp01(c.R), clamp01(c.G), clamp01(c.B))
	return [4]float64{h, clamp01(s), clamp01(v), clamp01(c.A)}
}

// ToHsla returns [h, s, l, a] with hue in degrees. The hue of an
// achromatic color is NaN.
func (c Color) ToHsla() [4]float64 {
	h, s, l := rgb_to_hsl(clamp01(c.R), clamp01(c.G), clamp01(c.B))
	return [4]float64{h, clamp01(s), clamp01(l), clamp01(c.A)}
}

// ToHwba returns [h, w, b, a] with hue in degrees. The hue of an
// achromatic color is NaN.
func (c Color) ToHwba() [4]float64 {
	h, w, b := rgb_to_hwb(clamp01(c.R), clamp01(c.G), clamp01(c.B))
	return [4]float64{h, clamp01(w), clamp01(b), clamp01(c.A)}
}

// ToOklaba returns [l, a, b, alpha].
func (c Color) ToOklaba() [4]float64 {
	v := c.ToLinearRgba()
	l, a, b := lin_srgb_to_oklab(v[0], v[1], v[2])
	return [4]float64{l, a, b, clamp01(c.A)}
}

// ToOklcha returns [l, c, h, alpha] with hue in degrees in [0,360).
func (c Color) ToOklcha() [4]float64 {
	v := c.ToOklaba()
	l, chroma, h := lab_to_lch(v[0], v[1], v[2])
	return [4]float64{l, chroma, h, v[3]}
}

// ToLaba returns [l, a, b, alpha].
func (c Color) ToLaba() [4]float64 {
	v := c.ToLinearRgba()
	l, a, b := lin_srgb_to_lab(v[0], v[1], v[2])
	return [4]float64{l, a, b, clamp01(v[3])}
}

// ToLcha returns [l, c, h, alpha] with hue in degrees in [0,360).
func (c Color) ToLcha() [4]float64 {
	v := c.ToLaba()
	l, chroma, h := lab_to_lch(v[0], v[1], v[2])
	return [4]float64{l, chroma, h, v[3]}
}

// HexString returns the CSS hex form, e.g. "#ff00ff". The alpha byte is
// omitted when it is 255.
func (c Color) HexString() string {
	v := c.ToRgba8()
	if v[3] < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", v[0], v[1], v[2], v[3])
	}
	return fmt.Sprintf("#%02x%02x%02x", v[0], v[1], v[2])
}

// RGBString returns the CSS rgb() form, e.g. "rgb(255 0 0)".
func (c Color) RGBString() string {
	v := c.ToRgba8()
	return fmt.Sprintf("rgb(%d %d %d%s)", v[0], v[1], v[2], fmtAlpha(c.A))
}

// HSLString returns the CSS hsl() form. An achromatic hue is written as
// "none".
func (c Color) HSLString() string {
	v := c.ToHsla()
	return fmt.Sprintf("hsl(%s %s%% %s%%%s)",
		fmtHue(v[0]), fmtPercent(v[1]), fmtPercent(v[2]), fmtAlpha(v[3]))
}

// HWBString returns the CSS hwb() form. An achromatic hue is written as
// "none".
func (c Color) HWBString() string {
	v := c.ToHwba()
	return fmt.Sprintf("hwb(%s %s%% %s%%%s)",
		fmtHue(v[0]), fmtPercent(v[1]), fmtPercent(v[2]), fmtAlpha(v[3]))
}

// LabString returns the CSS lab() form.
func (c Color) LabString() string {
	v := c.ToLaba()
	return fmt.Sprintf("lab(%s %s %s%s)",
		fmtFloat(v[0], 2), fmtFloat(v[1], 2), fmtFloat(v[2], 2), fmtAlpha(v[3]))
}

// LchString returns the CSS lch() form.
func (c Color) LchString() string {
	v := c.ToLcha()
	return fmt.Sprintf("lch(%s %s %s%s)",
		fmtFloat(v[0], 2), fmtFloat(v[1], 2), fmtFloat(normalize_angle(v[2]), 2), fmtAlpha(v[3]))
}

// OklabString returns the CSS oklab() form.
func (c Color) OklabString() string {
	v := c.ToOklaba()
	return fmt.Sprintf("oklab(%s %s %s%s)",
		fmtFloat(v[0], 3), fmtFloat(v[1], 3), fmtFloat(v[2], 3), fmtAlpha(v[3]))
}

// OklchString returns the CSS oklch() form.
func (c Color) OklchString() string {
	v := c.ToOklcha()
	return fmt.Sprintf("oklch(%s %s %s%s)",
		fmtFloat(v[0], 3), fmtFloat(v[1], 3), fmtFloat(normalize_angle(v[2]), 2), fmtAlpha(v[3]))
}

// InterpolateRGB blends with other in the RGB color space, t in [0,1].
func (c Color) InterpolateRGB(other Color, t float64) Color {
	return Color{
		R: c.R + t*(other.R-c.R),
		G: c.G + t*(other.G-c.G),
		B: c.B + t*(other.B-c.B),
		A: c.A + t*(other.A-c.A),
	}
}

// InterpolateLinearRGB blends with other in the linear RGB color space,
// t in [0,1].
func (c Color) InterpolateLinearRGB(other Color, t float64) Color {
	a := c.ToLinearRgba()
	b := other.ToLinearRgba()
	return FromLinearRgba(
		a[0]+t*(b[0]-a[0]),
		a[1]+t*(b[1]-a[1]),
		a[2]+t*(b[2]-a[2]),
		a[3]+t*(b[3]-a[3]),
	)
}

// InterpolateHSV blends with other in the HSV color space, taking the
// shorter hue arc, t in [0,1].
func (c Color) InterpolateHSV(other Color, t float64) Color {
	a := c.ToHsva()
	b := other.ToHsva()
	return FromHsva(
		interp_angle(a[0], b[0], t),
		a[1]+t*(b[1]-a[1]),
		a[2]+t*(b[2]-a[2]),
		a[3]+t*(b[3]-a[3]),
	)
}

// InterpolateOklab blends with other in the Oklab color space, t in [0,1].
func (c Color) InterpolateOklab(other Color, t float64) Color {
	a := c.ToOklaba()
	b := other.ToOklaba()
	return FromOklaba(
		a[0]+t*(b[0]-a[0]),
		a[1]+t*(b[1]-a[1]),
		a[2]+t*(b[2]-a[2]),
		a[3]+t*(b[3]-a[3]),
	)
}

// InterpolateLab blends with other in the CIE Lab color space, t in [0,1].
func (c Color) InterpolateLab(other Color, t float64) Color {
	a := c.ToLaba()
	b := other.ToLaba()
	return FromLaba(
		a[0]+t*(b[0]-a[0]),
		a[1]+t*(b[1]-a[1]),
		a[2]+t*(b[2]-a[2]),
		a[3]+t*(b[3]-a[3]),
	)
}

// InterpolateLch blends with other in the CIE LCh color space, taking the
// shorter hue arc, t in [0,1].
func (c Color) InterpolateLch(other Color, t float64) Color {
	a := c.ToLcha()
	b := other.ToLcha()
	return FromLcha(
		a[0]+t*(b[0]-a[0]),
		a[1]+t*(b[1]-a[1]),
		interp_angle(a[2], b[2], t),
		a[3]+t*(b[3]-a[3]),
	)
}

// String returns a debug form; use HexString or the other *String methods
// for CSS output.
func (c Color) String() string {
	return fmt.Sprintf("RGBA(%v,%v,%v,%v)", c.R, c.G, c.B, c.A)
}

// fmtFloat formats with a fixed precision, then trims trailing zeros and
// a trailing decimal point.
func fmtFloat(t float64, prec int) string {
	s := strconv.FormatFloat(t, 'f', prec, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// fmtHue writes a hue with up to two decimals, or "none" for NaN.
func fmtHue(h float64) string {
	if math.IsNaN(h) {
		return "none"
	}
	return fmtFloat(h, 2)
}

// fmtPercent rounds half-up to a whole percent.
func fmtPercent(t float64) string {
	return strconv.Itoa(int(math.Floor(t*100 + 0.5)))
}

// fmtAlpha returns the " / N%" suffix, or "" for a fully opaque color.
func fmtAlpha(a float64) string {
	if a < 1 {
		return fmt.Sprintf(" / %d%%", int(math.Floor(math.Max(a, 0)*100+0.5)))
	}
	return ""
}
