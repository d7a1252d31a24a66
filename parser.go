package csscolorparser

import (
	"math"
	"strings"
)

// maxNestingDepth bounds recursion through relative-color origins and
// nested calc groups. The grammar itself allows arbitrary nesting; the
// cap only exists so a hostile input cannot exhaust the stack.
const maxNestingDepth = 16

// Parse parses a CSS color string: "transparent", a named color, 3/4/6/8
// digit hex with or without the "#" prefix, or one of the color functions
// rgb(), rgba(), hsl(), hsla(), hwb(), hwba(), hsv(), hsva(), lab(),
// lch(), oklab(), oklch(). Every function also accepts the relative form
// "fn(from <origin-color> c1 c2 c3 [/ c4])" where each component is a
// number, the component's own name, or a calc() expression.
//
// The returned error, if any, is a ParseColorError.
func Parse(s string) (Color, error) {
	return parse(strings.TrimSpace(s), 0)
}

func parse(s string, depth int) (Color, error) {
	c, err := parseAbs(s)
	if err == nil {
		return c, nil
	}

	tag := err.(ParseColorError)
	switch tag {
	case InvalidHex, InvalidFunction, InvalidUnknown:
		return Color{}, tag
	}

	// The function name was recognized but its components did not parse
	// as absolute values; the only remaining possibility is the relative
	// form "fn(from <origin> c1 c2 c3 [/ c4])". Whatever fails below is
	// still reported with the tag committed above.
	idx := strings.IndexByte(s, '(')
	inner, closed := strings.CutSuffix(s[idx+1:], ")")
	if !closed || !isASCII(inner) {
		return Color{}, tag
	}

	pp := paramParser{s: inner}
	pp.space()

	from, ok0 := pp.value()
	sp0 := pp.space()
	origin, ok1 := pp.value()
	sp1 := pp.space()
	val1, ok2 := pp.value()
	sp2 := pp.space()
	val2, ok3 := pp.value()
	sp3 := pp.space()
	val3, ok4 := pp.value()
	if !(ok0 && sp0 && ok1 && sp1 && ok2 && sp2 && ok3 && sp3 && ok4) {
		return Color{}, tag
	}

	if !strings.EqualFold(from, "from") {
		return Color{}, tag
	}

	if depth >= maxNestingDepth {
		return Color{}, InvalidNesting
	}

	oc, oerr := parse(origin, depth+1)
	if oerr == InvalidNesting {
		return Color{}, InvalidNesting
	}
	if oerr != nil {
		return Color{}, tag
	}

	pp.space()

	val4 := "alpha"
	if !pp.isEnd() {
		if !pp.slash() {
			return Color{}, tag
		}
		a, ok := pp.value()
		if !ok {
			return Color{}, tag
		}
		pp.space()
		if !pp.isEnd() {
			return Color{}, tag
		}
		val4 = a
	}

	values := [4]string{val1, val2, val3, val4}

	switch tag {
	case InvalidRgb:
		// r, g, b [0..255]
		// alpha   [0..1]
		vars := [4]varBinding{
			{"r", oc.R * 255},
			{"g", oc.G * 255},
			{"b", oc.B * 255},
			{"alpha", oc.A},
		}
		if v, ok := resolveComponents(values, &vars); ok {
			return Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255, A: v[3]}, nil
		}

	case InvalidHwb:
		// h     [0..360]
		// w, b  [0..100]
		// alpha [0..1]
		hwba := oc.ToHwba()
		vars := [4]varBinding{
			{"h", hwba[0]},
			{"w", hwba[1] * 100},
			{"b", hwba[2] * 100},
			{"alpha", hwba[3]},
		}
		if v, ok := resolveComponents(values, &vars); ok {
			return FromHwba(v[0], v[1]/100, v[2]/100, v[3]), nil
		}

	case InvalidHsl:
		// h     [0..360]
		// s, l  [0..100]
		// alpha [0..1]
		hsla := oc.ToHsla()
		vars := [4]varBinding{
			{"h", hsla[0]},
			{"s", hsla[1] * 100},
			{"l", hsla[2] * 100},
			{"alpha", hsla[3]},
		}
		if v, ok := resolveComponents(values, &vars); ok {
			return FromHsla(v[0], v[1]/100, v[2]/100, v[3]), nil
		}

	case InvalidHsv:
		// h     [0..360]
		// s, v  [0..100]
		// alpha [0..1]
		hsva := oc.ToHsva()
		vars := [4]varBinding{
			{"h", hsva[0]},
			{"s", hsva[1] * 100},
			{"v", hsva[2] * 100},
			{"alpha", hsva[3]},
		}
		if v, ok := resolveComponents(values, &vars); ok {
			return FromHsva(v[0], v[1]/100, v[2]/100, v[3]), nil
		}

	case InvalidLab:
		// l     [0..100]
		// a, b  [-125..125]
		// alpha [0..1]
		laba := oc.ToLaba()
		vars := [4]varBinding{
			{"l", laba[0]},
			{"a", laba[1]},
			{"b", laba[2]},
			{"alpha", laba[3]},
		}
		if v, ok := resolveComponents(values, &vars); ok {
			return FromLaba(math.Max(v[0], 0), v[1], v[2], v[3]), nil
		}

	case InvalidLch:
		// l [0..100]
		// c [0..150]
		// h [0..360]
		// alpha [0..1]
		lcha := oc.ToLcha()
		vars := [4]varBinding{
			{"l", lcha[0]},
			{"c", lcha[1]},
			{"h", lcha[2]},
			{"alpha", lcha[3]},
		}
		if v, ok := resolveComponents(values, &vars); ok {
			return FromLcha(math.Max(v[0], 0), math.Max(v[1], 0), v[2], v[3]), nil
		}

	case InvalidOklab:
		// l     [0..1]
		// a, b  [-0.4..0.4]
		// alpha [0..1]
		oklaba := oc.ToOklaba()
		vars := [4]varBinding{
			{"l", oklaba[0]},
			{"a", oklaba[1]},
			{"b", oklaba[2]},
			{"alpha", oklaba[3]},
		}
		if v, ok := resolveComponents(values, &vars); ok {
			return FromOklaba(math.Max(v[0], 0), v[1], v[2], v[3]), nil
		}

	case InvalidOklch:
		// l [0..1]
		// c [0..0.4]
		// h [0..360]
		// alpha [0..1]
		oklcha := oc.ToOklcha()
		vars := [4]varBinding{
			{"l", oklcha[0]},
			{"c", oklcha[1]},
			{"h", oklcha[2]},
			{"alpha", oklcha[3]},
		}
		if v, ok := resolveComponents(values, &vars); ok {
			return FromOklcha(math.Max(v[0], 0), math.Max(v[1], 0), v[2], v[3]), nil
		}
	}

	return Color{}, tag
}

func resolveComponents(values [4]string, vars *[4]varBinding) ([4]float64, bool) {
	var out [4]float64
	for i, s := range values {
		v, ok := resolveComponent(s, vars)
		if !ok {
			return out, false
		}
		out[i] = v
	}
	return out, true
}

func parseAbs(s string) (Color, error) {
	if strings.EqualFold(s, "transparent") {
		return Color{0, 0, 0, 0}, nil
	}

	// Hex format
	if rest, found := strings.CutPrefix(s, "#"); found {
		return parseHex(rest)
	}

	if idx := strings.IndexByte(s, '('); idx >= 0 {
		inner, closed := strings.CutSuffix(s[idx+1:], ")")
		if !closed {
			return Color{}, InvalidUnknown
		}

		// One case-insensitive match; everything after this switches on
		// the tag, never on the name again.
		var tag ParseColorError
		switch name := strings.TrimRight(s[:idx], " \t"); {
		case strings.EqualFold(name, "rgb") || strings.EqualFold(name, "rgba"):
			tag = InvalidRgb
		case strings.EqualFold(name, "hsl") || strings.EqualFold(name, "hsla"):
			tag = InvalidHsl
		case strings.EqualFold(name, "hwb") || strings.EqualFold(name, "hwba"):
			tag = InvalidHwb
		case strings.EqualFold(name, "hsv") || strings.EqualFold(name, "hsva"):
			tag = InvalidHsv
		case strings.EqualFold(name, "lab"):
			tag = InvalidLab
		case strings.EqualFold(name, "lch"):
			tag = InvalidLch
		case strings.EqualFold(name, "oklab"):
			tag = InvalidOklab
		case strings.EqualFold(name, "oklch"):
			tag = InvalidOklch
		default:
			return Color{}, InvalidFunction
		}

		if !isASCII(inner) {
			return Color{}, tag
		}

		pp := paramParser{s: inner}
		pp.space()

		val0, ok0 := pp.value()
		sep0, comma0 := pp.commaOrSpace()
		val1, ok1 := pp.value()
		sep1, comma1 := pp.commaOrSpace()
		val2, ok2 := pp.value()
		if !(ok0 && sep0 && ok1 && sep1 && ok2) {
			return Color{}, tag
		}

		// The dialect is decided by the separators actually used: commas
		// select the legacy dialect with its format-consistency rule.
		legacy := comma0 || comma1

		isSpace := pp.space()

		alpha := 1.0
		if !pp.isEnd() {
			sep, comma := pp.commaOrSlash()
			if !sep && !isSpace {
				return Color{}, tag
			}
			legacy = legacy || comma
			a, ok := pp.value()
			if !ok {
				return Color{}, tag
			}
			pp.space()
			if !pp.isEnd() {
				return Color{}, tag
			}
			v, _, ok := parsePercentOrFloat(a)
			if !ok {
				return Color{}, tag
			}
			alpha = clamp01(v)
		}

		switch tag {
		case InvalidRgb:
			r, rPct, okR := parsePercentOr255(val0)
			g, gPct, okG := parsePercentOr255(val1)
			b, bPct, okB := parsePercentOr255(val2)
			if okR && okG && okB {
				if legacy && !(rPct == gPct && gPct == bPct) {
					return Color{}, tag
				}
				return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: alpha}, nil
			}

		case InvalidHsl:
			h, okH := parseAngle(val0)
			s, sPct, okS := parsePercentOrFloat(val1)
			l, lPct, okL := parsePercentOrFloat(val2)
			if okH && okS && okL {
				if legacy && sPct != lPct {
					return Color{}, tag
				}
				return FromHsla(h, s, l, alpha), nil
			}

		case InvalidHwb:
			h, okH := parseAngle(val0)
			w, wPct, okW := parsePercentOrFloat(val1)
			b, bPct, okB := parsePercentOrFloat(val2)
			if okH && okW && okB {
				if legacy && wPct != bPct {
					return Color{}, tag
				}
				return FromHwba(h, w, b, alpha), nil
			}

		case InvalidHsv:
			h, okH := parseAngle(val0)
			s, sPct, okS := parsePercentOrFloat(val1)
			v, vPct, okV := parsePercentOrFloat(val2)
			if okH && okS && okV {
				if legacy && sPct != vPct {
					return Color{}, tag
				}
				return FromHsva(h, s, v, alpha), nil
			}

		case InvalidLab:
			l, lPct, okL := parsePercentOrFloat(val0)
			a, aPct, okA := parsePercentOrFloat(val1)
			b, bPct, okB := parsePercentOrFloat(val2)
			if okL && okA && okB {
				if lPct {
					l *= 100
				}
				if aPct {
					a = remap(a, -1, 1, -125, 125)
				}
				if bPct {
					b = remap(b, -1, 1, -125, 125)
				}
				return FromLaba(math.Max(l, 0), a, b, alpha), nil
			}

		case InvalidLch:
			l, lPct, okL := parsePercentOrFloat(val0)
			c, cPct, okC := parsePercentOrFloat(val1)
			h, okH := parseAngle(val2)
			if okL && okC && okH {
				if lPct {
					l *= 100
				}
				if cPct {
					c *= 150
				}
				return FromLcha(math.Max(l, 0), math.Max(c, 0), h, alpha), nil
			}

		case InvalidOklab:
			l, _, okL := parsePercentOrFloat(val0)
			a, aPct, okA := parsePercentOrFloat(val1)
			b, bPct, okB := parsePercentOrFloat(val2)
			if okL && okA && okB {
				if aPct {
					a = remap(a, -1, 1, -0.4, 0.4)
				}
				if bPct {
					b = remap(b, -1, 1, -0.4, 0.4)
				}
				return FromOklaba(math.Max(l, 0), a, b, alpha), nil
			}

		case InvalidOklch:
			l, _, okL := parsePercentOrFloat(val0)
			c, cPct, okC := parsePercentOrFloat(val1)
			h, okH := parseAngle(val2)
			if okL && okC && okH {
				if cPct {
					c *= 0.4
				}
				return FromOklcha(math.Max(l, 0), math.Max(c, 0), h, alpha), nil
			}
		}

		return Color{}, tag
	}

	// Hex format without the "#" prefix
	if c, err := parseHex(s); err == nil {
		return c, nil
	}

	// Named colors
	if rgb, ok := namedColor(s); ok {
		return FromRgba8(rgb[0], rgb[1], rgb[2], 255), nil
	}

	return Color{}, InvalidUnknown
}

func parseHex(s string) (Color, error) {
	switch len(s) {
	case 3, 4:
		var v [4]uint8
		v[3] = 255
		for i := 0; i < len(s); i++ {
			n, ok := hexDigit(s[i])
			if !ok {
				return Color{}, InvalidHex
			}
			// "a" means "aa"
			v[i] = n<<4 | n
		}
		return FromRgba8(v[0], v[1], v[2], v[3]), nil

	case 6, 8:
		var v [4]uint8
		v[3] = 255
		for i := 0; i+1 < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return Color{}, InvalidHex
			}
			v[i/2] = hi<<4 | lo
		}
		return FromRgba8(v[0], v[1], v[2], v[3]), nil
	}

	return Color{}, InvalidHex
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
