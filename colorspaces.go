package csscolorparser

import "math"

// References:
//   https://www.w3.org/TR/css-color-4/#color-conversion-code
//   https://bottosson.github.io/posts/oklab/
//
// None of these functions clamp their outputs. Out-of-range values are
// allowed to pass through so that relative-color chains can carry
// overshoot between steps; clamping happens at the output boundary.

func lin_srgb(v float64) float64 {
	if v >= 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func gam_srgb(v float64) float64 {
	if v >= 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

func hue_to_rgb(n1, n2, h float64) float64 {
	h = modulo(h, 6)

	if h < 1 {
		return n1 + (n2-n1)*h
	}
	if h < 3 {
		return n2
	}
	if h < 4 {
		return n1 + (n2-n1)*(4-h)
	}
	return n1
}

// h in [0,360], s and l in [0,1]. A NaN hue (the "none" sentinel and the
// hue of achromatic colors) converts like zero.
func hsl_to_rgb(h, s, l float64) (float64, float64, float64) {
	if math.IsNaN(h) {
		h = 0
	}

	if s == 0 {
		return l, l, l
	}

	var n2 float64
	if l < 0.5 {
		n2 = l * (1 + s)
	} else {
		n2 = l + s - l*s
	}

	n1 := 2*l - n2
	h /= 60
	r := hue_to_rgb(n1, n2, h+2)
	g := hue_to_rgb(n1, n2, h)
	b := hue_to_rgb(n1, n2, h-2)
	return r, g, b
}

func hwb_to_rgb(hue, white, black float64) (float64, float64, float64) {
	if white+black >= 1 {
		gray := white / (white + black)
		return gray, gray, gray
	}

	r, g, b := hsl_to_rgb(hue, 1, 0.5)
	r = r*(1-white-black) + white
	g = g*(1-white-black) + white
	b = b*(1-white-black) + white
	return r, g, b
}

func hsv_to_hsl(h, s, v float64) (float64, float64, float64) {
	l := (2 - s) * v / 2

	if l != 0 {
		if l == 1 {
			s = 0
		} else if l < 0.5 {
			s = s * v / (l * 2)
		} else {
			s = s * v / (2 - l*2)
		}
	}

	return h, s, l
}

// HSV deliberately reuses the HSL primitive rather than having its own
// conversion path.
func hsv_to_rgb(h, s, v float64) (float64, float64, float64) {
	return hsl_to_rgb(hsv_to_hsl(h, s, v))
}

func rgb_to_hsv(r, g, b float64) (float64, float64, float64) {
	v := math.Max(r, math.Max(g, b))
	d := v - math.Min(r, math.Min(g, b))

	if d == 0 {
		return math.NaN(), 0, v
	}

	s := d / v
	dr := (v - r) / d
	dg := (v - g) / d
	db := (v - b) / d

	var h float64
	switch v {
	case r:
		h = db - dg
	case g:
		h = 2 + dr - db
	default:
		h = 4 + dg - dr
	}

	return normalize_angle(h * 60), s, v
}

func rgb_to_hsl(r, g, b float64) (float64, float64, float64) {
	min := math.Min(r, math.Min(g, b))
	max := math.Max(r, math.Max(g, b))
	l := (max + min) / 2

	if min == max {
		return math.NaN(), 0, l
	}

	d := max - min

	var s float64
	if l < 0.5 {
		s = d / (max + min)
	} else {
		s = d / (2 - max - min)
	}

	dr := (max - r) / d
	dg := (max - g) / d
	db := (max - b) / d

	var h float64
	switch max {
	case r:
		h = db - dg
	case g:
		h = 2 + dr - db
	default:
		h = 4 + dg - dr
	}

	return normalize_angle(h * 60), s, l
}

func rgb_to_hwb(r, g, b float64) (float64, float64, float64) {
	hue, _, _ := rgb_to_hsl(r, g, b)
	white := math.Min(r, math.Min(g, b))
	black := 1 - math.Max(r, math.Max(g, b))
	return hue, white, black
}

func oklab_to_lin_srgb(l, a, b float64) (float64, float64, float64) {
	l_ := cube(l + 0.3963377774*a + 0.2158037573*b)
	m_ := cube(l - 0.1055613458*a - 0.0638541728*b)
	s_ := cube(l - 0.0894841775*a - 1.2914855480*b)
	M := [9]float64{
		4.0767416621, -3.3077115913, 0.2309699292,
		-1.2684380046, 2.6097574011, -0.3413193965,
		-0.0041960863, -0.7034186147, 1.7076147010,
	}
	return multiplyMatrices(M, l_, m_, s_)
}

func lin_srgb_to_oklab(r, g, b float64) (float64, float64, float64) {
	l_ := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m_ := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s_ := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)
	M := [9]float64{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}
	return multiplyMatrices(M, l_, m_, s_)
}

// D65 white point, normalized to Y=1.0
const d65_x = 0.95047
const d65_y = 1.0
const d65_z = 1.08883

const labDelta = 6.0 / 29
const labDelta2 = labDelta * labDelta
const labDelta3 = labDelta2 * labDelta

func lin_srgb_to_xyz(r, g, b float64) (float64, float64, float64) {
	M := [9]float64{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	return multiplyMatrices(M, r, g, b)
}

func xyz_to_lin_srgb(x, y, z float64) (float64, float64, float64) {
	M := [9]float64{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}
	return multiplyMatrices(M, x, y, z)
}

func xyz_to_lab(x, y, z float64) (float64, float64, float64) {
	f := func(t float64) float64 {
		if t > labDelta3 {
			return math.Cbrt(t)
		}
		return t/(3*labDelta2) + 4.0/29
	}

	fx := f(x / d65_x)
	fy := f(y / d65_y)
	fz := f(z / d65_z)

	return 116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz)
}

func lab_to_xyz(l, a, b float64) (float64, float64, float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200

	f := func(t float64) float64 {
		if t > labDelta {
			return t * t * t
		}
		return (t - 16.0/116) * 3 * labDelta2
	}

	return d65_x * f(fx), d65_y * f(fy), d65_z * f(fz)
}

func lab_to_lin_srgb(l, a, b float64) (float64, float64, float64) {
	return xyz_to_lin_srgb(lab_to_xyz(l, a, b))
}

func lin_srgb_to_lab(r, g, b float64) (float64, float64, float64) {
	return xyz_to_lab(lin_srgb_to_xyz(r, g, b))
}

// lab_to_lch is the polar form shared by Lab/LCh and Oklab/OkLCh. The hue
// comes back in degrees, normalized to [0,360).
func lab_to_lch(l, a, b float64) (float64, float64, float64) {
	hue := math.Atan2(b, a) * (180 / math.Pi)
	if hue < 0 {
		hue += 360
	}
	return l, math.Sqrt(a*a + b*b), hue
}

func lch_to_lab(l, c, h float64) (float64, float64, float64) {
	if math.IsNaN(h) {
		h = 0
	}
	return l, c * math.Cos(h*math.Pi/180), c * math.Sin(h*math.Pi/180)
}

func multiplyMatrices(A [9]float64, b0, b1, b2 float64) (float64, float64, float64) {
	return A[0]*b0 + A[1]*b1 + A[2]*b2,
		A[3]*b0 + A[4]*b1 + A[5]*b2,
		A[6]*b0 + A[7]*b1 + A[8]*b2
}

func cube(t float64) float64 {
	return t * t * t
}

func normalize_angle(t float64) float64 {
	return modulo(t, 360)
}

// interp_angle blends two hues along the shorter arc.
func interp_angle(a0, a1, t float64) float64 {
	delta := modulo(a1-a0+180, 360) - 180
	return modulo(a0+t*delta, 360)
}

func modulo(x, n float64) float64 {
	return math.Mod(math.Mod(x, n)+n, n)
}

// remap maps t from the range [a,b] to the range [c,d].
func remap(t, a, b, c, d float64) float64 {
	return (t-a)*((d-c)/(b-a)) + c
}
