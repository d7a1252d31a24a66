package csscolorparser

import (
	"math"
	"strconv"
	"strings"
)

// stripPrefixFold removes prefix from s, matching case-insensitively.
func stripPrefixFold(s, prefix string) (string, bool) {
	if len(prefix) > len(s) {
		return "", false
	}
	if strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return "", false
}

// stripSuffixFold removes suffix from s, matching case-insensitively.
func stripSuffixFold(s, suffix string) (string, bool) {
	if len(suffix) > len(s) {
		return "", false
	}
	if strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return "", false
}

// parseFloat accepts the CSS number grammar: an optional sign, decimal
// digits, an optional decimal point, and an optional exponent. This is
// narrower than strconv.ParseFloat, which also accepts hex floats,
// underscores, "Inf", and "NaN".
func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E':
		default:
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parsePercentOrFloat reads "50%" as 0.5 and "0.5" as 0.5. The literal
// "none" reads as zero. isPercent reports which textual form was used,
// for the legacy dialect's format-consistency check.
func parsePercentOrFloat(s string) (value float64, isPercent bool, ok bool) {
	if strings.EqualFold(s, "none") {
		return 0, false, true
	}
	if t, found := strings.CutSuffix(s, "%"); found {
		v, ok := parseFloat(t)
		return v / 100, true, ok
	}
	v, ok := parseFloat(s)
	return v, false, ok
}

// parsePercentOr255 reads an RGB channel: "100%" is 1.0 and "255" is 1.0.
func parsePercentOr255(s string) (value float64, isPercent bool, ok bool) {
	if strings.EqualFold(s, "none") {
		return 0, false, true
	}
	if t, found := strings.CutSuffix(s, "%"); found {
		v, ok := parseFloat(t)
		return v / 100, true, ok
	}
	v, ok := parseFloat(s)
	return v / 255, false, ok
}

// parseAngle reads a hue in degrees. A bare number is degrees; the unit
// suffixes "deg", "grad", "rad", and "turn" are matched case-insensitively.
// The literal "none" reads as NaN, which survives conversion and is
// serialized back out as "none".
func parseAngle(s string) (float64, bool) {
	if strings.EqualFold(s, "none") {
		return math.NaN(), true
	}
	if t, found := stripSuffixFold(s, "deg"); found {
		return parseFloat(t)
	}
	if t, found := stripSuffixFold(s, "grad"); found {
		v, ok := parseFloat(t)
		return v * 360 / 400, ok
	}
	if t, found := stripSuffixFold(s, "rad"); found {
		v, ok := parseFloat(t)
		return v * (180 / math.Pi), ok
	}
	if t, found := stripSuffixFold(s, "turn"); found {
		v, ok := parseFloat(t)
		return v * 360, ok
	}
	return parseFloat(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func clamp01(t float64) float64 {
	return math.Min(math.Max(t, 0), 1)
}
