package csscolorparser

import "strings"

// ParseColors parses a comma-separated list of color strings. Commas inside
// parentheses belong to the color function, not the list, so legacy forms
// such as "rgb(0,255,0)" work as list elements. Empty elements are skipped.
//
// Parsing stops at the first invalid element; the returned error is a
// *ParseColorsError carrying the offending substring.
func ParseColors(s string) ([]Color, error) {
	var colors []Color
	sc := ColorScanner{s: s}
	for sc.Scan() {
		colors = append(colors, sc.Color())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return colors, nil
}

// ColorScanner iterates over a comma-separated list of colors without
// allocating the whole result slice. Create one with ScanColors.
type ColorScanner struct {
	s     string
	pos   int
	text  string
	color Color
	err   *ParseColorsError
}

// ScanColors returns a scanner over the comma-separated colors in s.
func ScanColors(s string) *ColorScanner {
	return &ColorScanner{s: s}
}

// Scan advances to the next non-empty element. It returns false when the
// input is exhausted or an element fails to parse; Err distinguishes the
// two.
func (sc *ColorScanner) Scan() bool {
	for sc.err == nil && sc.pos < len(sc.s) {
		start := sc.pos
		nesting := 0
	scan:
		for sc.pos < len(sc.s) {
			switch sc.s[sc.pos] {
			case '(':
				nesting++
			case ')':
				if nesting > 0 {
					nesting--
				}
			case ',':
				if nesting == 0 {
					break scan
				}
			}
			sc.pos++
		}
		elem := sc.s[start:sc.pos]
		if sc.pos < len(sc.s) {
			sc.pos++ // skip the comma
		}
		if strings.TrimSpace(elem) == "" {
			continue
		}
		c, err := Parse(elem)
		if err != nil {
			sc.err = &ParseColorsError{Err: err.(ParseColorError), S: elem}
			return false
		}
		sc.text = elem
		sc.color = c
		return true
	}
	return false
}

// Color returns the color parsed by the last successful Scan.
func (sc *ColorScanner) Color() Color {
	return sc.color
}

// Text returns the substring the last successful Scan parsed, without
// surrounding whitespace trimmed.
func (sc *ColorScanner) Text() string {
	return sc.text
}

// Err returns the error that stopped Scan, or nil at normal end of input.
func (sc *ColorScanner) Err() error {
	if sc.err != nil {
		return sc.err
	}
	return nil
}
