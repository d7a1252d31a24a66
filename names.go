package csscolorparser

import (
	"strings"

	"golang.org/x/image/colornames"
)

// namedColors maps lowercase CSS color keywords to their sRGB values. The
// SVG 1.1 names come from the colornames package; "rebeccapurple" was added
// to CSS later and is layered on top.
var namedColors = func() map[string][3]uint8 {
	m := make(map[string][3]uint8, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		m[name] = [3]uint8{c.R, c.G, c.B}
	}
	m["rebeccapurple"] = [3]uint8{102, 51, 153}
	return m
}()

// colorNames is the reverse of namedColors. Several keywords share an RGB
// value ("aqua"/"cyan", the "gray"/"grey" family); iterating the sorted
// name list and keeping the first occurrence makes the winner stable.
var colorNames = func() map[[3]uint8]string {
	m := make(map[[3]uint8]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		rgb := [3]uint8{c.R, c.G, c.B}
		if _, ok := m[rgb]; !ok {
			m[rgb] = name
		}
	}
	m[[3]uint8{102, 51, 153}] = "rebeccapurple"
	return m
}()

func namedColor(s string) ([3]uint8, bool) {
	// The longest keyword is "lightgoldenrodyellow" at 20 bytes; anything
	// longer cannot be a name and is not worth lowercasing.
	if len(s) < 3 || len(s) > 20 {
		return [3]uint8{}, false
	}
	rgb, ok := namedColors[strings.ToLower(s)]
	return rgb, ok
}
