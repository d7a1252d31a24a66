package csscolorparser

import "fmt"

// ParseColorError identifies the syntactic category that failed to parse.
// The parser commits to a category as soon as it recognizes the function
// name, so e.g. a malformed component inside "hsl(...)" is always
// reported as InvalidHsl.
type ParseColorError uint8

const (
	InvalidHex ParseColorError = iota
	InvalidRgb
	InvalidHsl
	InvalidHwb
	InvalidHsv
	InvalidLab
	InvalidLch
	InvalidOklab
	InvalidOklch
	InvalidFunction
	InvalidUnknown

	// InvalidNesting is returned when relative colors ("from ...") are
	// nested deeper than the parser is willing to recurse.
	InvalidNesting
)

func (e ParseColorError) Error() string {
	switch e {
	case InvalidHex:
		return "invalid hex format"
	case InvalidRgb:
		return "invalid rgb format"
	case InvalidHsl:
		return "invalid hsl format"
	case InvalidHwb:
		return "invalid hwb format"
	case InvalidHsv:
		return "invalid hsv format"
	case InvalidLab:
		return "invalid lab format"
	case InvalidLch:
		return "invalid lch format"
	case InvalidOklab:
		return "invalid oklab format"
	case InvalidOklch:
		return "invalid oklch format"
	case InvalidFunction:
		return "invalid color function"
	case InvalidUnknown:
		return "invalid unknown format"
	case InvalidNesting:
		return "invalid nesting depth"
	}
	return "invalid color"
}

func (e ParseColorError) String() string {
	return e.Error()
}

// ParseColorsError is returned by ParseColors for each element that fails
// to parse. It carries the offending substring.
type ParseColorsError struct {
	Err ParseColorError
	S   string
}

func (e *ParseColorsError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.S)
}

func (e *ParseColorsError) Unwrap() error {
	return e.Err
}
