package csscolorparser

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA implements the image/color.Color interface. The result is
// alpha-premultiplied, per that interface's contract.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Clamp()
	return uint32(cc.R * cc.A * 0xffff),
		uint32(cc.G * cc.A * 0xffff),
		uint32(cc.B * cc.A * 0xffff),
		uint32(cc.A * 0xffff)
}

// FromColor converts any image/color.Color, un-premultiplying through the
// NRGBA64 model so transparent pixels keep their channel values.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// Colorful returns the color as a go-colorful value for further color math.
// Alpha is dropped; go-colorful colors are opaque.
func (c Color) Colorful() colorful.Color {
	cc := c.Clamp()
	return colorful.Color{R: cc.R, G: cc.G, B: cc.B}
}

// FromColorful converts a go-colorful value, fully opaque.
func FromColorful(c colorful.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.HexString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting anything
// Parse accepts.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
