package colors

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// FromFloats builds a color from 0..1 channel intensities, values outside
// the range are clamped.
func FromFloats(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: unit(r), G: unit(g), B: unit(b), A: unit(a)}
}

func unit(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = unit(a)
	return n
}

// Needle returns the default color of needle i, cycling through three
// half intensity mixes.
func Needle(i int) color.NRGBA {
	return FromFloats(
		float64(i%3)*.5,
		float64((i+1)%3)*.5,
		float64((i+2)%3)*.5,
		1,
	)
}

// Parse accepts "#rgb", "#rrggbb", "#rrggbbaa", "r,g,b[,a]" with 0..1
// floats, or an SVG color name such as "steelblue".
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return color.NRGBA{}, fmt.Errorf("empty color")
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.Contains(s, ","):
		return parseFloats(s)
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown color name %q", s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

func parseHex(s string) (color.NRGBA, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color #%s", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color #%s: %w", s, err)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

func parseFloats(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("expected 3 or 4 components in %q", s)
	}
	v := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = f
	}
	return FromFloats(v[0], v[1], v[2], v[3]), nil
}

// Format renders c as "#rrggbbaa", the inverse of Parse for hex input.
func Format(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
