package colors

import (
	"image/color"
	"math"
	"strings"
)

type ColorBlindMode int

var SupportedColorBlindModes = [...]string{
	Normal,
	Universal,
	Protanopia,
	Tritanopia,
	Deuteranomaly,
}

const (
	Normal        = "Normal"
	Universal     = "Universal"
	Protanopia    = "Protanopia"
	Tritanopia    = "Tritanopia"
	Deuteranomaly = "Deuteranomaly"
	Unknown       = "Unknown"
)

const (
	ModeNormal        ColorBlindMode = iota // Green → Yellow → Red
	ModeUniversal                           // Blue → Gray → Orange
	ModeProtanopia                          // Blue → White → Brown
	ModeTritanopia                          // Teal → Gray → Red
	ModeDeuteranomaly                       // Blue → Beige → Brown
)

func (m ColorBlindMode) String() string {
	switch m {
	case ModeNormal:
		return Normal
	case ModeUniversal:
		return Universal
	case ModeProtanopia:
		return Protanopia
	case ModeTritanopia:
		return Tritanopia
	case ModeDeuteranomaly:
		return Deuteranomaly
	default:
		return Unknown
	}
}

func StringToColorBlindMode(s string) ColorBlindMode {
	for i, name := range SupportedColorBlindModes {
		if strings.EqualFold(s, name) {
			return ColorBlindMode(i)
		}
	}
	return ModeNormal
}

type palette struct {
	low, mid, high color.NRGBA
}

var palettes = map[ColorBlindMode]palette{
	ModeNormal:        {color.NRGBA{0, 255, 0, 255}, color.NRGBA{255, 255, 0, 255}, color.NRGBA{255, 0, 0, 255}},
	ModeUniversal:     {color.NRGBA{33, 102, 172, 255}, color.NRGBA{247, 247, 247, 255}, color.NRGBA{255, 165, 0, 255}},
	ModeProtanopia:    {color.NRGBA{5, 113, 176, 255}, color.NRGBA{247, 247, 247, 255}, color.NRGBA{150, 75, 0, 255}},
	ModeTritanopia:    {color.NRGBA{0, 128, 128, 255}, color.NRGBA{247, 247, 247, 255}, color.NRGBA{215, 48, 39, 255}},
	ModeDeuteranomaly: {color.NRGBA{0x4A, 0x90, 0xE2, 255}, color.NRGBA{0xF5, 0xE6, 0xB3, 255}, color.NRGBA{0x8B, 0x45, 0x13, 255}},
}

// Interpolate returns the color for value on the low → mid → high spectrum
// of mode, value is clamped to [min, max].
func Interpolate(min, max, value float64, mode ColorBlindMode) color.NRGBA {
	t := (value - min) / (max - min)
	if math.IsNaN(t) {
		return color.NRGBA{128, 128, 128, 255}
	}
	t = math.Max(0, math.Min(1, t))

	p, ok := palettes[mode]
	if !ok {
		p = palettes[ModeNormal]
	}

	const divider = 0.5
	if t < divider {
		return lerpColor(p.low, p.mid, t/divider)
	}
	return lerpColor(p.mid, p.high, (t-divider)/(1-divider))
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func lerpColor(c1, c2 color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(lerp(float64(c1.R), float64(c2.R), t)),
		G: uint8(lerp(float64(c1.G), float64(c2.G), t)),
		B: uint8(lerp(float64(c1.B), float64(c2.B), t)),
		A: 255,
	}
}
