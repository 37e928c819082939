package cg

import (
	"image/color"
	"math"
)

// Color is a non-premultiplied 8-bit RGBA color, the pixel format of Image.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromFloat converts float components in [0, 1] to an opaque color.
// Each channel is scaled by 255, floored and clamped to [0, 255], so
// out-of-range lighting results saturate instead of wrapping.
func FromFloat(r, g, b float64) Color {
	return Color{R: floatToByte(r), G: floatToByte(g), B: floatToByte(b), A: 255}
}

// FromVec3 converts an RGB triple in [0, 1] to an opaque color.
func FromVec3(v Vec3) Color {
	return FromFloat(v.X, v.Y, v.Z)
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Float returns the RGB channels scaled to [0, 1].
func (c Color) Float() Vec3 {
	return Vec3{X: float64(c.R) / 255, Y: float64(c.G) / 255, Z: float64(c.B) / 255}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Opaque returns c with alpha set to 255.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// Lerp performs linear interpolation between two colors, all four
// channels included. t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: lerpByte(c.R, other.R, t),
		G: lerpByte(c.G, other.G, t),
		B: lerpByte(c.B, other.B, t),
		A: lerpByte(c.A, other.A, t),
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

func floatToByte(v float64) uint8 {
	return uint8(clamp255(math.Floor(v * 255)))
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(clamp255(math.Round(float64(a) + (float64(b)-float64(a))*t)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Gray        = RGB(100, 100, 100)
	LightGray   = RGB(240, 240, 240)
	DarkGreen   = RGB(0, 127, 0)
	LightGreen  = RGB(0, 255, 0)
	Transparent = Color{}
)
