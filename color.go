package orbis

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color with float64 channels, normally in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// MakeColor converts a color.Color to a Color.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	const d = 0xffff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

// HexColor parses colors of the form "a1b2c3", "#a1b2c3", "abc" or "#abc".
func HexColor(x string) Color {
	if len(x) > 0 && x[0] == '#' {
		x = x[1:]
	}
	var r, g, b int
	a := 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = (r << 4) | r
		g = (g << 4) | g
		b = (b << 4) | b
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	const d = 255
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

// NRGBA converts to an 8-bit color with [0,255] clamping.
func (a Color) NRGBA() color.NRGBA {
	r := uint8(Clamp(a.R, 0, 1) * 255)
	g := uint8(Clamp(a.G, 0, 1) * 255)
	b := uint8(Clamp(a.B, 0, 1) * 255)
	alpha := uint8(Clamp(a.A, 0, 1) * 255)
	return color.NRGBA{r, g, b, alpha}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

// Mul multiplies componentwise.
func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

// MulScalar scales the RGB channels, leaving alpha alone.
func (a Color) MulScalar(s float64) Color {
	return Color{a.R * s, a.G * s, a.B * s, a.A}
}

func (a Color) DivScalar(s float64) Color {
	return Color{a.R / s, a.G / s, a.B / s, a.A}
}

// Lerp interpolates every channel, alpha included. MulScalar keeps alpha
// fixed, so the interpolation is built from mulAll instead.
func (a Color) Lerp(b Color, t float64) Color {
	return a.mulAll(1 - t).Add(b.mulAll(t))
}

func (a Color) Min(b Color) Color {
	return Color{math.Min(a.R, b.R), math.Min(a.G, b.G), math.Min(a.B, b.B), math.Min(a.A, b.A)}
}

func (a Color) Max(b Color) Color {
	return Color{math.Max(a.R, b.R), math.Max(a.G, b.G), math.Max(a.B, b.B), math.Max(a.A, b.A)}
}

// Saturate clamps every channel into [0, 1].
func (a Color) Saturate() Color {
	return Color{Saturate(a.R), Saturate(a.G), Saturate(a.B), Saturate(a.A)}
}

// Alpha returns the color with its alpha channel replaced.
func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}
