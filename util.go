package orbis

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	_ "image/jpeg" // Ensure decoders are present
)

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Clamp clamps x into [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt clamps x into [lo, hi].
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps x into [0, 1].
func Saturate(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep is the cubic Hermite 0..1 transition across [edge0, edge1].
// Degenerate edges collapse to a step so a zero-width range cannot divide
// by zero.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// SaturateRatio is the saturating division used for every distance fade in
// the ring pipeline. A non-positive divisor counts as fully faded rather
// than producing Inf/NaN.
func SaturateRatio(num, den float64) float64 {
	if den <= 0 {
		return 1
	}
	return Saturate(num / den)
}

// LoadImage loads an image from a file path.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("orbis: decoding %s: %w", path, err)
	}
	return im, nil
}

// SavePNG writes an image to a file path.
func SavePNG(path string, im image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, im)
}
