package orbis

import (
	"bytes"
	"image"
	"math"
	"net/http"
	"time"

	_ "image/jpeg" // Ensure decoders are present
	_ "image/png"

	"github.com/nfnt/resize"
)

// Texture samples an RGBA color at a normalized UV coordinate. Sampling is
// read-only and safe to call from many goroutines at once.
type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

// TextureTransform is a tiling/offset transform applied before sampling,
// with the same semantics as a GPU material's texture scale and offset.
type TextureTransform struct {
	ScaleU, ScaleV   float64
	OffsetU, OffsetV float64
}

// IdentityTransform leaves coordinates untouched.
func IdentityTransform() TextureTransform {
	return TextureTransform{ScaleU: 1, ScaleV: 1}
}

// Apply maps a UV coordinate through the transform.
func (t TextureTransform) Apply(u, v float64) (float64, float64) {
	return u*t.ScaleU + t.OffsetU, v*t.ScaleV + t.OffsetV
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) Texture {
	return &ImageTexture{
		Width:  im.Bounds().Dx(),
		Height: im.Bounds().Dy(),
		Image:  im,
	}
}

// NewImageTextureLimit downsamples the image so neither side exceeds limit
// before wrapping it. Ring detail and dust maps are sampled at far lower
// frequencies than their source resolution, so shrinking them up front keeps
// the cache footprint down without visible loss.
func NewImageTextureLimit(im image.Image, limit int) Texture {
	if limit > 0 && (im.Bounds().Dx() > limit || im.Bounds().Dy() > limit) {
		im = resize.Thumbnail(uint(limit), uint(limit), im, resize.Bilinear)
	}
	return NewImageTexture(im)
}

func LoadTexture(path string) (Texture, error) {
	im, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func LoadTextureFromURL(url string) Texture {
	client := http.Client{
		Timeout: 10 * time.Second, // Prevent hanging
	}
	resp, err := client.Get(url)
	if err != nil || resp.StatusCode != 200 {
		return nil
	}
	defer resp.Body.Close()

	im, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil
	}
	return NewImageTexture(im)
}

func TexFromBytes(data []byte) Texture {
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return NewImageTexture(im)
}

func (t *ImageTexture) Sample(u, v float64) Color {
	// Wrap coords
	u = u - math.Floor(u)
	v = v - math.Floor(v)
	// Flip V for standard UV coords
	v = 1 - v

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Bounds check
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return MakeColor(t.Image.At(x, y))
}

func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = u - math.Floor(u)
	v = v - math.Floor(v)
	v = 1 - v
	x := u * float64(t.Width-1)
	y := v * float64(t.Height-1)
	x0 := int(x)
	y0 := int(y)
	x1 := ClampInt(x0+1, 0, t.Width-1)
	y1 := ClampInt(y0+1, 0, t.Height-1)
	x -= float64(x0)
	y -= float64(y0)
	c00 := MakeColor(t.Image.At(x0, y0))
	c01 := MakeColor(t.Image.At(x0, y1))
	c10 := MakeColor(t.Image.At(x1, y0))
	c11 := MakeColor(t.Image.At(x1, y1))
	c := Color{}
	c = c.Add(c00.mulAll((1 - x) * (1 - y)))
	c = c.Add(c10.mulAll(x * (1 - y)))
	c = c.Add(c01.mulAll((1 - x) * y))
	c = c.Add(c11.mulAll(x * y))
	return c
}

// mulAll scales every channel including alpha, unlike MulScalar.
func (a Color) mulAll(s float64) Color {
	return Color{a.R * s, a.G * s, a.B * s, a.A * s}
}
