package texture

import (
	"image"
	"image/color"
	"math"

	"github.com/kesseloak/lumenforge/pkg/core"
)

// Filter selects how Image samples between texel centers.
type Filter int

const (
	FilterBilinear Filter = iota
	FilterNearest
)

// Image samples an already-decoded raster (decoding a file into image.Image
// is asset loading, handled by the caller, not this package). u is clamped
// to [0,1]; v is flipped to image row order (v=0 is the bottom of the
// texture, row 0 of image.Image is the top).
type Image struct {
	Src    image.Image
	Filter Filter

	bounds image.Rectangle
}

// NewImage wraps a decoded raster for texture lookups.
func NewImage(src image.Image) *Image {
	return &Image{Src: src, Filter: FilterBilinear, bounds: src.Bounds()}
}

// Value samples Src at the given UV, converting to linear-ish float color
// via the standard library's 16-bit color conversion.
func (im *Image) Value(u, v float64, p core.Vec3) core.Color {
	u = math.Max(0, math.Min(1, u))
	v = 1.0 - math.Max(0, math.Min(1, v))

	w := float64(im.bounds.Dx())
	h := float64(im.bounds.Dy())
	if w == 0 || h == 0 {
		return core.Color{}
	}

	fx := u * (w - 1)
	fy := v * (h - 1)

	if im.Filter == FilterNearest {
		return im.texel(int(math.Round(fx)), int(math.Round(fy)))
	}
	return im.bilinear(fx, fy)
}

func (im *Image) bilinear(fx, fy float64) core.Color {
	x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
	x1, y1 := x0+1, y0+1
	tx, ty := fx-float64(x0), fy-float64(y0)

	c00 := im.texel(x0, y0)
	c10 := im.texel(x1, y0)
	c01 := im.texel(x0, y1)
	c11 := im.texel(x1, y1)

	top := c00.Multiply(1 - tx).Add(c10.Multiply(tx))
	bottom := c01.Multiply(1 - tx).Add(c11.Multiply(tx))
	return top.Multiply(1 - ty).Add(bottom.Multiply(ty))
}

func (im *Image) texel(x, y int) core.Color {
	x = clampInt(x, im.bounds.Min.X, im.bounds.Max.X-1)
	y = clampInt(y, im.bounds.Min.Y, im.bounds.Max.Y-1)

	r, g, b, _ := im.Src.At(x, y).RGBA()
	return core.NewVec3(srgbToLinear(r), srgbToLinear(g), srgbToLinear(b))
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func srgbToLinear(channel uint32) float64 {
	return float64(channel) / float64(0xffff)
}

// SolidColorImage builds an image.Image backed by a single color, used by
// tests and procedural callers that want an Image texture without decoding
// a file.
func SolidColorImage(c core.Color, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	px := color.RGBA{
		R: uint8(math.Max(0, math.Min(255, c.X*255))),
		G: uint8(math.Max(0, math.Min(255, c.Y*255))),
		B: uint8(math.Max(0, math.Min(255, c.Z*255))),
		A: 255,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, px)
		}
	}
	return img
}
