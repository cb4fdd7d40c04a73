package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/milk9111/spinview/sequence"
)

// RasterCanvas is a CPU canvas backed by an *image.RGBA. Frames are scaled
// with Catmull-Rom resampling.
type RasterCanvas struct {
	img        *image.RGBA
	background color.Color
}

// NewRasterCanvas returns a w x h canvas cleared to background. A nil
// background clears to transparent.
func NewRasterCanvas(w, h int, background color.Color) *RasterCanvas {
	if background == nil {
		background = color.Transparent
	}
	c := &RasterCanvas{background: background}
	c.Resize(w, h)
	c.Clear()
	return c
}

func (c *RasterCanvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if c.img != nil && c.img.Rect.Dx() == w && c.img.Rect.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (c *RasterCanvas) Size() (int, int) {
	if c.img == nil {
		return 0, 0
	}
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

func (c *RasterCanvas) Clear() {
	if c.img == nil {
		return
	}
	draw.Draw(c.img, c.img.Rect, image.NewUniform(c.background), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawFrame(f *sequence.Frame, dst Rect) {
	if c.img == nil || !f.Ready() || dst.Empty() {
		return
	}
	r := image.Rect(
		int(math.Round(dst.X)),
		int(math.Round(dst.Y)),
		int(math.Round(dst.X+dst.W)),
		int(math.Round(dst.Y+dst.H)),
	)
	draw.CatmullRom.Scale(c.img, r, f.Image, f.Image.Bounds(), draw.Over, nil)
}

// Image returns the backing store.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}
