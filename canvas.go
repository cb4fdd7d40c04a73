package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spinview/render"
	"github.com/milk9111/spinview/sequence"
)

// gpuCanvas is the offscreen surface frames are rendered into. The screen
// presents it every refresh, so when a render is skipped the last drawn
// frame stays visible.
type gpuCanvas struct {
	img        *ebiten.Image
	background color.Color

	// Frame textures are uploaded on first draw and kept for the lifetime of
	// the asset set that owns the frame.
	textures map[*sequence.Frame]*ebiten.Image
}

func newGPUCanvas(background color.Color) *gpuCanvas {
	return &gpuCanvas{
		background: background,
		textures:   map[*sequence.Frame]*ebiten.Image{},
	}
}

func (c *gpuCanvas) Resize(w, h int) {
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
		c.img = nil
	}
	if w <= 0 || h <= 0 {
		return
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *gpuCanvas) Size() (int, int) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *gpuCanvas) Clear() {
	if c.img == nil {
		return
	}
	c.img.Fill(c.background)
}

func (c *gpuCanvas) DrawFrame(f *sequence.Frame, dst render.Rect) {
	if c.img == nil || !f.Ready() || dst.Empty() {
		return
	}
	tex, ok := c.textures[f]
	if !ok {
		tex = ebiten.NewImageFromImage(f.Image)
		c.textures[f] = tex
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(f.Width), dst.H/float64(f.Height))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	c.img.DrawImage(tex, op)
}

// present copies the canvas onto the screen.
func (c *gpuCanvas) present(screen *ebiten.Image) {
	if c.img == nil {
		return
	}
	screen.DrawImage(c.img, nil)
}

// releaseTextures frees every uploaded frame texture, used when the asset
// set is replaced.
func (c *gpuCanvas) releaseTextures() {
	for f, tex := range c.textures {
		tex.Deallocate()
		delete(c.textures, f)
	}
}
