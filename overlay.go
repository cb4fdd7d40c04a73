package main

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/spinview/progress"
)

const (
	barWidth  = 240
	barHeight = 4
)

// LoadingOverlay shows load progress over the canvas until every frame has
// completed, then fades out.
type LoadingOverlay struct {
	ui    *ebitenui.UI
	label *widget.Text
	fade  progress.Fade

	status    progress.Status
	readyAt   time.Time
	alpha     float64
	offscreen *ebiten.Image
}

// NewLoadingOverlay builds a centered panel with a title and a percentage
// label. The bar underneath is drawn directly, not by ebitenui.
func NewLoadingOverlay(fade progress.Fade) *LoadingOverlay {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	title := widget.NewText(
		widget.TextOpts.Text("Loading", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	label := widget.NewText(
		widget.TextOpts.Text("0%", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 36, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(barWidth+60, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &LoadingOverlay{
		ui:    &ebitenui.UI{Container: root},
		label: label,
		fade:  fade,
		alpha: 1,
	}
}

// Reset shows the overlay again for a new asset set.
func (o *LoadingOverlay) Reset() {
	o.status = progress.Status{}
	o.readyAt = time.Time{}
	o.alpha = 1
	o.label.Label = "0%"
}

// Update feeds the latest reporter status. It must be called every tick.
func (o *LoadingOverlay) Update(s progress.Status, now time.Time) {
	if s.Ready && !o.status.Ready {
		o.readyAt = now
	}
	if s != o.status {
		o.label.Label = fmt.Sprintf("%d%%", s.Percent)
	}
	o.status = s

	if o.status.Ready {
		o.alpha = o.fade.Alpha(now.Sub(o.readyAt))
	}
	if o.Visible() {
		o.ui.Update()
	}
}

// Visible reports whether the overlay still draws anything.
func (o *LoadingOverlay) Visible() bool {
	return o.alpha > 0
}

func (o *LoadingOverlay) Draw(screen *ebiten.Image) {
	if !o.Visible() {
		return
	}
	b := screen.Bounds()
	if o.offscreen == nil || o.offscreen.Bounds() != b {
		if o.offscreen != nil {
			o.offscreen.Deallocate()
		}
		o.offscreen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	o.offscreen.Clear()
	o.ui.Draw(o.offscreen)
	o.drawBar(o.offscreen)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(o.alpha))
	screen.DrawImage(o.offscreen, op)
}

func (o *LoadingOverlay) drawBar(dst *ebiten.Image) {
	b := dst.Bounds()
	x := b.Min.X + (b.Dx()-barWidth)/2
	y := b.Min.Y + b.Dy()/2 + 24
	track := image.Rect(x, y, x+barWidth, y+barHeight)
	fill := image.Rect(x, y, x+barWidth*o.status.Percent/100, y+barHeight)

	dst.SubImage(track).(*ebiten.Image).Fill(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff})
	if !fill.Empty() {
		dst.SubImage(fill).(*ebiten.Image).Fill(color.NRGBA{R: 0xff, G: 0xc0, B: 0x00, A: 0xff})
	}
}
