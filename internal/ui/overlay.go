//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/RNA33/ICG/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const histBuckets = 32

// Overlay draws optional diagnostic layers over the canvas. Key 1
// toggles a live histogram of the cell intensity distribution; flat bars
// mean the view's output is evenly spread, spikes betray clustering.
type Overlay struct {
	view  core.View
	scale int

	showHist bool
	counts   [histBuckets]int

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the provided view.
func NewOverlay(view core.View, scale int) *Overlay {
	o := &Overlay{view: view, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHist = !o.showHist
	}
}

// Draw renders the enabled overlay layers onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHist {
		return
	}
	o.tally()
	o.drawHistogram(screen)
}

// tally recounts the intensity distribution for the current frame.
func (o *Overlay) tally() {
	for i := range o.counts {
		o.counts[i] = 0
	}
	for _, c := range o.view.Cells() {
		o.counts[int(c)*histBuckets/256]++
	}
}

func (o *Overlay) drawHistogram(screen *ebiten.Image) {
	size := o.view.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	peak := 0
	for _, c := range o.counts {
		if c > peak {
			peak = c
		}
	}
	if peak == 0 {
		return
	}

	const margin = 8
	maxBarHeight := float64(size.H*scale) * 0.25
	barWidth := float64(size.W*scale-2*margin) / histBuckets
	baseY := float64(size.H*scale - margin)

	barColor := color.RGBA{R: 80, G: 200, B: 255, A: 180}
	for i, c := range o.counts {
		if c == 0 {
			continue
		}
		barHeight := maxBarHeight * float64(c) / float64(peak)
		x := float64(margin) + float64(i)*barWidth
		o.drawBar(screen, x, baseY-barHeight, barWidth-1, barHeight, barColor)
	}

	label := fmt.Sprintf("intensity histogram  peak %d", peak)
	labelY := int(baseY-maxBarHeight) - 6
	text.Draw(screen, label, basicfont.Face7x13, margin, labelY, color.RGBA{R: 200, G: 220, B: 255, A: 255})
}

// drawBar stretches the 1x1 white pixel into a solid tinted rectangle.
func (o *Overlay) drawBar(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
