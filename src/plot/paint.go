package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"
	"sync"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dlusion/INFO-474-Midterm/src/pokedex"
)

const (
	tickSize      = 6
	tickFontSize  = 10
	labelFontSize = 12
	legendFont    = 10
	tooltipFont   = 11
	tooltipPad    = 6
	tooltipLineH  = 16
)

var (
	fontOnce sync.Once
	fontSet  func(chart.Renderer)
)

// setFont installs go-chart's default font on r. Text is skipped if the font
// could not be loaded.
func setFont(r chart.Renderer) bool {
	fontOnce.Do(func() {
		f, err := chart.GetDefaultFont()
		if err != nil {
			pokedex.Warnf("default font unavailable, text disabled: %v", err)
			return
		}
		fontSet = func(r chart.Renderer) { r.SetFont(f) }
	})
	if fontSet == nil {
		return false
	}
	fontSet(r)
	return true
}

// Paint draws the current scene of v onto r: background, axes, points,
// legend and, when visible, the tooltip.
func Paint(v *View, r chart.Renderer) {
	w, h := v.layout.SurfaceSize()
	text := setFont(r)

	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeWidth(0)
	r.MoveTo(0, 0)
	r.LineTo(w, 0)
	r.LineTo(w, h)
	r.LineTo(0, h)
	r.Close()
	r.Fill()

	for _, a := range v.axes {
		paintAxis(r, a, text)
	}
	for _, p := range v.points {
		if !p.Plotted {
			continue
		}
		r.ResetStyle()
		r.SetFillColor(p.Fill)
		r.SetStrokeColor(p.Stroke)
		r.SetStrokeWidth(1)
		r.Circle(p.R, px(p.CX), px(p.CY))
		r.FillStroke()
	}
	for _, e := range v.legend {
		paintLegendEntry(r, e, text)
	}
	if v.tooltip.Visible && text {
		paintTooltip(r, v.tooltip, w)
	}
}

func paintAxis(r chart.Renderer, a Axis, text bool) {
	r.ResetStyle()
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(1)
	r0, r1 := a.Scale.Range[0], a.Scale.Range[1]
	off := px(a.Offset)
	switch a.Orient {
	case OrientBottom:
		r.MoveTo(px(r0), off+tickSize)
		r.LineTo(px(r0), off)
		r.LineTo(px(r1), off)
		r.LineTo(px(r1), off+tickSize)
		r.Stroke()
		for _, t := range a.Ticks {
			r.MoveTo(px(t.Pos), off)
			r.LineTo(px(t.Pos), off+tickSize)
			r.Stroke()
		}
	case OrientLeft:
		r.MoveTo(off-tickSize, px(r0))
		r.LineTo(off, px(r0))
		r.LineTo(off, px(r1))
		r.LineTo(off-tickSize, px(r1))
		r.Stroke()
		for _, t := range a.Ticks {
			r.MoveTo(off-tickSize, px(t.Pos))
			r.LineTo(off, px(t.Pos))
			r.Stroke()
		}
	}
	if !text {
		return
	}
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(tickFontSize)
	for _, t := range a.Ticks {
		b := r.MeasureText(t.Label)
		switch a.Orient {
		case OrientBottom:
			r.Text(t.Label, px(t.Pos)-b.Width()/2, off+tickSize+3+b.Height())
		case OrientLeft:
			r.Text(t.Label, off-tickSize-3-b.Width(), px(t.Pos)+b.Height()/2)
		}
	}
	r.SetFontSize(labelFontSize)
	b := r.MeasureText(a.Label)
	if a.LabelRotation != 0 {
		r.SetTextRotation(chart.DegreesToRadians(a.LabelRotation))
		r.Text(a.Label, px(a.LabelX), px(a.LabelY)+b.Width()/2)
		r.ClearTextRotation()
		return
	}
	r.Text(a.Label, px(a.LabelX)-b.Width()/2, px(a.LabelY))
}

func paintLegendEntry(r chart.Renderer, e LegendEntry, text bool) {
	r.ResetStyle()
	r.SetFillColor(e.Color)
	r.SetStrokeColor(e.StrokeColor)
	r.SetStrokeWidth(e.StrokeWidth)
	x0, y0 := px(e.X), px(e.Y)
	x1, y1 := px(e.X+e.Size), px(e.Y+e.Size)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.FillStroke()
	if !text {
		return
	}
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(legendFont)
	b := r.MeasureText(e.Category)
	x := px(e.LabelX)
	if e.LabelAnchorR {
		x -= b.Width()
	}
	r.Text(e.Category, x, px(e.LabelY)+b.Height()/2)
}

func paintTooltip(r chart.Renderer, t Tooltip, surfaceW int) {
	r.ResetStyle()
	r.SetFontSize(tooltipFont)
	wMax := 0
	for _, l := range t.Lines {
		if bw := r.MeasureText(l).Width(); bw > wMax {
			wMax = bw
		}
	}
	bw := wMax + 2*tooltipPad
	bh := len(t.Lines)*tooltipLineH + 2*tooltipPad
	x, y := px(t.X), px(t.Y)
	if x+bw > surfaceW {
		x = surfaceW - bw
	}
	r.SetFillColor(drawing.Color{R: 255, G: 255, B: 255, A: 230})
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(1)
	r.MoveTo(x, y)
	r.LineTo(x+bw, y)
	r.LineTo(x+bw, y+bh)
	r.LineTo(x, y+bh)
	r.Close()
	r.FillStroke()
	r.SetFontColor(drawing.ColorBlack)
	for i, l := range t.Lines {
		r.Text(l, x+tooltipPad, y+tooltipPad+(i+1)*tooltipLineH-4)
	}
}

func px(v float64) int { return int(math.Round(v)) }

// Encode paints v with a renderer from provider (chart.PNG or chart.SVG) and
// writes the result to w.
func Encode(v *View, provider chart.RendererProvider, w io.Writer) error {
	width, height := v.layout.SurfaceSize()
	r, err := provider(width, height)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	Paint(v, r)
	if err := r.Save(w); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// Image rasterises v. On failure it returns a blank surface with the error
// printed on it, so a redraw always has something visible to show.
func Image(v *View) image.Image {
	var buf bytes.Buffer
	if err := Encode(v, chart.PNG, &buf); err != nil {
		pokedex.Errorf("[viewer] chart render error: %v; showing blank fallback", err)
		w, h := v.layout.SurfaceSize()
		return Banner(Blank(w, h), "Render failed: "+err.Error())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		pokedex.Errorf("[viewer] chart decode error: %v; showing blank fallback", err)
		w, h := v.layout.SurfaceSize()
		return Banner(Blank(w, h), "Render failed: "+err.Error())
	}
	return img
}

// Blank returns a white surface.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// Banner draws text in a dark box near the top-left of img, used for empty
// selections and load failures.
func Banner(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 220
	y := b.Min.Y + 80
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
