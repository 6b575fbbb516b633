package main

import (
	"image/color"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// computeContainRect returns where an imgW x imgH image is drawn inside a
// viewW x viewH widget with contain fitting, and the scale applied.
func computeContainRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return drawX, drawY, drawW, drawH, scale
}

// widgetToSurface maps a widget position into surface pixels. ok is false when
// the position falls outside the drawn image.
func widgetToSurface(pos fyne.Position, imgW, imgH float32, size fyne.Size) (x, y float64, ok bool) {
	dx, dy, dw, dh, scale := computeContainRect(imgW, imgH, size.Width, size.Height)
	if pos.X < dx || pos.X > dx+dw || pos.Y < dy || pos.Y > dy+dh {
		return 0, 0, false
	}
	return float64((pos.X - dx) / scale), float64((pos.Y - dy) / scale), true
}

// surfaceToWidget is the inverse of widgetToSurface.
func surfaceToWidget(x, y float64, imgW, imgH float32, size fyne.Size) fyne.Position {
	dx, dy, _, _, scale := computeContainRect(imgW, imgH, size.Width, size.Height)
	return fyne.NewPos(dx+float32(x)*scale, dy+float32(y)*scale)
}

// tooltipOverlay sits on top of the chart image, forwards pointer movement to
// the View and draws the View's tooltip.
type tooltipOverlay struct {
	widget.BaseWidget
	state *uiState
}

func newTooltipOverlay(state *uiState) *tooltipOverlay {
	t := &tooltipOverlay{state: state}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tooltipOverlay) surfaceSize() (float32, float32) {
	w, h := t.state.view.Layout().SurfaceSize()
	return float32(w), float32(h)
}

func (t *tooltipOverlay) CreateRenderer() fyne.WidgetRenderer {
	// background to ensure full hit-area for hover events
	bg := canvas.NewRectangle(color.RGBA{R: 0, G: 0, B: 0, A: 0})
	label := widget.NewRichText()
	label.Wrapping = fyne.TextWrapOff
	labelBG := canvas.NewRectangle(color.RGBA{R: 255, G: 255, B: 255, A: 235})
	labelBG.StrokeColor = color.Black
	labelBG.StrokeWidth = 1
	return &tooltipRenderer{t: t, bg: bg, labelBG: labelBG, label: label, objs: []fyne.CanvasObject{bg, labelBG, label}}
}

type tooltipRenderer struct {
	t       *tooltipOverlay
	bg      *canvas.Rectangle
	labelBG *canvas.Rectangle
	label   *widget.RichText
	objs    []fyne.CanvasObject
}

func (r *tooltipRenderer) Destroy() {}

func (r *tooltipRenderer) hide() {
	r.label.Segments = nil
	r.label.Move(fyne.NewPos(-1000, -1000))
	r.labelBG.Resize(fyne.NewSize(0, 0))
	r.labelBG.Move(fyne.NewPos(-1000, -1000))
}

func (r *tooltipRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	if r.t.state == nil || r.t.state.view == nil {
		r.hide()
		return
	}
	tt := r.t.state.view.Tooltip()
	if !tt.Visible {
		r.hide()
		return
	}
	r.label.Segments = []widget.RichTextSegment{&widget.TextSegment{Text: strings.Join(tt.Lines, "\n")}}
	r.label.Refresh()
	imgW, imgH := r.t.surfaceSize()
	pos := surfaceToWidget(tt.X, tt.Y, imgW, imgH, size)
	pad := float32(6)
	ts := r.label.MinSize()
	bgW := ts.Width + 2*pad
	bgH := ts.Height + 2*pad
	tx, ty := pos.X, pos.Y
	if tx+bgW > size.Width {
		tx = size.Width - bgW
	}
	if ty+bgH > size.Height {
		ty = size.Height - bgH
	}
	r.labelBG.Resize(fyne.NewSize(bgW, bgH))
	r.labelBG.Move(fyne.NewPos(tx, ty))
	r.label.Move(fyne.NewPos(tx+pad, ty+pad))
}

func (r *tooltipRenderer) MinSize() fyne.Size           { return fyne.NewSize(10, 10) }
func (r *tooltipRenderer) Objects() []fyne.CanvasObject { return r.objs }
func (r *tooltipRenderer) Refresh() {
	r.Layout(r.t.Size())
	r.bg.Refresh()
	r.labelBG.Refresh()
	r.label.Refresh()
}

func (t *tooltipOverlay) MouseMoved(ev *desktop.MouseEvent) {
	if t.state == nil || t.state.view == nil {
		return
	}
	imgW, imgH := t.surfaceSize()
	x, y, ok := widgetToSurface(ev.Position, imgW, imgH, t.Size())
	if !ok {
		t.state.view.PointerLeave()
		return
	}
	t.state.view.PointerMove(x, y)
}

func (t *tooltipOverlay) MouseIn(ev *desktop.MouseEvent) { t.MouseMoved(ev) }

func (t *tooltipOverlay) MouseOut() {
	if t.state != nil && t.state.view != nil {
		t.state.view.PointerLeave()
	}
}

var _ desktop.Hoverable = (*tooltipOverlay)(nil)
