// Package plot is the scatterplot render pipeline: scales, palette, the retained
// View scene and painting of that scene through go-chart renderers.
package plot

// Margin is the space between the surface edge and the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Layout fixes the drawing surface geometry. Width and Height are the inner
// plot size; the surface is Width+Left+Right by Height+Top+Bottom.
type Layout struct {
	Margin Margin
	Width  float64
	Height float64

	PointRadius float64
	// XRangeInset is taken off the right end of the x range.
	XRangeInset float64
	// XPad and YPad widen the data extents before they become scale domains.
	XPad, YPad float64

	LegendOffsetX float64
	LegendRowStep float64
	LegendSwatch  float64
}

// DefaultLayout is the 1500x750 surface the viewer draws on.
func DefaultLayout() Layout {
	m := Margin{Top: 10, Right: 0, Bottom: 40, Left: 200}
	return Layout{
		Margin:        m,
		Width:         1500 - m.Left - m.Right,
		Height:        750 - m.Top - m.Bottom,
		PointRadius:   10,
		XRangeInset:   50,
		XPad:          10,
		YPad:          30,
		LegendOffsetX: 125,
		LegendRowStep: 25,
		LegendSwatch:  18,
	}
}

// SurfaceSize returns the full surface size in pixels.
func (l Layout) SurfaceSize() (int, int) {
	return int(l.Width + l.Margin.Left + l.Margin.Right), int(l.Height + l.Margin.Top + l.Margin.Bottom)
}

// XRange is the pixel span of the x scale.
func (l Layout) XRange() [2]float64 {
	return [2]float64{l.Margin.Left, l.Width - l.XRangeInset}
}

// YRange is the pixel span of the y scale; the top edge leaves room for the margins.
func (l Layout) YRange() [2]float64 {
	return [2]float64{l.Margin.Top + l.Margin.Bottom, l.Height}
}
