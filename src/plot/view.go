package plot

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dlusion/INFO-474-Midterm/src/pokedex"
	"github.com/dlusion/INFO-474-Midterm/src/types"
)

// Element ids and labels used on the surface.
const (
	XAxisID    = "x-axis"
	YAxisID    = "y-axis"
	XAxisLabel = "Sp. Def"
	YAxisLabel = "Total"

	axisTickCount = 10
	tooltipDX     = 20
	tooltipDY     = 10
)

// Orientation says on which side of its line an axis draws ticks.
type Orientation int

const (
	OrientBottom Orientation = iota
	OrientLeft
)

// Tick is a tick mark at pixel Pos along its axis.
type Tick struct {
	chart.Tick
	Pos float64
}

// Axis is one drawn axis: the line spanning its scale range, the ticks and a label.
type Axis struct {
	ID     string
	Orient Orientation
	Scale  LinearScale
	// Offset is the y of a bottom axis or the x of a left axis.
	Offset float64
	Ticks  []Tick

	Label         string
	LabelX        float64
	LabelY        float64
	LabelRotation float64 // degrees
}

// Point is one circle. ID is the record name and need not be unique.
// Records whose coordinates are not finite keep a Point with Plotted=false so
// the point list always has one entry per record.
type Point struct {
	ID      string
	Record  types.Record
	CX, CY  float64
	R       float64
	Fill    drawing.Color
	Stroke  drawing.Color
	Plotted bool
}

// Contains reports whether (x, y) lies on the drawn circle.
func (p Point) Contains(x, y float64) bool {
	if !p.Plotted {
		return false
	}
	dx, dy := x-p.CX, y-p.CY
	return dx*dx+dy*dy <= p.R*p.R
}

// LegendEntry is a swatch with its label on the left.
type LegendEntry struct {
	Category     string
	Color        drawing.Color
	X, Y         float64
	Size         float64
	LabelX       float64
	LabelY       float64
	StrokeWidth  float64
	StrokeColor  drawing.Color
	LabelAnchorR bool
}

// Tooltip is the hover box. Point indexes View.Points while visible.
type Tooltip struct {
	Visible bool
	X, Y    float64
	Lines   []string
	Point   int
}

// View is the drawing surface. It is fully owned by Render: every call clears
// the previous scene and rebuilds axes, points and legend from scratch.
// A View is used from a single UI thread.
type View struct {
	layout  Layout
	palette *Palette

	xScale, yScale LinearScale
	axes           []Axis
	points         []Point
	legend         []LegendEntry
	tooltip        Tooltip
	hovered        int
	renders        int

	// OnTooltip is called after the tooltip is shown or hidden. Assigning it
	// replaces the previous handler.
	OnTooltip func(Tooltip)
}

// NewView creates an empty surface. A nil palette uses NewPalette.
func NewView(layout Layout, palette *Palette) *View {
	if palette == nil {
		palette = NewPalette()
	}
	return &View{layout: layout, palette: palette, hovered: -1, tooltip: Tooltip{Point: -1}}
}

// Clear removes every drawn element and hides the tooltip.
func (v *View) Clear() {
	v.axes = nil
	v.points = nil
	v.legend = nil
	v.hovered = -1
	v.tooltip = Tooltip{Point: -1}
}

// Render draws data: scales from the current extents, both axes, one point
// per record and the static legend. Empty or all-NaN data falls back to a
// unit domain so the axes are still drawn.
func (v *View) Render(data []types.Record) {
	hadTooltip := v.tooltip.Visible
	v.Clear()
	l := v.layout

	xd := [2]float64{0, 1}
	if min, max, ok := pokedex.Extent(data, pokedex.SpDefOf); ok {
		xd = [2]float64{min - l.XPad, max + l.XPad}
	}
	v.xScale = LinearScale{Domain: xd, Range: l.XRange()}

	yd := [2]float64{1, 0}
	if min, max, ok := pokedex.Extent(data, pokedex.TotalOf); ok {
		yd = [2]float64{max + l.YPad, min - l.YPad}
	}
	v.yScale = LinearScale{Domain: yd, Range: l.YRange()}

	surfW, surfH := l.SurfaceSize()
	v.axes = append(v.axes,
		Axis{
			ID:     XAxisID,
			Orient: OrientBottom,
			Scale:  v.xScale,
			Offset: l.Height,
			Ticks:  placeTicks(v.xScale),
			Label:  XAxisLabel,
			LabelX: float64(surfW) / 2,
			LabelY: l.Height + 40,
		},
		Axis{
			ID:            YAxisID,
			Orient:        OrientLeft,
			Scale:         v.yScale,
			Offset:        l.Margin.Left,
			Ticks:         placeTicks(v.yScale),
			Label:         YAxisLabel,
			LabelX:        l.Margin.Left - 30,
			LabelY:        float64(surfH) / 2,
			LabelRotation: -90,
		},
	)

	v.points = make([]Point, 0, len(data))
	for _, r := range data {
		p := Point{
			ID:      r.Name,
			Record:  r,
			R:       l.PointRadius,
			Fill:    v.palette.Color(r.Type1),
			Stroke:  drawing.ColorBlack,
			Plotted: pokedex.Plottable(r),
		}
		if p.Plotted {
			p.CX = v.xScale.Map(r.SpDef)
			p.CY = v.yScale.Map(r.Total)
		} else {
			p.CX, p.CY = math.NaN(), math.NaN()
		}
		v.points = append(v.points, p)
	}

	for i, c := range v.palette.Domain() {
		rowY := float64(i) * l.LegendRowStep
		x := l.LegendOffsetX + l.Width - l.LegendSwatch
		v.legend = append(v.legend, LegendEntry{
			Category:     c,
			Color:        v.palette.Color(c),
			X:            x,
			Y:            rowY,
			Size:         l.LegendSwatch,
			LabelX:       x - 6,
			LabelY:       rowY + l.LegendSwatch/2,
			StrokeWidth:  2,
			StrokeColor:  drawing.ColorBlack,
			LabelAnchorR: true,
		})
	}
	v.renders++
	if hadTooltip && v.OnTooltip != nil {
		v.OnTooltip(v.tooltip)
	}
}

func placeTicks(s LinearScale) []Tick {
	raw := s.Ticks(axisTickCount)
	out := make([]Tick, len(raw))
	for i, t := range raw {
		out[i] = Tick{Tick: t, Pos: s.Map(t.Value)}
	}
	return out
}

// PointerMove is the pointer position in surface pixels. Entering a point
// shows its tooltip; leaving it (or moving onto another point) hides it first.
// It returns the index of the point under the pointer, or -1.
func (v *View) PointerMove(x, y float64) int {
	idx := v.HitTest(x, y)
	if idx == v.hovered {
		return idx
	}
	if v.hovered >= 0 {
		v.HoverExit()
	}
	if idx >= 0 {
		v.HoverEnter(idx, x, y)
	}
	return idx
}

// PointerLeave is the pointer leaving the surface.
func (v *View) PointerLeave() {
	if v.hovered >= 0 {
		v.HoverExit()
	}
}

// HitTest returns the topmost (last drawn) point containing (x, y), or -1.
func (v *View) HitTest(x, y float64) int {
	for i := len(v.points) - 1; i >= 0; i-- {
		if v.points[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

// HoverEnter shows the tooltip for point i next to the pointer at (x, y).
func (v *View) HoverEnter(i int, x, y float64) {
	if i < 0 || i >= len(v.points) {
		return
	}
	v.hovered = i
	v.tooltip = Tooltip{
		Visible: true,
		X:       x + tooltipDX,
		Y:       y + tooltipDY,
		Lines:   TooltipLines(v.points[i].Record),
		Point:   i,
	}
	if v.OnTooltip != nil {
		v.OnTooltip(v.tooltip)
	}
}

// HoverExit hides the tooltip.
func (v *View) HoverExit() {
	v.hovered = -1
	v.tooltip = Tooltip{Point: -1}
	if v.OnTooltip != nil {
		v.OnTooltip(v.tooltip)
	}
}

// TooltipLines is the tooltip content: name, primary type and the secondary type if any.
func TooltipLines(r types.Record) []string {
	lines := []string{r.Name, r.Type1}
	if r.HasType2() {
		lines = append(lines, r.Type2)
	}
	return lines
}

func (v *View) Layout() Layout        { return v.layout }
func (v *View) Palette() *Palette     { return v.palette }
func (v *View) XScale() LinearScale   { return v.xScale }
func (v *View) YScale() LinearScale   { return v.yScale }
func (v *View) Axes() []Axis          { return v.axes }
func (v *View) Points() []Point       { return v.points }
func (v *View) Legend() []LegendEntry { return v.legend }
func (v *View) Tooltip() Tooltip      { return v.tooltip }
func (v *View) RenderCount() int      { return v.renders }

func (v *View) Axis(id string) (Axis, bool) {
	for _, a := range v.axes {
		if a.ID == id {
			return a, true
		}
	}
	return Axis{}, false
}

// PlottedCount is the number of points actually painted.
func (v *View) PlottedCount() int {
	n := 0
	for _, p := range v.points {
		if p.Plotted {
			n++
		}
	}
	return n
}
