package plot

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/dlusion/INFO-474-Midterm/src/pokedex"
	"github.com/dlusion/INFO-474-Midterm/src/types"
)

func exampleDataset() types.Dataset {
	return types.Dataset{
		{Name: "A", Type1: "Fire", Total: 300, SpDef: 50, Generation: 1, Legendary: types.LegendaryNo},
		{Name: "B", Type1: "Water", Total: 600, SpDef: 80, Generation: 2, Legendary: types.LegendaryYes},
	}
}

func TestRender_ScaleDomains(t *testing.T) {
	v := NewView(DefaultLayout(), nil)
	v.Render([]types.Record{
		{Name: "lo", Type1: "Bug", SpDef: 20, Total: 300},
		{Name: "hi", Type1: "Bug", SpDef: 80, Total: 600},
	})
	if got := v.XScale().Domain; got != [2]float64{10, 90} {
		t.Fatalf("x domain %v want [10 90]", got)
	}
	if got := v.YScale().Domain; got != [2]float64{630, 270} {
		t.Fatalf("y domain %v want [630 270]", got)
	}
	if got := v.XScale().Range; got != [2]float64{200, 1250} {
		t.Fatalf("x range %v", got)
	}
	if got := v.YScale().Range; got != [2]float64{50, 700} {
		t.Fatalf("y range %v", got)
	}
}

func TestRender_ExampleScenario(t *testing.T) {
	ds := exampleDataset()
	v := NewView(DefaultLayout(), nil)
	c := pokedex.NewController(ds, v)
	c.Refresh()
	if err := c.SetGeneration("2"); err != nil {
		t.Fatal(err)
	}
	pts := v.Points()
	if len(pts) != 1 || pts[0].ID != "B" {
		t.Fatalf("expected exactly point B, got %+v", pts)
	}
	if pts[0].Fill != v.Palette().Color("Water") {
		t.Fatalf("B should be filled with the Water colour")
	}
	v.PointerMove(pts[0].CX, pts[0].CY)
	tt := v.Tooltip()
	if !tt.Visible {
		t.Fatalf("tooltip should be visible on hover")
	}
	text := strings.Join(tt.Lines, " ")
	if !strings.Contains(text, "B") || !strings.Contains(text, "Water") {
		t.Fatalf("tooltip text %q", text)
	}
	if tt.X != pts[0].CX+20 || tt.Y != pts[0].CY+10 {
		t.Fatalf("tooltip should sit next to the pointer, got (%v,%v)", tt.X, tt.Y)
	}
	v.PointerMove(0, 0)
	if v.Tooltip().Visible {
		t.Fatalf("tooltip should hide after leaving the point")
	}
}

func TestRender_PointCountMatchesFilters(t *testing.T) {
	ds := types.Dataset{}
	for g := 1; g <= 6; g++ {
		for i := 0; i < g+1; i++ {
			leg := types.LegendaryNo
			if i%3 == 0 {
				leg = types.LegendaryYes
			}
			ds = append(ds, types.Record{Name: "p", Type1: "Normal", SpDef: float64(10 * i), Total: float64(200 + 50*g), Generation: g, Legendary: leg})
		}
	}
	v := NewView(DefaultLayout(), nil)
	c := pokedex.NewController(ds, v)
	for _, gopt := range pokedex.GenerationOptions() {
		for _, lopt := range pokedex.LegendaryOptions() {
			if err := c.SetGeneration(gopt); err != nil {
				t.Fatal(err)
			}
			if err := c.SetLegendary(lopt); err != nil {
				t.Fatal(err)
			}
			want := 0
			for _, r := range ds {
				if (gopt == "All" || r.Generation == int(gopt[0]-'0')) && (lopt == "All" || string(r.Legendary) == lopt) {
					want++
				}
			}
			if got := len(v.Points()); got != want {
				t.Fatalf("gen=%s legendary=%s: %d points want %d", gopt, lopt, got, want)
			}
		}
	}
}

func TestRender_IdempotentNoAccumulation(t *testing.T) {
	ds := exampleDataset()
	v := NewView(DefaultLayout(), nil)
	v.Render(ds)
	first := append([]Point(nil), v.Points()...)
	firstAxes := len(v.Axes())
	v.Render(ds)
	if !reflect.DeepEqual(first, v.Points()) {
		t.Fatalf("second render changed points")
	}
	if len(v.Axes()) != firstAxes || len(v.Axes()) != 2 {
		t.Fatalf("axes accumulated: %d", len(v.Axes()))
	}
	if len(v.Legend()) != 15 {
		t.Fatalf("legend accumulated: %d", len(v.Legend()))
	}
	if v.RenderCount() != 2 {
		t.Fatalf("render count %d", v.RenderCount())
	}
}

func TestRender_LegendIsStatic(t *testing.T) {
	v := NewView(DefaultLayout(), nil)
	v.Render(exampleDataset()[:1])
	var cats []string
	for _, e := range v.Legend() {
		cats = append(cats, e.Category)
	}
	if !reflect.DeepEqual(cats, Categories) {
		t.Fatalf("legend %v", cats)
	}
	if e := v.Legend()[1]; e.Y != 25 || e.X != 125+1300-18 {
		t.Fatalf("legend row placement (%v,%v)", e.X, e.Y)
	}
}

func TestRender_EmptyData(t *testing.T) {
	v := NewView(DefaultLayout(), nil)
	v.Render(nil)
	if len(v.Points()) != 0 {
		t.Fatalf("expected no points")
	}
	if got := v.XScale().Domain; got != [2]float64{0, 1} {
		t.Fatalf("fallback x domain %v", got)
	}
	if _, ok := v.Axis(XAxisID); !ok {
		t.Fatalf("axes should still be drawn for empty data")
	}
	if len(v.Legend()) != 15 {
		t.Fatalf("legend should still be drawn")
	}
	if v.PointerMove(700, 300) != -1 {
		t.Fatalf("nothing to hover on an empty plot")
	}
}

func TestRender_NaNExcludedFromExtents(t *testing.T) {
	v := NewView(DefaultLayout(), nil)
	v.Render([]types.Record{
		{Name: "ok", Type1: "Fire", SpDef: 20, Total: 300},
		{Name: "bad", Type1: "Fire", SpDef: math.NaN(), Total: 999},
		{Name: "ok2", Type1: "Fire", SpDef: 80, Total: 600},
	})
	if got := v.XScale().Domain; got != [2]float64{10, 90} {
		t.Fatalf("NaN leaked into x domain: %v", got)
	}
	// Total 999 is finite and still counts toward the y extent.
	if got := v.YScale().Domain; got[0] != 1029 {
		t.Fatalf("y domain %v", got)
	}
	if len(v.Points()) != 3 || v.PlottedCount() != 2 {
		t.Fatalf("points=%d plotted=%d", len(v.Points()), v.PlottedCount())
	}
}

func TestHover_TopmostAndDuplicateNames(t *testing.T) {
	v := NewView(DefaultLayout(), nil)
	v.Render([]types.Record{
		{Name: "Twin", Type1: "Fire", SpDef: 50, Total: 400},
		{Name: "Twin", Type1: "Water", Type2: "Ice", SpDef: 50, Total: 400},
	})
	p := v.Points()
	if p[0].ID != p[1].ID {
		t.Fatalf("duplicate names must be kept")
	}
	var events []bool
	v.OnTooltip = func(tt Tooltip) { events = append(events, tt.Visible) }
	if idx := v.PointerMove(p[1].CX+1, p[1].CY); idx != 1 {
		t.Fatalf("expected topmost point 1, got %d", idx)
	}
	if got := v.Tooltip().Lines; !reflect.DeepEqual(got, []string{"Twin", "Water", "Ice"}) {
		t.Fatalf("tooltip lines %v", got)
	}
	// moving within the same point does not re-fire
	v.PointerMove(p[1].CX, p[1].CY+1)
	v.PointerLeave()
	if !reflect.DeepEqual(events, []bool{true, false}) {
		t.Fatalf("hover events %v", events)
	}
}

func TestRender_ClearsTooltip(t *testing.T) {
	v := NewView(DefaultLayout(), nil)
	ds := exampleDataset()
	v.Render(ds)
	p := v.Points()[0]
	v.PointerMove(p.CX, p.CY)
	hidden := false
	v.OnTooltip = func(tt Tooltip) { hidden = !tt.Visible }
	v.Render(ds)
	if v.Tooltip().Visible || !hidden {
		t.Fatalf("redraw should drop the tooltip of the old scene")
	}
}
