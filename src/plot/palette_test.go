package plot

import (
	"reflect"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestPalette_FixedCategories(t *testing.T) {
	p := NewPalette()
	if len(p.Domain()) != 15 {
		t.Fatalf("expected 15 categories, got %d", len(p.Domain()))
	}
	if got, want := p.Color("Water"), drawing.ColorFromHex("6890F0"); got != want {
		t.Fatalf("Water colour %v want %v", got, want)
	}
	if got, want := p.Color("Bug"), drawing.ColorFromHex("A8B820"); got != want {
		t.Fatalf("Bug colour %v want %v", got, want)
	}
}

func TestPalette_ExtendIsStableAndBounded(t *testing.T) {
	p := NewPalette()
	p.Extend([]string{"Grass", "Dark", "Steel", "Dark", "Flying", "Shadow"})
	if got := p.Extra(); !reflect.DeepEqual(got, []string{"Dark", "Steel", "Flying"}) {
		t.Fatalf("extra categories %v", got)
	}
	dark := p.Color("Dark")
	if dark != drawing.ColorFromHex("705848") {
		t.Fatalf("Dark should take the first spare colour, got %v", dark)
	}
	// a later Extend never reassigns
	p.Extend([]string{"Flying", "Dark"})
	if p.Color("Dark") != dark {
		t.Fatalf("Dark colour changed after second Extend")
	}
	if p.Color("Shadow") != drawing.ColorFromHex(fallbackHex) {
		t.Fatalf("categories past the spares use the fallback colour")
	}
	if len(p.Domain()) != 15 {
		t.Fatalf("legend domain must stay fixed, got %d", len(p.Domain()))
	}
}
