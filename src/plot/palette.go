package plot

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Categories is the fixed legend domain, in legend order.
var Categories = []string{
	"Bug", "Dragon", "Electric", "Fairy", "Fighting", "Fire", "Ghost", "Grass", "Ground",
	"Ice", "Normal", "Poison", "Psychic", "Rock", "Water",
}

// paletteHex holds one colour per fixed category followed by spare colours
// handed to categories outside the fixed domain.
var paletteHex = []string{
	"A8B820", "7038F8", "F8D030", "EE99AC", "C03028", "F08030", "705898", "78C850",
	"E0C068", "98D8D8", "A8A878", "A040A0", "F85888", "B8A038", "6890F0",
	"705848", "B8B8D0", "A890F0",
}

// fallbackHex colours any category seen after the spare colours ran out.
const fallbackHex = "68A090"

// Palette maps a primary type to its fill colour. Assignments never change
// once made, so colours stay stable across redraws and filter changes.
type Palette struct {
	colors   map[string]drawing.Color
	spare    []drawing.Color
	extra    []string
	fallback drawing.Color
}

// NewPalette returns the fixed 15-category palette with no extra categories.
func NewPalette() *Palette {
	p := &Palette{colors: make(map[string]drawing.Color, len(paletteHex))}
	for i, c := range Categories {
		p.colors[c] = drawing.ColorFromHex(paletteHex[i])
	}
	for _, h := range paletteHex[len(Categories):] {
		p.spare = append(p.spare, drawing.ColorFromHex(h))
	}
	p.fallback = drawing.ColorFromHex(fallbackHex)
	return p
}

// Extend assigns spare colours to categories outside the fixed domain, in the
// order given. Call it once with the full dataset's first-seen type order so
// colours do not depend on the active filter.
func (p *Palette) Extend(categories []string) {
	for _, c := range categories {
		if c == "" {
			continue
		}
		if _, ok := p.colors[c]; ok {
			continue
		}
		if len(p.extra) >= len(p.spare) {
			continue
		}
		p.colors[c] = p.spare[len(p.extra)]
		p.extra = append(p.extra, c)
	}
}

// Color returns the fill for category.
func (p *Palette) Color(category string) drawing.Color {
	if c, ok := p.colors[category]; ok {
		return c
	}
	return p.fallback
}

// Domain is the legend domain: always the fixed categories, whatever the data holds.
func (p *Palette) Domain() []string {
	return append([]string(nil), Categories...)
}

// Extra lists the categories that received spare colours.
func (p *Palette) Extra() []string {
	return append([]string(nil), p.extra...)
}
