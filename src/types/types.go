// Package types holds the record shapes shared by the loader, the filter controller
// and the render pipeline.
package types

// Legendary is the string form used by the source CSV ("True"/"False").
type Legendary string

const (
	LegendaryYes Legendary = "True"
	LegendaryNo  Legendary = "False"
)

// Record is one dataset row. Only the columns the viewer consumes are kept.
// Records are never modified after load.
type Record struct {
	Name       string
	Type1      string
	Type2      string // "" when the source column is blank
	Total      float64
	SpDef      float64
	Generation int
	Legendary  Legendary
}

// HasType2 reports whether the record carries a secondary type.
func (r Record) HasType2() bool { return r.Type2 != "" }

func (r Record) IsLegendary() bool { return r.Legendary == LegendaryYes }

// Dataset is the ordered, load-once sequence of records. Filtering always
// produces a new slice; the backing array is never written to.
type Dataset []Record
