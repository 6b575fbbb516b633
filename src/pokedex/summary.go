package pokedex

import (
	"math"
	"sort"

	"github.com/dlusion/INFO-474-Midterm/src/types"
)

// Range is a finite [Min, Max] pair; Valid is false when no value was finite.
type Range struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Valid bool    `yaml:"valid"`
}

// Summary describes a dataset or subset: record counts by the filterable
// attributes and the extents of the plotted fields.
type Summary struct {
	Records      int            `yaml:"records"`
	ByGeneration map[int]int    `yaml:"by_generation"`
	Legendary    int            `yaml:"legendary"`
	NonLegendary int            `yaml:"non_legendary"`
	ByType1      map[string]int `yaml:"by_type1"`
	SpDef        Range          `yaml:"sp_def"`
	Total        Range          `yaml:"total"`
	Unplottable  int            `yaml:"unplottable"`
}

// Extent returns min/max of value over ds, skipping NaN and ±Inf.
func Extent(ds []types.Record, value func(types.Record) float64) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, r := range ds {
		v := value(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

func SpDefOf(r types.Record) float64 { return r.SpDef }
func TotalOf(r types.Record) float64 { return r.Total }

// Plottable reports whether both coordinates of r are finite.
func Plottable(r types.Record) bool {
	return !math.IsNaN(r.SpDef) && !math.IsInf(r.SpDef, 0) && !math.IsNaN(r.Total) && !math.IsInf(r.Total, 0)
}

// Summarize counts records per generation, legendary flag and primary type.
func Summarize(ds []types.Record) Summary {
	s := Summary{
		Records:      len(ds),
		ByGeneration: map[int]int{},
		ByType1:      map[string]int{},
	}
	for _, r := range ds {
		s.ByGeneration[r.Generation]++
		if r.IsLegendary() {
			s.Legendary++
		} else {
			s.NonLegendary++
		}
		k := r.Type1
		if k == "" {
			k = "(none)"
		}
		s.ByType1[k]++
		if !Plottable(r) {
			s.Unplottable++
		}
	}
	s.SpDef.Min, s.SpDef.Max, s.SpDef.Valid = Extent(ds, SpDefOf)
	s.Total.Min, s.Total.Max, s.Total.Valid = Extent(ds, TotalOf)
	return s
}

// Type1Order returns the primary types of ds sorted by first appearance.
func Type1Order(ds []types.Record) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range ds {
		if r.Type1 == "" {
			continue
		}
		if _, ok := seen[r.Type1]; ok {
			continue
		}
		seen[r.Type1] = struct{}{}
		out = append(out, r.Type1)
	}
	return out
}

// SortedKeys returns the generation keys of m in ascending order.
func SortedKeys(m map[int]int) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
