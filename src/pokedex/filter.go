package pokedex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlusion/INFO-474-Midterm/src/types"
)

// OptionAll is the neutral selection shared by both dropdowns.
const OptionAll = "All"

// GenAll is the generation filter value that matches every record.
const GenAll = 0

// MaxGeneration is the highest generation offered by the generation dropdown.
const MaxGeneration = 6

// LegendaryFilter selects records by legendary status.
type LegendaryFilter int

const (
	LegendaryAll LegendaryFilter = iota
	LegendaryTrue
	LegendaryFalse
)

func (l LegendaryFilter) String() string {
	switch l {
	case LegendaryTrue:
		return string(types.LegendaryYes)
	case LegendaryFalse:
		return string(types.LegendaryNo)
	default:
		return OptionAll
	}
}

// FilterState is the pair of current dropdown selections. The zero value is All/All.
type FilterState struct {
	Generation int
	Legendary  LegendaryFilter
}

func (s FilterState) String() string {
	return fmt.Sprintf("gen=%s legendary=%s", GenerationLabel(s.Generation), s.Legendary)
}

// GenerationOptions returns the generation dropdown labels in display order.
func GenerationOptions() []string {
	opts := []string{OptionAll}
	for g := 1; g <= MaxGeneration; g++ {
		opts = append(opts, strconv.Itoa(g))
	}
	return opts
}

// LegendaryOptions returns the legendary dropdown labels in display order.
func LegendaryOptions() []string {
	return []string{OptionAll, LegendaryTrue.String(), LegendaryFalse.String()}
}

// GenerationLabel is the dropdown label for a generation filter value.
func GenerationLabel(g int) string {
	if g == GenAll {
		return OptionAll
	}
	return strconv.Itoa(g)
}

// ParseGenerationOption converts a dropdown label into a generation filter value.
func ParseGenerationOption(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, OptionAll) {
		return GenAll, nil
	}
	g, err := strconv.Atoi(s)
	if err != nil || g < 1 || g > MaxGeneration {
		return GenAll, fmt.Errorf("invalid generation option %q", s)
	}
	return g, nil
}

// ParseLegendaryOption converts a dropdown label into a legendary filter value.
func ParseLegendaryOption(s string) (LegendaryFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return LegendaryAll, nil
	case "true":
		return LegendaryTrue, nil
	case "false":
		return LegendaryFalse, nil
	}
	return LegendaryAll, fmt.Errorf("invalid legendary option %q", s)
}

// MatchGeneration reports whether r passes the generation selection.
func MatchGeneration(g int, r types.Record) bool {
	return g == GenAll || r.Generation == g
}

// MatchLegendary reports whether r passes the legendary selection.
func MatchLegendary(l LegendaryFilter, r types.Record) bool {
	switch l {
	case LegendaryTrue:
		return r.Legendary == types.LegendaryYes
	case LegendaryFalse:
		return r.Legendary == types.LegendaryNo
	default:
		return true
	}
}

// Matches is the composed predicate: both selections must pass.
func (s FilterState) Matches(r types.Record) bool {
	return MatchGeneration(s.Generation, r) && MatchLegendary(s.Legendary, r)
}

// FilterGeneration and FilterLegendary are the two single-predicate passes.
// Applying them in either order yields the same subset.
func FilterGeneration(ds types.Dataset, g int) types.Dataset {
	return filterBy(ds, func(r types.Record) bool { return MatchGeneration(g, r) })
}

func FilterLegendary(ds types.Dataset, l LegendaryFilter) types.Dataset {
	return filterBy(ds, func(r types.Record) bool { return MatchLegendary(l, r) })
}

// Filter returns the records of ds matching state, in dataset order.
func Filter(ds types.Dataset, state FilterState) types.Dataset {
	return FilterLegendary(FilterGeneration(ds, state.Generation), state.Legendary)
}

func filterBy(ds types.Dataset, keep func(types.Record) bool) types.Dataset {
	out := make(types.Dataset, 0, len(ds))
	for _, r := range ds {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
