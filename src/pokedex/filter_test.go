package pokedex

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dlusion/INFO-474-Midterm/src/types"
)

func mustSample(t *testing.T) types.Dataset {
	t.Helper()
	ds, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	return ds
}

// countMatching evaluates the composed predicate independently of Filter.
func countMatching(ds types.Dataset, g int, l LegendaryFilter) int {
	n := 0
	for _, r := range ds {
		genOK := g == GenAll || r.Generation == g
		legOK := l == LegendaryAll || string(r.Legendary) == l.String()
		if genOK && legOK {
			n++
		}
	}
	return n
}

func TestFilter_AllCombinationsMatchPredicate(t *testing.T) {
	ds := mustSample(t)
	for _, gopt := range GenerationOptions() {
		for _, lopt := range LegendaryOptions() {
			g, err := ParseGenerationOption(gopt)
			if err != nil {
				t.Fatal(err)
			}
			l, err := ParseLegendaryOption(lopt)
			if err != nil {
				t.Fatal(err)
			}
			got := Filter(ds, FilterState{Generation: g, Legendary: l})
			if want := countMatching(ds, g, l); len(got) != want {
				t.Fatalf("gen=%s legendary=%s: got %d records want %d", gopt, lopt, len(got), want)
			}
		}
	}
}

func TestFilter_AllAllIsFullDataset(t *testing.T) {
	ds := mustSample(t)
	got := Filter(ds, FilterState{})
	if !reflect.DeepEqual([]types.Record(got), []types.Record(ds)) {
		t.Fatalf("All/All should reproduce the dataset")
	}
}

func TestFilter_Commutes(t *testing.T) {
	ds := mustSample(t)
	a := FilterLegendary(FilterGeneration(ds, 2), LegendaryTrue)
	b := FilterGeneration(FilterLegendary(ds, LegendaryTrue), 2)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("filters do not commute: %v vs %v", a, b)
	}
	if len(a) != 1 || a[0].Name != "Lugia" {
		t.Fatalf("expected [Lugia], got %+v", a)
	}
}

func TestFilter_DoesNotMutateDataset(t *testing.T) {
	ds := mustSample(t)
	before := append(types.Dataset(nil), ds...)
	_ = Filter(ds, FilterState{Generation: 1, Legendary: LegendaryFalse})
	if !reflect.DeepEqual(before, ds) {
		t.Fatalf("dataset was modified by filtering")
	}
}

func TestParseOptions(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"All", GenAll, false},
		{"all", GenAll, false},
		{"1", 1, false},
		{"6", 6, false},
		{"0", GenAll, true},
		{"7", GenAll, true},
		{"two", GenAll, true},
	}
	for _, c := range cases {
		got, err := ParseGenerationOption(c.in)
		if (err != nil) != c.wantErr || got != c.want {
			t.Fatalf("ParseGenerationOption(%q) = %d, %v", c.in, got, err)
		}
	}
	if l, err := ParseLegendaryOption("True"); err != nil || l != LegendaryTrue {
		t.Fatalf("True => %v %v", l, err)
	}
	if l, err := ParseLegendaryOption("false"); err != nil || l != LegendaryFalse {
		t.Fatalf("false => %v %v", l, err)
	}
	if _, err := ParseLegendaryOption("maybe"); err == nil {
		t.Fatalf("expected error for unknown legendary option")
	}
}

func TestOptionsLabels(t *testing.T) {
	if got := GenerationOptions(); !reflect.DeepEqual(got, []string{"All", "1", "2", "3", "4", "5", "6"}) {
		t.Fatalf("generation options: %v", got)
	}
	if got := LegendaryOptions(); !reflect.DeepEqual(got, []string{"All", "True", "False"}) {
		t.Fatalf("legendary options: %v", got)
	}
}
