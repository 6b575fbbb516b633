package pokedex

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/dlusion/INFO-474-Midterm/src/types"
)

// DefaultDataFile is looked up in the working directory when no path is given.
const DefaultDataFile = "pokemon.csv"

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

// column keys after headerKey normalisation
const (
	colName       = "name"
	colType1      = "type1"
	colType2      = "type2"
	colTotal      = "total"
	colSpDef      = "spdef"
	colGeneration = "generation"
	colLegendary  = "legendary"
)

var requiredColumns = []string{colName, colType1, colTotal, colSpDef}

// LoadCSV opens path and parses it with ReadCSV.
func LoadCSV(path string) (types.Dataset, error) {
	if path == "" {
		path = DefaultDataFile
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	ds, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses a header-first CSV stream. Sp. Def and Total are coerced to
// numbers the lenient way: blank becomes 0, anything unparsable becomes NaN and
// is left for the extent computation to skip.
func ReadCSV(r io.Reader) (types.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := indexColumns(header)
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	title := cases.Title(language.English)
	var out types.Dataset
	line := 1
	nanRows := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if isBlankRow(row) {
			continue
		}
		rec := types.Record{
			Name:       field(row, idx, colName),
			Type1:      normalizeCategory(title, field(row, idx, colType1)),
			Type2:      normalizeCategory(title, field(row, idx, colType2)),
			Total:      coerceNumber(field(row, idx, colTotal)),
			SpDef:      coerceNumber(field(row, idx, colSpDef)),
			Generation: coerceGeneration(field(row, idx, colGeneration)),
			Legendary:  coerceLegendary(field(row, idx, colLegendary)),
		}
		if math.IsNaN(rec.Total) || math.IsNaN(rec.SpDef) {
			nanRows++
			Debugf("line %d (%s): non-numeric Total/Sp. Def kept as NaN", line, rec.Name)
		}
		out = append(out, rec)
	}
	if nanRows > 0 {
		Warnf("%d record(s) have non-numeric Total or Sp. Def and will not be plotted", nanRows)
	}
	return out, nil
}

// headerKey folds a header cell into a comparable key: NFKC, lower case,
// letters and digits only. "Sp. Def", "sp_def" and "SpDef" all become "spdef".
func headerKey(s string) string {
	s = norm.NFKC.String(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func indexColumns(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		k := headerKey(strings.TrimPrefix(h, "\ufeff"))
		if k == "" {
			continue
		}
		// first occurrence wins
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}
	return idx
}

func field(row []string, idx map[string]int, key string) string {
	i, ok := idx[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func normalizeCategory(c cases.Caser, s string) string {
	s = norm.NFKC.String(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return c.String(s)
}

// coerceNumber mirrors numeric coercion of a string: blank is 0, garbage is NaN.
func coerceNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// coerceGeneration returns 0 for anything that is not an integer; 0 matches
// only the "All" generation filter.
func coerceGeneration(s string) int {
	v := coerceNumber(s)
	if math.IsNaN(v) || v != math.Trunc(v) {
		return 0
	}
	return int(v)
}

func coerceLegendary(s string) types.Legendary {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return types.LegendaryYes
	case "false", "":
		return types.LegendaryNo
	}
	return types.Legendary(s)
}
