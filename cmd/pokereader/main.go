package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dlusion/INFO-474-Midterm/src/pokedex"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fset := flag.NewFlagSet("pokereader", flag.ContinueOnError)
	var file, gen, leg, format, logLevel string
	fset.StringVar(&file, "file", pokedex.DefaultDataFile, "Path to pokemon.csv")
	fset.StringVar(&gen, "gen", pokedex.OptionAll, "Generation filter (All, 1-6)")
	fset.StringVar(&leg, "legendary", pokedex.OptionAll, "Legendary filter (All, True, False)")
	fset.StringVar(&format, "format", "text", "Output format (text|yaml)")
	fset.StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	if err := fset.Parse(args); err != nil {
		return err
	}
	pokedex.SetLogLevel(logLevel)

	var state pokedex.FilterState
	var err error
	if state.Generation, err = pokedex.ParseGenerationOption(gen); err != nil {
		return err
	}
	if state.Legendary, err = pokedex.ParseLegendaryOption(leg); err != nil {
		return err
	}
	ds, err := pokedex.LoadCSV(file)
	if err != nil {
		return err
	}
	subset := pokedex.Filter(ds, state)
	sum := pokedex.Summarize(subset)

	switch format {
	case "yaml":
		doc := struct {
			File    string          `yaml:"file"`
			Filter  string          `yaml:"filter"`
			Of      int             `yaml:"of"`
			Summary pokedex.Summary `yaml:"summary"`
		}{file, state.String(), len(ds), sum}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "text":
		fmt.Fprintf(out, "Records: %d of %d (%s)\n", sum.Records, len(ds), state)
		fmt.Fprintf(out, "Legendary: %d  Non-legendary: %d\n", sum.Legendary, sum.NonLegendary)
		for _, g := range pokedex.SortedKeys(sum.ByGeneration) {
			fmt.Fprintf(out, "Generation %d: %d\n", g, sum.ByGeneration[g])
		}
		names := make([]string, 0, len(sum.ByType1))
		for t := range sum.ByType1 {
			names = append(names, t)
		}
		sort.Strings(names)
		for _, t := range names {
			fmt.Fprintf(out, "%s: %d\n", t, sum.ByType1[t])
		}
		if sum.SpDef.Valid {
			fmt.Fprintf(out, "Sp. Def: %g..%g\n", sum.SpDef.Min, sum.SpDef.Max)
		}
		if sum.Total.Valid {
			fmt.Fprintf(out, "Total: %g..%g\n", sum.Total.Min, sum.Total.Max)
		}
		if sum.Unplottable > 0 {
			fmt.Fprintf(out, "Unplottable: %d\n", sum.Unplottable)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
