package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/dlusion/INFO-474-Midterm/src/plot"
	"github.com/dlusion/INFO-474-Midterm/src/pokedex"
)

// RunExportMode renders the scatterplot for one filter combination and writes
// scatter.png and scatter.svg under outDir. It runs headlessly without creating a UI window.
func RunExportMode(filePath, outDir, genOpt, legOpt string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	ds, err := pokedex.LoadCSV(filePath)
	if err != nil {
		return err
	}
	palette := plot.NewPalette()
	palette.Extend(pokedex.Type1Order(ds))
	view := plot.NewView(plot.DefaultLayout(), palette)
	ctrl := pokedex.NewController(ds, view)
	ctrl.Refresh()
	if genOpt != "" {
		if err := ctrl.SetGeneration(genOpt); err != nil {
			return err
		}
	}
	if legOpt != "" {
		if err := ctrl.SetLegendary(legOpt); err != nil {
			return err
		}
	}
	pokedex.Infof("[export] %s: %d of %d records", ctrl.State(), len(ctrl.Subset()), len(ds))

	toRender := []struct {
		name     string
		provider chart.RendererProvider
	}{
		{"scatter.png", chart.PNG},
		{"scatter.svg", chart.SVG},
	}
	for _, item := range toRender {
		var buf bytes.Buffer
		if err := plot.Encode(view, item.provider, &buf); err != nil {
			return fmt.Errorf("encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}
	return nil
}
