package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/dlusion/INFO-474-Midterm/src/plot"
	"github.com/dlusion/INFO-474-Midterm/src/pokedex"
	"github.com/dlusion/INFO-474-Midterm/src/types"
)

type uiState struct {
	app      fyne.App
	window   fyne.Window
	filePath string

	dataset types.Dataset
	loadErr error

	palette *plot.Palette
	view    *plot.View
	ctrl    *pokedex.Controller

	// widgets
	genSelect  *widget.Select
	legSelect  *widget.Select
	fileLabel  *widget.Label
	countLabel *widget.Label
	chartImg   *canvas.Image
	overlay    *tooltipOverlay
}

// light theme wrapper; the chart surface is white so the UI follows it
type lightTheme struct{}

func (l *lightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}
func (l *lightTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (l *lightTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (l *lightTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// canvasRenderer redraws the View and pushes the rasterised surface into the window.
type canvasRenderer struct{ state *uiState }

func (r canvasRenderer) Render(data []types.Record) {
	st := r.state
	st.view.Render(data)
	if st.chartImg == nil {
		return
	}
	var img image.Image
	switch {
	case st.loadErr != nil:
		w, h := st.view.Layout().SurfaceSize()
		img = plot.Banner(plot.Blank(w, h), "Failed to load data: "+st.loadErr.Error())
	case len(data) == 0:
		img = plot.Banner(plot.Image(st.view), "No records match the current filters")
	default:
		img = plot.Image(st.view)
	}
	st.chartImg.Image = img
	st.chartImg.Refresh()
	if st.countLabel != nil {
		st.countLabel.SetText(fmt.Sprintf("Showing %d of %d", len(data), len(st.dataset)))
	}
	if st.overlay != nil {
		st.overlay.Refresh()
	}
}

func main() {
	var fileFlag, genFlag, legFlag, exportDir, logLevel string
	flag.StringVar(&fileFlag, "file", "", "Path to pokemon.csv")
	flag.StringVar(&genFlag, "gen", "", "Initial generation filter (All, 1-6)")
	flag.StringVar(&legFlag, "legendary", "", "Initial legendary filter (All, True, False)")
	flag.StringVar(&exportDir, "export", "", "Render PNG and SVG into this directory and exit without opening a window")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	pokedex.SetLogLevel(logLevel)

	if exportDir != "" {
		if err := RunExportMode(fileFlag, exportDir, genFlag, legFlag); err != nil {
			fmt.Fprintf(os.Stderr, "export: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.pokeviewer.scatter")
	a.Settings().SetTheme(&lightTheme{})
	w := a.NewWindow("Pokémon Sp. Def vs Total")
	w.Resize(fyne.NewSize(1200, 720))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		palette:  plot.NewPalette(),
	}
	state.view = plot.NewView(plot.DefaultLayout(), state.palette)
	state.ctrl = pokedex.NewController(nil, canvasRenderer{state})

	state.fileLabel = widget.NewLabel(truncatePath(state.filePath, 60))
	state.countLabel = widget.NewLabel("")
	// Create selects without callbacks first; they are wired once the canvas exists.
	state.genSelect = widget.NewSelect(pokedex.GenerationOptions(), nil)
	state.genSelect.Selected = pokedex.OptionAll
	state.legSelect = widget.NewSelect(pokedex.LegendaryOptions(), nil)
	state.legSelect.Selected = pokedex.OptionAll

	sw, sh := state.view.Layout().SurfaceSize()
	state.chartImg = canvas.NewImageFromImage(plot.Blank(sw, sh))
	state.chartImg.FillMode = canvas.ImageFillContain
	state.chartImg.SetMinSize(fyne.NewSize(900, 450))
	state.overlay = newTooltipOverlay(state)
	state.view.OnTooltip = func(plot.Tooltip) { state.overlay.Refresh() }

	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state) }),
		widget.NewButton("Reload", func() { loadAll(state) }),
		widget.NewLabel("Generation:"), state.genSelect,
		widget.NewLabel("Legendary:"), state.legSelect,
		state.countLabel,
		widget.NewLabel("File:"), state.fileLabel,
	)
	content := container.NewBorder(top, nil, nil, nil, container.NewStack(state.chartImg, state.overlay))
	w.SetContent(content)

	// Each control owns its handler; both go through the shared controller state.
	state.genSelect.OnChanged = func(v string) {
		if err := state.ctrl.SetGeneration(v); err != nil {
			pokedex.Warnf("[viewer] %v", err)
			return
		}
		pokedex.Infof("[viewer] generation changed to %q; shown=%d", v, len(state.ctrl.Subset()))
		savePrefs(state)
	}
	state.legSelect.OnChanged = func(v string) {
		if err := state.ctrl.SetLegendary(v); err != nil {
			pokedex.Warnf("[viewer] %v", err)
			return
		}
		pokedex.Infof("[viewer] legendary changed to %q; shown=%d", v, len(state.ctrl.Subset()))
		savePrefs(state)
	}
	w.SetOnClosed(func() { savePrefs(state) })

	buildMenus(state)
	loadPrefs(state, genFlag, legFlag)
	loadAll(state)

	w.ShowAndRun()
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() {
			state.filePath = f
			savePrefs(state)
			loadAll(state)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG…", func() { exportChart(state, chart.PNG, "scatter.png") }),
		fyne.NewMenuItem("Export SVG…", func() { exportChart(state, chart.SVG, "scatter.svg") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := state.window.Canvas()
	if canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { openFileDialog(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: mod}, func(fyne.Shortcut) { loadAll(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { state.window.Close() })
		}
	}
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		addRecentFile(state, state.filePath)
		savePrefs(state)
		loadAll(state)
		buildMenus(state)
	}, state.window)
	d.Show()
}

// loadAll (re)reads the dataset and redraws with the current filter selection.
// A failed load keeps the filters but replaces the surface with the error.
func loadAll(state *uiState) {
	if state.filePath == "" {
		if _, err := os.Stat(pokedex.DefaultDataFile); err == nil {
			state.filePath = pokedex.DefaultDataFile
		}
	}
	if state.fileLabel != nil {
		state.fileLabel.SetText(truncatePath(state.filePath, 60))
	}
	filters := state.ctrl.State()
	ds, err := pokedex.LoadCSV(state.filePath)
	if err != nil {
		pokedex.Errorf("[viewer] load failed: %v", err)
		state.loadErr = err
		state.dataset = nil
		state.ctrl = pokedex.NewController(nil, canvasRenderer{state})
		state.ctrl.SetState(filters)
		if state.window != nil {
			dialog.ShowError(err, state.window)
		}
		return
	}
	state.loadErr = nil
	state.dataset = ds
	state.palette.Extend(pokedex.Type1Order(ds))
	if extra := state.palette.Extra(); len(extra) > 0 {
		pokedex.Debugf("[viewer] categories outside the legend: %s", strings.Join(extra, ", "))
	}
	pokedex.Infof("[viewer] loaded %d records from %s", len(ds), state.filePath)
	state.ctrl = pokedex.NewController(ds, canvasRenderer{state})
	state.ctrl.SetState(filters)
}

func exportChart(state *uiState, provider chart.RendererProvider, defaultName string) {
	if state == nil || state.window == nil || state.view == nil || state.view.RenderCount() == 0 {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := plot.Encode(state.view, provider, wc); err != nil {
			dialog.ShowError(err, state.window)
		}
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// recent files helpers
func recentFiles(state *uiState) []string {
	raw := state.app.Preferences().StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	list := recentFiles(state)
	filtered := []string{path}
	for _, f := range list {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	state.app.Preferences().SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	fs := state.ctrl.State()
	prefs.SetString("lastGeneration", pokedex.GenerationLabel(fs.Generation))
	prefs.SetString("lastLegendary", fs.Legendary.String())
}

// loadPrefs restores the last file and filters; explicit flags win over stored values.
func loadPrefs(state *uiState, genFlag, legFlag string) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if state.filePath == "" {
		state.filePath = prefs.StringWithFallback("lastFile", "")
	}
	genOpt := prefs.StringWithFallback("lastGeneration", pokedex.OptionAll)
	if genFlag != "" {
		genOpt = genFlag
	}
	legOpt := prefs.StringWithFallback("lastLegendary", pokedex.OptionAll)
	if legFlag != "" {
		legOpt = legFlag
	}
	var fs pokedex.FilterState
	if g, err := pokedex.ParseGenerationOption(genOpt); err == nil {
		fs.Generation = g
	} else {
		pokedex.Warnf("[viewer] ignoring stored generation: %v", err)
	}
	if l, err := pokedex.ParseLegendaryOption(legOpt); err == nil {
		fs.Legendary = l
	} else {
		pokedex.Warnf("[viewer] ignoring stored legendary filter: %v", err)
	}
	// Set the fields directly so OnChanged does not fire before the data is loaded.
	state.genSelect.Selected = pokedex.GenerationLabel(fs.Generation)
	state.genSelect.Refresh()
	state.legSelect.Selected = fs.Legendary.String()
	state.legSelect.Refresh()
	state.ctrl = pokedex.NewController(nil, nil)
	state.ctrl.SetState(fs)
}

func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
