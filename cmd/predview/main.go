// predview displays the dual-axis comparison chart for one client/server
// prediction trace pair: values on the left axis, velocities on the right.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gretchenfrage/predview/src/config"
	"github.com/gretchenfrage/predview/src/render"
	"github.com/gretchenfrage/predview/src/trace"
)

type uiState struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.Config

	client    []trace.ClientSample
	server    []trace.ServerSample
	summaries []trace.SeriesSummary

	chartCanvas *canvas.Image
	statsTable  *widget.Table
	clientLabel *widget.Label
	serverLabel *widget.Label

	// chart hints toggle
	showHints bool
}

func main() {
	cfg := startupConfig()
	trace.SetLogLevel(cfg.LogLevel)

	a := app.NewWithID("com.gretchenfrage.predview")
	w := a.NewWindow("Prediction Trace Viewer")
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	state := &uiState{app: a, window: w, cfg: cfg}
	state.showHints = a.Preferences().BoolWithFallback("showHints", false)

	state.clientLabel = widget.NewLabel(truncatePath(cfg.ClientFile, 50))
	state.serverLabel = widget.NewLabel(truncatePath(cfg.ServerFile, 50))

	// style toggles; callbacks are wired after the canvas exists
	connectChk := widget.NewCheck("Connect lines", nil)
	bothChk := widget.NewCheck("Lines + markers", nil)
	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)

	state.chartCanvas = canvas.NewImageFromImage(blank(100, 60))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(900, 560))

	state.statsTable = newStatsTable(state)

	top := container.NewHBox(
		widget.NewButton("Open Client…", func() { openTraceDialog(state, true) }),
		widget.NewButton("Open Server…", func() { openTraceDialog(state, false) }),
		widget.NewButton("Reload", func() { loadAll(state) }),
		connectChk, bothChk, hintsChk,
		widget.NewLabel("Client:"), state.clientLabel,
		widget.NewLabel("Server:"), state.serverLabel,
	)

	chartScroll := container.NewVScroll(state.chartCanvas)
	chartScroll.SetMinSize(fyne.NewSize(900, 600))
	tabs := container.NewAppTabs(
		container.NewTabItem("Chart", chartScroll),
		container.NewTabItem("Stats", state.statsTable),
	)
	tabs.SetTabLocation(container.TabLocationTop)
	tabs.OnSelected = func(ti *container.TabItem) {
		state.app.Preferences().SetInt("selectedTabIndex", tabs.SelectedIndex())
	}
	w.SetContent(container.NewBorder(top, nil, nil, nil, tabs))

	// redraw on window resize so the chart scales with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					if curW := int(c.Size().Width); curW != prevW {
						prevW = curW
						fyne.Do(func() { redrawChart(state) })
					}
				}
			}
		}()
	}

	connectChk.OnChanged = func(b bool) {
		state.cfg.ConnectLines = b
		savePrefs(state)
		redrawChart(state)
	}
	bothChk.OnChanged = func(b bool) {
		state.cfg.ShowBoth = b
		savePrefs(state)
		redrawChart(state)
	}
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		redrawChart(state)
	}

	buildMenus(state)
	loadPrefs(state, tabs)
	connectChk.SetChecked(state.cfg.ConnectLines)
	bothChk.SetChecked(state.cfg.ShowBoth)

	// the initial load is strict: bad input means no chart and a failed exit
	if err := loadAll(state); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	w.ShowAndRun()
}

// startupConfig merges defaults, an optional YAML file, and flag overrides.
func startupConfig() *config.Config {
	var (
		cfgPath    string
		clientPath string
		serverPath string
		logLevel   string
		connect    bool
		both       bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to predview.yaml (optional)")
	flag.StringVar(&clientPath, "client", "", "Client trace CSV (overrides config)")
	flag.StringVar(&serverPath, "server", "", "Server trace CSV (overrides config)")
	flag.StringVar(&logLevel, "loglevel", "", "Log level: debug, info, warn, error")
	flag.BoolVar(&connect, "connect-lines", false, "Draw connected lines without markers")
	flag.BoolVar(&both, "show-both", false, "Draw connected lines with point markers")
	flag.Parse()

	var cfg *config.Config
	switch {
	case cfgPath != "":
		c, err := config.NewLoader(cfgPath).Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = c
	default:
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			c, err := config.NewLoader(config.DefaultConfigPath).Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			cfg = c
		} else {
			cfg = config.Default()
		}
	}
	// only flags the user actually set override the file
	flag.Visit(func(f *flag.Flag) {
		explicitFlags[f.Name] = true
		switch f.Name {
		case "client":
			cfg.ClientFile = clientPath
		case "server":
			cfg.ServerFile = serverPath
		case "loglevel":
			cfg.LogLevel = logLevel
		case "connect-lines":
			cfg.ConnectLines = connect
		case "show-both":
			cfg.ShowBoth = both
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newStatsTable(state *uiState) *widget.Table {
	headers := []string{"Series", "Samples", "Min", "Max", "Mean", "StdDev"}
	tbl := widget.NewTable(
		func() (int, int) {
			rows := len(state.summaries) + 1
			if rows < 1 {
				rows = 1
			}
			return rows, len(headers)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Row == 0 {
				lbl.SetText(headers[id.Col])
				return
			}
			rix := id.Row - 1
			if rix < 0 || rix >= len(state.summaries) {
				lbl.SetText("")
				return
			}
			s := state.summaries[rix]
			switch id.Col {
			case 0:
				lbl.SetText(s.Name)
			case 1:
				lbl.SetText(fmt.Sprintf("%d", s.Count))
			case 2:
				lbl.SetText(fmt.Sprintf("%.4f", s.Min))
			case 3:
				lbl.SetText(fmt.Sprintf("%.4f", s.Max))
			case 4:
				lbl.SetText(fmt.Sprintf("%.4f", s.Mean))
			case 5:
				lbl.SetText(fmt.Sprintf("%.4f", s.StdDev))
			}
		},
	)
	tbl.SetColumnWidth(0, 200)
	tbl.SetColumnWidth(1, 80)
	for c := 2; c < 6; c++ {
		tbl.SetColumnWidth(c, 110)
	}
	return tbl
}

func buildMenus(state *uiState) {
	exportItem := fyne.NewMenuItem("Export Chart PNG…", func() { exportChartPNG(state, "prediction_chart.png") })
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Client…", func() { openTraceDialog(state, true) }),
		fyne.NewMenuItem("Open Server…", func() { openTraceDialog(state, false) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		exportItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { loadAll(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { loadAll(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

func openTraceDialog(state *uiState, clientSide bool) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		if clientSide {
			state.cfg.ClientFile = rc.URI().Path()
			state.clientLabel.SetText(truncatePath(state.cfg.ClientFile, 50))
		} else {
			state.cfg.ServerFile = rc.URI().Path()
			state.serverLabel.SetText(truncatePath(state.cfg.ServerFile, 50))
		}
		savePrefs(state)
		loadAll(state)
	}, state.window)
	d.Show()
}

// loadAll reads both traces; any failure keeps the previous data and surfaces
// the error, since a partial chart would be misleading.
func loadAll(state *uiState) error {
	client, err := trace.LoadClientSamples(state.cfg.ClientFile)
	if err != nil {
		trace.Errorf("load client trace: %v", err)
		dialog.ShowError(err, state.window)
		return err
	}
	server, err := trace.LoadServerSamples(state.cfg.ServerFile)
	if err != nil {
		trace.Errorf("load server trace: %v", err)
		dialog.ShowError(err, state.window)
		return err
	}
	state.client = client
	state.server = server
	state.summaries = append(trace.SummarizeClient(client), trace.SummarizeServer(server)...)
	trace.Infof("loaded %d client samples, %d server samples", len(client), len(server))
	if state.statsTable != nil {
		state.statsTable.Refresh()
	}
	redrawChart(state)
	return nil
}

func redrawChart(state *uiState) {
	if state.chartCanvas == nil {
		return
	}
	w, h := chartSize(state)
	img := renderChart(state, w, h)
	if img == nil {
		return
	}
	if state.showHints {
		img = drawHint(img, styleHint(state.cfg))
	}
	state.chartCanvas.Image = img
	state.chartCanvas.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	state.chartCanvas.Refresh()
}

func renderChart(state *uiState, w, h int) image.Image {
	if len(state.client) == 0 || len(state.server) == 0 {
		return drawHint(blank(w, h), "no trace loaded")
	}
	opts := render.Options{ConnectLines: state.cfg.ConnectLines, ShowBoth: state.cfg.ShowBoth}
	ch, err := render.BuildChart(state.client, state.server, opts)
	if err != nil {
		trace.Errorf("build chart: %v", err)
		dialog.ShowError(err, state.window)
		return nil
	}
	img, err := render.Render(ch, w, h)
	if err != nil {
		trace.Errorf("render chart: %v", err)
		dialog.ShowError(err, state.window)
		return nil
	}
	return img
}

// chartSize derives the render size from the current window width.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 1100, 680
	}
	sz := state.window.Canvas().Size()
	return computeChartDimensions(int(sz.Width*0.95) - 12)
}

func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("clientFile", state.cfg.ClientFile)
	prefs.SetString("serverFile", state.cfg.ServerFile)
	prefs.SetBool("connectLines", state.cfg.ConnectLines)
	prefs.SetBool("showBoth", state.cfg.ShowBoth)
	prefs.SetBool("showHints", state.showHints)
}

// explicitFlags remembers which CLI flags were set; those beat saved prefs.
var explicitFlags = map[string]bool{}

func loadPrefs(state *uiState, tabs *container.AppTabs) {
	prefs := state.app.Preferences()
	if f := prefs.StringWithFallback("clientFile", state.cfg.ClientFile); f != "" && !explicitFlags["client"] {
		state.cfg.ClientFile = f
		state.clientLabel.SetText(truncatePath(f, 50))
	}
	if f := prefs.StringWithFallback("serverFile", state.cfg.ServerFile); f != "" && !explicitFlags["server"] {
		state.cfg.ServerFile = f
		state.serverLabel.SetText(truncatePath(f, 50))
	}
	if !explicitFlags["connect-lines"] {
		state.cfg.ConnectLines = prefs.BoolWithFallback("connectLines", state.cfg.ConnectLines)
	}
	if !explicitFlags["show-both"] {
		state.cfg.ShowBoth = prefs.BoolWithFallback("showBoth", state.cfg.ShowBoth)
	}
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
	if tabs != nil {
		idx := prefs.IntWithFallback("selectedTabIndex", 0)
		if idx >= 0 && idx < len(tabs.Items) {
			tabs.SelectIndex(idx)
		}
	}
}
