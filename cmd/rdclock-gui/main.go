package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/rdclock/internal/log"
	"github.com/philipparndt/rdclock/pkg/analysis"
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/config"
	"github.com/philipparndt/rdclock/pkg/gesture"
	"github.com/philipparndt/rdclock/pkg/selection"
	"github.com/philipparndt/rdclock/pkg/viewer"
	"github.com/philipparndt/rdclock/pkg/watcher"
	"github.com/philipparndt/rdclock/version"
	"github.com/spf13/cobra"
)

const reloadDebounce = 200 * time.Millisecond

type App struct {
	window     fyne.Window
	store      *selection.Store
	face       *viewer.ClockFace
	resultInfo *ResultInfo
}

type ResultInfo struct {
	detachmentLabel *widget.Label
	tearLabel       *widget.Label
	extentLabel     *widget.Label
	breakLabel      *widget.Label
	inferiorLabel   *widget.Label
	sessionLabel    *widget.Label
}

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:     "rdclock-gui",
	Short:   "Retinal detachment clock face calculator",
	Version: version.GetFullVersion(),
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run()
	},
}

func main() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Settings file")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() {
	cfg, cfgErr := config.Load(configPath)
	if err := log.Init(debug || cfg.Log.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
	}
	defer log.Sync()

	a := app.New()
	w := a.NewWindow("Retinal Detachment Clock " + version.GetVersion())

	appInstance := &App{
		window: w,
		store:  selection.NewStore(),
	}
	appInstance.setupMainUI(cfg)

	if cfgErr != nil {
		log.Warnw("using default settings", "path", configPath, "error", cfgErr)
		dialog.ShowError(cfgErr, w)
	}

	cw, err := watcher.NewConfigWatcher(configPath, reloadDebounce, func(cfg config.Config) {
		fyne.Do(func() { appInstance.applyConfig(cfg) })
	})
	if err != nil {
		log.Warnw("settings will not be reloaded", "error", err)
	} else {
		cw.Start()
		defer cw.Close()
	}

	w.Resize(fyne.NewSize(900, 600))
	w.ShowAndRun()
}

func (a *App) setupMainUI(cfg config.Config) {
	a.resultInfo = &ResultInfo{
		detachmentLabel: widget.NewLabel(""),
		tearLabel:       widget.NewLabel(""),
		extentLabel:     widget.NewLabel(""),
		breakLabel:      widget.NewLabel(""),
		inferiorLabel:   widget.NewLabel(""),
		sessionLabel:    widget.NewLabel(""),
	}
	a.resultInfo.detachmentLabel.TextStyle = fyne.TextStyle{Bold: true}

	controller := gesture.NewController(a.store, cfg.GestureSettings(), nil)
	a.face = viewer.NewClockFace(controller, cfg.Display)

	a.store.OnSegmentsChanged(func(clock.SegmentSet) { a.updateResults() })
	a.store.OnHoursChanged(func(clock.HourSet) { a.updateResults() })

	clearButton := widget.NewButton("Clear Selection", func() {
		a.store.ClearAll()
	})

	resetButton := widget.NewButton("New Patient", func() {
		a.face.Reset()
		a.updateResults()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag around the ring to mark the detachment\n" +
			"• Start on a marked segment to erase (mouse only)\n" +
			"• Click an hour marker to toggle a retinal break\n" +
			"• On touch screens, hold an hour marker to toggle it",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Detachment:"),
		a.resultInfo.detachmentLabel,
		widget.NewSeparator(),
		widget.NewLabel("Retinal breaks:"),
		a.resultInfo.tearLabel,
		widget.NewSeparator(),
		widget.NewLabel("Risk model inputs:"),
		a.resultInfo.extentLabel,
		a.resultInfo.breakLabel,
		a.resultInfo.inferiorLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		clearButton,
		resetButton,
		a.resultInfo.sessionLabel,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.face,     // center
	)

	a.window.SetContent(content)
	a.updateResults()
}

func (a *App) updateResults() {
	result := analysis.Assess(a.store.Snapshot())

	a.resultInfo.detachmentLabel.SetText(result.DetachmentText)
	a.resultInfo.tearLabel.SetText(result.TearText)
	a.resultInfo.extentLabel.SetText(fmt.Sprintf("Extent: %s", result.Detachment))
	a.resultInfo.breakLabel.SetText(fmt.Sprintf("Break location: %s", result.BreakLocation))
	a.resultInfo.inferiorLabel.SetText(fmt.Sprintf("Inferior hours: %d", result.InferiorHours))
	a.resultInfo.sessionLabel.SetText(fmt.Sprintf("Session %s", a.store.Session()[:8]))
}

func (a *App) applyConfig(cfg config.Config) {
	a.face.Controller().SetSettings(cfg.GestureSettings())
	a.face.SetDisplay(cfg.Display)
	log.Debugw("applied settings", "long_press", cfg.Gesture.LongPress, "display", cfg.Display)
}
