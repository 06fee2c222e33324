package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/rdclock/internal/log"
	"github.com/philipparndt/rdclock/pkg/analysis"
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/config"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/gesture"
	"github.com/philipparndt/rdclock/pkg/selection"
	"github.com/philipparndt/rdclock/pkg/watcher"
	"github.com/philipparndt/rdclock/version"
)

const reloadDebounce = 200 * time.Millisecond

// Options configure a window session
type Options struct {
	ConfigPath string
	Debug      bool
}

type App struct {
	Face        FaceState
	Interaction InteractionState
	Result      ResultState
	Settings    SettingsState
	UI          UIState
}

// Run opens the clock face window and blocks until it is closed
func Run(opts Options) error {
	cfg, cfgErr := config.Load(opts.ConfigPath)
	if err := log.Init(opts.Debug || cfg.Log.Debug); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer log.Sync()

	if cfgErr != nil {
		log.Warnw("using default settings", "path", opts.ConfigPath, "error", cfgErr)
	}

	store := selection.NewStore()
	app := &App{
		Face: FaceState{
			store:      store,
			controller: gesture.NewController(store, cfg.GestureSettings(), nil),
			display:    cfg.Display,
		},
		Settings: SettingsState{path: opts.ConfigPath},
		UI:       UIState{panelWidth: 320, showHelp: true},
	}
	defer app.Face.controller.Close()

	store.OnSegmentsChanged(func(clock.SegmentSet) { app.updateResult() })
	store.OnHoursChanged(func(clock.HourSet) { app.updateResult() })
	app.updateResult()

	// Set up settings watching
	if err := app.setupSettingsWatcher(); err != nil {
		log.Warnw("settings will not be reloaded", "error", err)
	} else {
		defer app.Settings.watcher.Close()
	}

	// Initialize window
	screenWidth := int32(1000)
	screenHeight := int32(680)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "Retinal Detachment Clock "+version.GetVersion())
	rl.SetTargetFPS(60)
	app.UI.font = rl.GetFontDefault()

	log.Infow("window opened", "session", store.Session())

	// Main loop
	for {
		// ESC clears the selection instead of closing the window
		if rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyEscape) {
			break
		}

		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Settings changed on disk (must be applied on the main thread)
		app.applyPendingSettings()

		// Update
		app.updateLayout()
		app.handleInput()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		app.drawFace()
		app.drawUI()

		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (app *App) setupSettingsWatcher() error {
	w, err := watcher.NewConfigWatcher(app.Settings.path, reloadDebounce, app.Settings.offer)
	if err != nil {
		return err
	}
	w.Start()
	app.Settings.watcher = w
	return nil
}

func (app *App) applyPendingSettings() {
	cfg, ok := app.Settings.take()
	if !ok {
		return
	}
	app.Face.controller.SetSettings(cfg.GestureSettings())
	app.Face.display = cfg.Display
	log.Debugw("applied settings", "long_press", cfg.Gesture.LongPress, "display", cfg.Display)
}

// updateLayout fits the face into the window left of the side panel
func (app *App) updateLayout() {
	const margin = 20
	width := float64(rl.GetScreenWidth()) - float64(app.UI.panelWidth) - 2*margin
	height := float64(rl.GetScreenHeight()) - 2*margin
	app.Face.bounds = geometry.Rect{Left: margin, Top: margin, Width: width, Height: height}
}

func (app *App) updateResult() {
	app.Result.assessment = analysis.Assess(app.Face.store.Snapshot())
	app.Result.session = app.Face.store.Session()
}
