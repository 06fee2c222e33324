package app

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/rdclock/pkg/analysis"
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/config"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/gesture"
	"github.com/philipparndt/rdclock/pkg/selection"
	"github.com/philipparndt/rdclock/pkg/watcher"
)

// FaceState holds the clock face model and where it is drawn
type FaceState struct {
	store      *selection.Store
	controller *gesture.Controller
	bounds     geometry.Rect // recomputed every frame from the window size
	display    config.DisplayConfig
}

// InteractionState holds per-frame pointer tracking
type InteractionState struct {
	device      gesture.Device // device of the pointer currently down, 0 when up
	heldMarker  clock.Hour     // tear marker under a touch, 0 when none
	clickMarker bool           // mouse went down on a tear marker
	lastPointer rl.Vector2
	touchCount  int32
}

// ResultState caches the assessment shown in the side panel
type ResultState struct {
	assessment *analysis.Assessment
	session    string
}

// SettingsState holds the live-reloaded settings file
type SettingsState struct {
	path    string
	watcher *watcher.ConfigWatcher

	mu      sync.Mutex
	pending *config.Config // set by the watcher goroutine, applied on the main thread
}

// UIState holds UI-related state
type UIState struct {
	font       rl.Font
	panelWidth float32
	showHelp   bool
}

func (s *SettingsState) offer(cfg config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &cfg
}

func (s *SettingsState) take() (config.Config, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return config.Config{}, false
	}
	cfg := *s.pending
	s.pending = nil
	return cfg, true
}
