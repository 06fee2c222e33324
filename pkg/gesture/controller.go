// Package gesture turns pointer and touch events on the clock face into
// selection updates.
//
// Drag painting runs Idle -> Dragging -> Idle. Tear long-press runs
// Idle -> Pending -> Fired | Cancelled and only toggles the tear on release.
// Every coordinate is resolved through geometry.PointerToSegment.
package gesture

import (
	"sync"
	"time"

	"github.com/philipparndt/rdclock/internal/log"
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/selection"
)

// Device identifies the kind of pointer producing events
type Device int

const (
	Mouse Device = iota + 1
	Touch
)

func (d Device) String() string {
	switch d {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	default:
		return "unknown"
	}
}

// Pointer is one pointer sample together with the face bounds it was measured against
type Pointer struct {
	X, Y   float64
	Bounds geometry.Rect
	Device Device
}

// Settings tune gesture recognition
type Settings struct {
	// LongPress is how long a tear marker must be held on touch devices
	LongPress time.Duration
	// MoveThreshold is the movement in pixels that cancels a long press
	MoveThreshold float64
	// TouchAlwaysAdd makes touch drags always add segments; removal is left
	// to tapping on desktop or clearing
	TouchAlwaysAdd bool
}

// DefaultSettings returns the stock gesture tuning
func DefaultSettings() Settings {
	return Settings{
		LongPress:      500 * time.Millisecond,
		MoveThreshold:  10,
		TouchAlwaysAdd: true,
	}
}

// DragState describes an active paint stroke. The zero value is Idle.
type DragState struct {
	Active    bool
	Device    Device
	Start     clock.Segment
	Last      clock.Segment
	LastAngle float64
	Mode      selection.Mode
}

// Controller is the gesture state machine for one clock face
type Controller struct {
	store *selection.Store
	clock Clock

	mu          sync.Mutex
	settings    Settings
	drag        DragState
	press       tearPress
	generation  uint64
	closed      bool
	onLongPress func(clock.Hour)
}

// NewController creates a controller painting into store.
// A nil clock uses SystemClock.
func NewController(store *selection.Store, settings Settings, clk Clock) *Controller {
	if clk == nil {
		clk = SystemClock{}
	}
	return &Controller{
		store:    store,
		clock:    clk,
		settings: settings,
	}
}

// Store returns the selection store the controller writes to
func (c *Controller) Store() *selection.Store {
	return c.store
}

// SetSettings applies new tuning. A press already pending keeps its timer.
func (c *Controller) SetSettings(settings Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = settings
}

// Settings returns the active tuning
func (c *Controller) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// Drag returns a copy of the current drag state
func (c *Controller) Drag() DragState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drag
}

// PointerDown starts a paint stroke and paints the segment under the pointer.
// A start while already dragging means the previous release was lost; the old
// stroke is dropped and a new one begins. Samples against degenerate bounds
// are ignored.
func (c *Controller) PointerDown(p Pointer) {
	if p.Bounds.Degenerate() {
		return
	}
	segment := geometry.PointerToSegment(p.X, p.Y, p.Bounds)
	angle := geometry.PointerToAngle(p.X, p.Y, p.Bounds)
	selected := c.store.Snapshot().Detachment.Has(segment)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.drag.Active {
		log.Warnw("drag restarted without release", "device", c.drag.Device, "last", c.drag.Last)
	}

	mode := selection.ModeAdd
	if selected && !(p.Device == Touch && c.settings.TouchAlwaysAdd) {
		mode = selection.ModeRemove
	}

	c.drag = DragState{
		Active:    true,
		Device:    p.Device,
		Start:     segment,
		Last:      segment,
		LastAngle: angle,
		Mode:      mode,
	}
	c.mu.Unlock()

	log.Debugw("drag started", "segment", segment, "mode", mode, "device", p.Device)
	c.store.PaintRange([]clock.Segment{segment}, mode)
}

// PointerMove extends the active stroke to the segment under the pointer,
// filling every segment passed on the way.
// Samples against degenerate bounds are ignored.
func (c *Controller) PointerMove(p Pointer) {
	if p.Bounds.Degenerate() {
		return
	}
	segment := geometry.PointerToSegment(p.X, p.Y, p.Bounds)

	c.mu.Lock()
	if !c.drag.Active || c.closed {
		c.mu.Unlock()
		return
	}
	if segment == c.drag.Last {
		c.mu.Unlock()
		return
	}

	// The index distance is discontinuous at 59/0, the angle delta is not
	angle := geometry.PointerToAngle(p.X, p.Y, p.Bounds)
	dir := geometry.DirectionOf(geometry.AngleDelta(c.drag.LastAngle, angle))
	segments := clock.SegmentsBetween(c.drag.Last, segment, dir)

	c.drag.Last = segment
	c.drag.LastAngle = angle
	mode := c.drag.Mode
	c.mu.Unlock()

	c.store.PaintRange(segments, mode)
}

// PointerUp ends the active stroke
func (c *Controller) PointerUp() {
	c.mu.Lock()
	drag := c.drag
	c.drag = DragState{}
	c.mu.Unlock()

	if drag.Active {
		log.Debugw("drag finished", "start", drag.Start, "end", drag.Last, "mode", drag.Mode)
	}
}

// PointerCancel abandons the active stroke. Segments already painted stay painted.
func (c *Controller) PointerCancel() {
	c.mu.Lock()
	c.drag = DragState{}
	c.mu.Unlock()
}

// TearClick toggles a tear hour immediately, as a desktop click does
func (c *Controller) TearClick(hour clock.Hour) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()

	if closed || !hour.Valid() {
		return
	}
	c.store.ToggleHour(hour)
}

// Close cancels every pending timer and stops accepting events.
// Timer callbacks arriving afterwards are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.drag = DragState{}
	c.resetPressLocked()
}
