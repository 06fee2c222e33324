package gesture

import (
	"time"

	"github.com/philipparndt/rdclock/internal/log"
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/geometry"
)

// PressState is the phase of a tear long-press
type PressState int

const (
	PressIdle PressState = iota
	PressPending
	PressFired
	PressCancelled
)

func (s PressState) String() string {
	switch s {
	case PressPending:
		return "pending"
	case PressFired:
		return "fired"
	case PressCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

type tearPress struct {
	state   PressState
	hour    clock.Hour
	origin  geometry.Vector2
	started time.Time
	timer   Timer
}

// OnLongPress registers a hook run when a press reaches the long-press duration.
// It runs on the timer goroutine; UI code must hop back to its own thread.
func (c *Controller) OnLongPress(hook func(clock.Hour)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLongPress = hook
}

// Press returns the phase of the current tear press
func (c *Controller) Press() PressState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.press.state
}

// TearPressStart arms the long-press timer for a touch on a tear marker
func (c *Controller) TearPressStart(hour clock.Hour, x, y float64) {
	c.mu.Lock()
	if c.closed || !hour.Valid() {
		c.mu.Unlock()
		return
	}
	c.resetPressLocked()
	c.generation++
	generation := c.generation
	c.press = tearPress{
		state:   PressPending,
		hour:    hour,
		origin:  geometry.NewVector2(x, y),
		started: c.clock.Now(),
	}
	duration := c.settings.LongPress
	c.mu.Unlock()

	timer := c.clock.AfterFunc(duration, func() { c.fire(generation) })

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != generation || c.press.state == PressIdle {
		// Superseded while the timer was being created
		timer.Stop()
		return
	}
	c.press.timer = timer
}

// TearPressMove cancels the press once the finger wanders past the move threshold
func (c *Controller) TearPressMove(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.press.state != PressPending && c.press.state != PressFired {
		return
	}
	if c.press.origin.Distance(geometry.NewVector2(x, y)) <= c.settings.MoveThreshold {
		return
	}

	c.stopTimerLocked()
	c.press.state = PressCancelled
	log.Debugw("tear press cancelled by movement", "hour", c.press.hour)
}

// TearPressEnd finishes the press. The tear hour is toggled only when the
// timer fired, the full duration elapsed and the finger stayed put.
func (c *Controller) TearPressEnd() bool {
	c.mu.Lock()
	press := c.press
	held := c.clock.Now().Sub(press.started) >= c.settings.LongPress
	c.resetPressLocked()
	c.generation++
	c.mu.Unlock()

	if press.state != PressFired || !held {
		return false
	}
	c.store.ToggleHour(press.hour)
	return true
}

// TearPressCancel abandons the press, e.g. on touch-cancel
func (c *Controller) TearPressCancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetPressLocked()
	c.generation++
}

func (c *Controller) fire(generation uint64) {
	c.mu.Lock()
	if c.closed || generation != c.generation || c.press.state != PressPending {
		c.mu.Unlock()
		return
	}
	c.press.state = PressFired
	c.press.timer = nil
	hour := c.press.hour
	hook := c.onLongPress
	c.mu.Unlock()

	if hook != nil {
		hook(hour)
	}
}

func (c *Controller) stopTimerLocked() {
	if c.press.timer != nil {
		c.press.timer.Stop()
		c.press.timer = nil
	}
}

func (c *Controller) resetPressLocked() {
	c.stopTimerLocked()
	c.press = tearPress{}
}
