package viewer

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/config"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/gesture"
	"github.com/philipparndt/rdclock/pkg/selection"
)

var testBounds = geometry.NewRect(400, 400)

// ringPoint returns a pixel in the middle of segment s, halfway across the ring
func ringPoint(s clock.Segment, display config.DisplayConfig) (float64, float64) {
	r := testBounds.Radius() * (display.InnerRadius + display.OuterRadius) / 2
	p := testBounds.Center().Add(geometry.PolarToCartesian(geometry.SegmentCenterDegree(s), r))
	return p.X, p.Y
}

func TestShadeFollowsSelection(t *testing.T) {
	display := config.Default().Display
	state := selection.State{}.ToggleSegment(20)

	x, y := ringPoint(20, display)
	if got := shade(int(x), int(y), 400, 400, state, display); got != detachedColor {
		t.Errorf("expected detached color, got %v", got)
	}

	x, y = ringPoint(40, display)
	if got := shade(int(x), int(y), 400, 400, state, display); got != ringColor {
		t.Errorf("expected ring color, got %v", got)
	}

	state = state.WithHovered(8)
	if got := shade(int(x), int(y), 400, 400, state, display); got != ringHoverColor {
		t.Errorf("expected hover color, got %v", got)
	}

	if got := shade(200, 200, 400, 400, state, display); got != backgroundColor {
		t.Errorf("expected background at the center, got %v", got)
	}
}

func TestHourDividers(t *testing.T) {
	tests := []struct {
		angle    float64
		expected bool
	}{
		{18, true},   // between 12 and 1
		{348, true},  // between 11 and 12
		{0, false},   // middle of hour 12
		{33, false},  // middle of hour 1
		{47.8, true}, // between 1 and 2
	}

	for _, tt := range tests {
		if got := onHourDivider(tt.angle); got != tt.expected {
			t.Errorf("onHourDivider(%v): expected %v, got %v", tt.angle, tt.expected, got)
		}
	}
}

func newTestFace(t *testing.T) *ClockFace {
	test.NewTempApp(t)
	c := gesture.NewController(selection.NewStore(), gesture.DefaultSettings(), nil)
	t.Cleanup(c.Close)
	return NewClockFace(c, config.Default().Display)
}

func TestResetClearsPressedMarker(t *testing.T) {
	f := newTestFace(t)
	store := f.Controller().Store()
	store.ToggleSegment(30)
	f.pressed = 6

	session := store.Session()
	f.Reset()

	state, _, pressed := f.snapshot()
	if pressed != 0 {
		t.Errorf("expected no pressed marker, got %d", pressed)
	}
	if !state.Detachment.Empty() {
		t.Errorf("expected empty detachment, got %v", state.Detachment)
	}
	if store.Session() == session {
		t.Errorf("expected a new session, got %s", store.Session())
	}
}

func TestResetOnEmptySelectionClearsPressedMarker(t *testing.T) {
	f := newTestFace(t)
	f.pressed = 3

	f.Reset()

	if _, _, pressed := f.snapshot(); pressed != 0 {
		t.Errorf("expected no pressed marker, got %d", pressed)
	}
}

func TestClearingTearsClearsPressedMarker(t *testing.T) {
	f := newTestFace(t)
	store := f.Controller().Store()
	store.ToggleHour(3)
	f.pressed = 3

	store.ClearAll()

	if _, _, pressed := f.snapshot(); pressed != 0 {
		t.Errorf("expected no pressed marker, got %d", pressed)
	}
}

func TestPressedMarkerSurvivesOtherTears(t *testing.T) {
	f := newTestFace(t)
	store := f.Controller().Store()
	store.ToggleHour(3)
	f.pressed = 9

	store.ToggleHour(5)

	if _, _, pressed := f.snapshot(); pressed != 9 {
		t.Errorf("expected pressed marker 9, got %d", pressed)
	}
}
