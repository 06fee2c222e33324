package selection

import (
	"testing"

	"github.com/philipparndt/rdclock/pkg/clock"
)

func TestStoreCallbacks(t *testing.T) {
	store := NewStore()

	var segmentEvents []clock.SegmentSet
	var hourEvents []clock.HourSet
	store.OnSegmentsChanged(func(s clock.SegmentSet) { segmentEvents = append(segmentEvents, s) })
	store.OnHoursChanged(func(h clock.HourSet) { hourEvents = append(hourEvents, h) })

	if !store.PaintRange([]clock.Segment{1, 2}, ModeAdd) {
		t.Error("first paint should report a change")
	}
	if store.PaintRange([]clock.Segment{1, 2}, ModeAdd) {
		t.Error("repeated paint should report no change")
	}
	store.ToggleHour(6)

	if len(segmentEvents) != 1 || segmentEvents[0] != clock.NewSegmentSet(1, 2) {
		t.Errorf("unexpected segment events: %v", segmentEvents)
	}
	if len(hourEvents) != 1 || hourEvents[0] != clock.NewHourSet(6) {
		t.Errorf("unexpected hour events: %v", hourEvents)
	}

	store.ClearAll()
	if len(segmentEvents) != 2 || len(hourEvents) != 2 {
		t.Errorf("clear should notify both listeners, got %d/%d", len(segmentEvents), len(hourEvents))
	}
	if !store.Snapshot().Empty() {
		t.Error("store not empty after ClearAll")
	}
}

func TestStoreCallbackCanReadStore(t *testing.T) {
	store := NewStore()

	var seen clock.SegmentSet
	store.OnSegmentsChanged(func(clock.SegmentSet) {
		// Must not deadlock: callbacks run outside the lock
		seen = store.Snapshot().Detachment
	})

	store.ToggleSegment(9)
	if !seen.Has(9) {
		t.Errorf("callback saw %s", seen)
	}
}

func TestStoreResetStartsNewSession(t *testing.T) {
	store := NewStore()
	first := store.Session()
	if first == "" {
		t.Fatal("expected a session id")
	}

	store.ToggleSegment(3)
	store.ToggleHour(4)
	store.SetHovered(5)
	store.Reset()

	if store.Session() == first {
		t.Error("Reset should start a new session")
	}
	if store.Snapshot() != (State{}) {
		t.Errorf("expected zero state after reset, got %+v", store.Snapshot())
	}
}

func TestStoreHover(t *testing.T) {
	store := NewStore()

	var hovered []clock.Hour
	store.OnHoverChanged(func(h clock.Hour) { hovered = append(hovered, h) })

	store.SetHovered(3)
	store.SetHovered(3)
	store.SetHovered(0)

	if len(hovered) != 2 || hovered[0] != 3 || hovered[1] != 0 {
		t.Errorf("unexpected hover events: %v", hovered)
	}
}
