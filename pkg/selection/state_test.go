package selection

import (
	"testing"

	"github.com/philipparndt/rdclock/pkg/clock"
)

func TestToggleSegment(t *testing.T) {
	s := State{}.ToggleSegment(5)
	if !s.Detachment.Has(5) {
		t.Fatal("expected segment 5 to be selected")
	}

	s = s.ToggleSegment(5)
	if !s.Detachment.Empty() {
		t.Errorf("expected empty selection after second toggle, got %s", s.Detachment)
	}

	if got := (State{}).ToggleSegment(60); got != (State{}) {
		t.Errorf("out-of-range toggle should be a no-op, got %+v", got)
	}
}

func TestPaintRangeIdempotent(t *testing.T) {
	base := State{Detachment: clock.NewSegmentSet(10, 11)}
	segs := []clock.Segment{58, 59, 0, 1, 2}

	once := base.PaintRange(segs, ModeAdd)
	twice := once.PaintRange(segs, ModeAdd)

	if once != twice {
		t.Errorf("painting twice changed the state: %s vs %s", once.Detachment, twice.Detachment)
	}
	if once.Detachment.Len() != 7 {
		t.Errorf("expected 7 segments, got %d", once.Detachment.Len())
	}
}

func TestPaintRangeAddRemoveInverse(t *testing.T) {
	before := State{Detachment: clock.NewSegmentSet(0, 30)}
	segs := []clock.Segment{59, 0, 1, 2}

	after := before.PaintRange(segs, ModeAdd).PaintRange(segs, ModeRemove)

	for _, seg := range segs {
		if after.Detachment.Has(seg) {
			t.Errorf("segment %d survived add+remove", seg)
		}
	}
	if !after.Detachment.Has(30) {
		t.Error("segment outside the stroke was lost")
	}
}

func TestPaintRangeIgnoresInvalid(t *testing.T) {
	s := State{}.PaintRange([]clock.Segment{-1, 3, 60, 99}, ModeAdd)
	if s.Detachment != clock.NewSegmentSet(3) {
		t.Errorf("expected only segment 3, got %s", s.Detachment)
	}

	if got := s.PaintRange([]clock.Segment{3}, ModeNone); got != s {
		t.Error("ModeNone must not change the state")
	}
}

func TestToggleHourAndClear(t *testing.T) {
	s := State{}.ToggleHour(6).ToggleHour(12).ToggleHour(0).ToggleHour(13)
	if s.Tears != clock.NewHourSet(6, 12) {
		t.Errorf("expected tears {6,12}, got %s", s.Tears)
	}

	s = s.ToggleSegment(4).WithHovered(3)
	cleared := s.ClearAll()
	if !cleared.Empty() {
		t.Errorf("expected empty state, got %+v", cleared)
	}
	if cleared.Hovered != 3 {
		t.Errorf("clear should not touch hover state, got %d", cleared.Hovered)
	}
}

func TestWithHoveredInvalid(t *testing.T) {
	s := State{Hovered: 4}.WithHovered(14)
	if s.Hovered != 0 {
		t.Errorf("invalid hover hour should clear hover, got %d", s.Hovered)
	}
}
