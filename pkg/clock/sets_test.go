package clock

import (
	"reflect"
	"testing"
)

func TestSegmentSetOperations(t *testing.T) {
	set := NewSegmentSet(59, 0, 7, 7, 60, -3)

	if set.Len() != 3 {
		t.Fatalf("expected 3 members, got %d (%s)", set.Len(), set)
	}
	if !set.Has(59) || !set.Has(0) || !set.Has(7) {
		t.Errorf("missing members in %s", set)
	}
	if set.Has(60) || set.Has(-3) {
		t.Error("out-of-range segments must never be members")
	}

	set = set.Toggle(7).Toggle(8).Remove(0)
	if got := set.Segments(); !reflect.DeepEqual(got, []Segment{8, 59}) {
		t.Errorf("expected [8 59], got %v", got)
	}

	if AllSegments().Len() != SegmentCount {
		t.Errorf("expected AllSegments to hold %d members, got %d", SegmentCount, AllSegments().Len())
	}
}

func TestHourSetOperations(t *testing.T) {
	set := NewHourSet(12, 1, 0, 13)

	if got := set.Hours(); !reflect.DeepEqual(got, []Hour{1, 12}) {
		t.Errorf("expected [1 12], got %v", got)
	}
	if set.Full() {
		t.Error("two hours is not a full set")
	}
	if !AllHours().Full() || AllHours().Len() != HourCount {
		t.Errorf("AllHours: expected %d hours, got %s", HourCount, AllHours())
	}
	if !set.HasAny(5, 12) || set.HasAny(5, 6) {
		t.Error("HasAny mismatch")
	}
	if set.String() != "{1,12}" {
		t.Errorf("expected {1,12}, got %s", set.String())
	}
	if got := AllHours().Without(set); got.Len() != 10 || got.Has(1) || got.Has(12) {
		t.Errorf("Without: expected 2-11, got %s", got)
	}
}

func TestHoursOfAndSegmentsForHours(t *testing.T) {
	hours := NewHourSet(11, 12, 1)
	segments := SegmentsForHours(hours)

	if segments.Len() != 3*SegmentsPerHour {
		t.Errorf("expected %d segments, got %d", 3*SegmentsPerHour, segments.Len())
	}
	if HoursOf(segments) != hours {
		t.Errorf("expected %s, got %s", hours, HoursOf(segments))
	}
}

func TestParseSegments(t *testing.T) {
	set, err := ParseSegments("58-2, 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := NewSegmentSet(58, 59, 0, 1, 2, 10)
	if set != expected {
		t.Errorf("expected %s, got %s", expected, set)
	}

	for _, bad := range []string{"61", "a", "3-x", "5-60"} {
		if _, err := ParseSegments(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseHours(t *testing.T) {
	set, err := ParseHours("11-1,6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := NewHourSet(11, 12, 1, 6)
	if set != expected {
		t.Errorf("expected %s, got %s", expected, set)
	}

	if _, err := ParseHours("0"); err == nil {
		t.Error("expected error for hour 0")
	}

	empty, err := ParseHours("")
	if err != nil || !empty.Empty() {
		t.Errorf("expected empty set without error, got %s, %v", empty, err)
	}
}
