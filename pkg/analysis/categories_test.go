package analysis

import (
	"testing"

	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/selection"
)

func segmentsFor(hours ...clock.Hour) clock.SegmentSet {
	return clock.SegmentsForHours(clock.NewHourSet(hours...))
}

func TestDetachmentCategory(t *testing.T) {
	tests := []struct {
		name     string
		segments clock.SegmentSet
		want     Extent
	}{
		{"empty", 0, LessThan3},
		{"superior only", segmentsFor(11, 12, 1), LessThan3},
		{"single inferior hour with implication", segmentsFor(5), LessThan3},
		{"three inferior", segmentsFor(3, 4, 5), ThreeToFive},
		{"implication pushes over three", segmentsFor(4, 5), ThreeToFive},
		{"six inferior", segmentsFor(3, 4, 5, 6, 7, 8), SixHours},
		{"whole inferior half", segmentsFor(2, 3, 4, 5, 6, 7, 8, 9, 10), SixHours},
		{"all hours", clock.AllSegments(), TotalDetachment},
		{"all but hour 12", segmentsFor(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11), SixHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetachmentCategory(tt.segments); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestTotalDetachmentViaImplication(t *testing.T) {
	// Hour 6 is not painted but implied by 5 and 7
	segs := segmentsFor(1, 2, 3, 4, 5, 7, 8, 9, 10, 11, 12)
	if !IsTotalDetachment(segs) {
		t.Error("implied hour 6 should complete a total detachment")
	}
	if DetachmentCategory(segs) != TotalDetachment {
		t.Errorf("expected total, got %s", DetachmentCategory(segs))
	}
}

func TestInferiorHourCount(t *testing.T) {
	tests := []struct {
		segments clock.SegmentSet
		want     int
	}{
		{0, 0},
		{segmentsFor(12), 0},
		{segmentsFor(6), 1},
		{segmentsFor(7), 2},
		{segmentsFor(3, 4, 5, 6, 7, 8), 7},
		{clock.AllSegments(), 7},
	}

	for _, tt := range tests {
		if got := InferiorHourCount(tt.segments); got != tt.want {
			t.Errorf("InferiorHourCount(%s): expected %d, got %d", clock.HoursOf(tt.segments), tt.want, got)
		}
	}
}

func TestBreakLocationCategory(t *testing.T) {
	tests := []struct {
		tears clock.HourSet
		want  BreakLocation
	}{
		{0, BreakNone},
		{clock.NewHourSet(6), BreakFiveToSeven},
		{clock.NewHourSet(4), BreakFourOrEight},
		{clock.NewHourSet(8, 12), BreakFourOrEight},
		{clock.NewHourSet(4, 7), BreakFiveToSeven},
		{clock.NewHourSet(12), BreakNineToThree},
		{clock.NewHourSet(3, 9, 10), BreakNineToThree},
	}

	for _, tt := range tests {
		if got := BreakLocationCategory(tt.tears); got != tt.want {
			t.Errorf("BreakLocationCategory(%s): expected %s, got %s", tt.tears, tt.want, got)
		}
	}
}

func TestCategoryIdentifiers(t *testing.T) {
	if string(SixHours) != "6_hours" || string(BreakFourOrEight) != "4_or_8" {
		t.Error("category identifiers must match the risk model's keys")
	}
}

func TestAssess(t *testing.T) {
	state := selection.State{
		Detachment: clock.AllSegments(),
		Tears:      clock.NewHourSet(6),
		Hovered:    3,
	}

	a := Assess(state)
	if a.Detachment != TotalDetachment || !a.Total {
		t.Errorf("expected total detachment, got %+v", a)
	}
	if a.DetachmentText != "1-12 o'clock (Total)" {
		t.Errorf("unexpected detachment text %q", a.DetachmentText)
	}
	if a.BreakLocation != BreakFiveToSeven || a.TearText != "6 o'clock" {
		t.Errorf("unexpected tear assessment %s / %q", a.BreakLocation, a.TearText)
	}
	if a.SegmentCount != 60 {
		t.Errorf("expected 60 segments, got %d", a.SegmentCount)
	}

	empty := Assess(selection.State{})
	if empty.Detachment != LessThan3 || empty.BreakLocation != BreakNone || empty.DetachmentText != "None" {
		t.Errorf("unexpected empty assessment %+v", empty)
	}
}
