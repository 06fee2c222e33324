package geometry

import (
	"testing"

	"github.com/philipparndt/rdclock/pkg/clock"
)

var testLayout = Layout{InnerRadius: 0.35, OuterRadius: 0.8, MarkerRing: 0.9, MarkerHitRadius: 14}

func TestLocate(t *testing.T) {
	bounds := NewRect(400, 400)
	ringMid := bounds.Radius() * (testLayout.InnerRadius + testLayout.OuterRadius) / 2

	p := bounds.Center().Add(PolarToCartesian(SegmentCenterDegree(15), ringMid))
	got := Locate(p.X, p.Y, bounds, testLayout)
	if got.Kind != TargetRing || got.Segment != 15 || got.Hour != 3 {
		t.Errorf("expected ring segment 15 at hour 3, got %+v", got)
	}

	marker := HourMarkerPosition(9, bounds, testLayout.MarkerRing)
	got = Locate(marker.X+3, marker.Y-3, bounds, testLayout)
	if got.Kind != TargetMarker || got.Hour != 9 {
		t.Errorf("expected marker 9, got %+v", got)
	}

	c := bounds.Center()
	if got := Locate(c.X, c.Y, bounds, testLayout); got.Kind != TargetNone {
		t.Errorf("expected nothing at the center, got %+v", got)
	}
	if got := Locate(1, 1, bounds, testLayout); got.Kind != TargetNone {
		t.Errorf("expected nothing in the corner, got %+v", got)
	}
}

func TestLocateDegenerateBounds(t *testing.T) {
	got := Locate(10, 10, Rect{}, testLayout)
	if got != (Target{}) {
		t.Errorf("expected no target, got %+v", got)
	}
}

func TestLocateMarkerOverlappingRing(t *testing.T) {
	// With a marker ring inside the segment ring the marker still wins
	layout := testLayout
	layout.MarkerRing = 0.7
	bounds := NewRect(400, 400)

	p := HourMarkerPosition(6, bounds, layout.MarkerRing)
	got := Locate(p.X, p.Y, bounds, layout)
	if got.Kind != TargetMarker || got.Hour != clock.Hour(6) {
		t.Errorf("expected marker 6, got %+v", got)
	}
}
