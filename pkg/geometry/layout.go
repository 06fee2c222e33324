package geometry

import "github.com/philipparndt/rdclock/pkg/clock"

// Layout places the segment ring and the tear markers on a face. Radii are
// fractions of the face radius, the hit radius is in pixels.
type Layout struct {
	InnerRadius     float64
	OuterRadius     float64
	MarkerRing      float64
	MarkerHitRadius float64
}

// TargetKind names what lies under a pointer
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetRing
	TargetMarker
)

func (k TargetKind) String() string {
	switch k {
	case TargetRing:
		return "ring"
	case TargetMarker:
		return "marker"
	default:
		return "none"
	}
}

// Target is the result of a hit test. Segment is only meaningful on the ring.
type Target struct {
	Kind    TargetKind
	Segment clock.Segment
	Hour    clock.Hour
}

// Locate resolves a pointer position against a face layout. Tear markers win
// over the ring so that markers overlapping the ring edge stay clickable.
func Locate(pointerX, pointerY float64, bounds Rect, layout Layout) Target {
	if hour := HourMarkerAt(pointerX, pointerY, bounds, layout.MarkerRing, layout.MarkerHitRadius); hour != 0 {
		return Target{Kind: TargetMarker, Hour: hour}
	}

	r := PointerRadius(pointerX, pointerY, bounds)
	if r < layout.InnerRadius || r > layout.OuterRadius {
		return Target{}
	}

	segment := PointerToSegment(pointerX, pointerY, bounds)
	return Target{Kind: TargetRing, Segment: segment, Hour: segment.Hour()}
}
