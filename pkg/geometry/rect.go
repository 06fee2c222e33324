package geometry

import (
	"math"

	"github.com/philipparndt/rdclock/pkg/clock"
)

// Rect is the bounding rectangle of the rendered clock face, in the same
// coordinate space as the pointer positions handed to the functions below.
type Rect struct {
	Left, Top, Width, Height float64
}

// NewRect creates a rectangle anchored at the origin
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Degenerate reports whether the rectangle cannot host a circle
func (r Rect) Degenerate() bool {
	for _, v := range []float64{r.Left, r.Top, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the center of the rectangle
func (r Rect) Center() Vector2 {
	return Vector2{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Radius returns the radius of the largest circle that fits the rectangle
func (r Rect) Radius() float64 {
	if r.Degenerate() {
		return 0
	}
	return math.Min(r.Width, r.Height) / 2
}

// Relative converts a screen position to center-relative coordinates with Y pointing up
func (r Rect) Relative(pointerX, pointerY float64) Vector2 {
	c := r.Center()
	return Vector2{X: pointerX - c.X, Y: -(pointerY - c.Y)}
}

// PointerToAngle returns the clock angle of a pointer position around the rectangle's center.
// Degenerate rectangles and non-finite pointers yield 0.
func PointerToAngle(pointerX, pointerY float64, bounds Rect) float64 {
	if bounds.Degenerate() || math.IsNaN(pointerX) || math.IsNaN(pointerY) {
		return 0
	}
	rel := bounds.Relative(pointerX, pointerY)
	return CartesianToPolar(rel.X, rel.Y)
}

// PointerToSegment returns the segment under a pointer position. Every input
// path (mouse, touch, CLI) resolves segments through this function.
func PointerToSegment(pointerX, pointerY float64, bounds Rect) clock.Segment {
	return DegreeToSegment(PointerToAngle(pointerX, pointerY, bounds))
}

// PointerRadius returns the pointer's distance from the center as a fraction of the face radius.
// Degenerate rectangles yield +Inf so that nothing counts as inside.
func PointerRadius(pointerX, pointerY float64, bounds Rect) float64 {
	radius := bounds.Radius()
	if radius == 0 {
		return math.Inf(1)
	}
	return bounds.Relative(pointerX, pointerY).Length() / radius
}

// HourMarkerPosition returns the screen position of the tear marker for an hour.
// Markers sit on a ring of ringFraction times the face radius.
func HourMarkerPosition(hour clock.Hour, bounds Rect, ringFraction float64) Vector2 {
	offset := PolarToCartesian(HourToDegree(hour), bounds.Radius()*ringFraction)
	return bounds.Center().Add(offset)
}

// HourMarkerAt returns the hour whose tear marker lies within hitRadius pixels
// of the pointer, or 0 when no marker is hit.
func HourMarkerAt(pointerX, pointerY float64, bounds Rect, ringFraction, hitRadius float64) clock.Hour {
	if bounds.Degenerate() {
		return 0
	}

	pointer := NewVector2(pointerX, pointerY)
	best := clock.Hour(0)
	bestDist := hitRadius
	for h := clock.Hour(1); h <= clock.HourCount; h++ {
		dist := pointer.Distance(HourMarkerPosition(h, bounds, ringFraction))
		if dist <= bestDist {
			best = h
			bestDist = dist
		}
	}
	return best
}
