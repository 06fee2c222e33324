// Package geometry converts between screen coordinates, clock angles and
// clock-face segments.
//
// Angles use the clock convention: 0° points at 12 o'clock and angles grow
// clockwise. Cartesian inputs follow the maths convention with Y growing
// upwards, so screen coordinates must have their Y axis flipped first.
package geometry

import (
	"math"

	"github.com/philipparndt/rdclock/pkg/clock"
)

// PolarToCartesian converts a clock angle and radius to a point relative to the circle center.
// The returned Y grows downwards, matching screen space.
func PolarToCartesian(angleDegrees, radius float64) Vector2 {
	radians := (angleDegrees - 90) * math.Pi / 180
	return Vector2{
		X: radius * math.Cos(radians),
		Y: radius * math.Sin(radians),
	}
}

// CartesianToPolar converts a point relative to the circle center to a clock angle in [0, 360).
// y must already be negated from screen space: relY = -(pointerY - centerY).
func CartesianToPolar(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	angle := 90 - math.Atan2(y, x)*180/math.Pi
	return NormalizeDegrees(angle)
}

// NormalizeDegrees maps any angle into [0, 360). NaN and infinities map to 0.
func NormalizeDegrees(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	// math.Mod can hand back 360 for tiny negative inputs after the shift
	if angle >= 360 {
		angle = 0
	}
	return angle
}

// AngleDelta returns the signed rotation from one angle to another in [-180, 180].
// Positive values are clockwise.
func AngleDelta(from, to float64) float64 {
	delta := math.Mod(to-from, 360)
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta
}

// DirectionOf returns the rotational direction of a signed angle delta.
// A zero delta counts as clockwise.
func DirectionOf(delta float64) clock.Direction {
	if delta < 0 {
		return clock.CounterClockwise
	}
	return clock.Clockwise
}

// DegreeToSegment returns the segment containing the given clock angle
func DegreeToSegment(angleDegrees float64) clock.Segment {
	angle := NormalizeDegrees(angleDegrees)
	return clock.WrapSegment(int(math.Floor(angle / clock.DegreesPerSegment)))
}

// SegmentToDegree returns the clock angle at which a segment starts
func SegmentToDegree(segment clock.Segment) float64 {
	return math.Mod(float64(segment)*clock.DegreesPerSegment, 360)
}

// SegmentCenterDegree returns the clock angle through the middle of a segment
func SegmentCenterDegree(segment clock.Segment) float64 {
	return NormalizeDegrees(SegmentToDegree(segment) + clock.DegreesPerSegment/2)
}

// HourToDegree returns the clock angle of an hour mark
func HourToDegree(hour clock.Hour) float64 {
	return NormalizeDegrees(float64(hour) * clock.DegreesPerHour)
}
