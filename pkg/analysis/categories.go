package analysis

import (
	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/hours"
)

// Extent is the detachment extent bucket consumed by the risk model
type Extent string

const (
	LessThan3       Extent = "less_than_3"
	ThreeToFive     Extent = "3_to_5"
	SixHours        Extent = "6_hours"
	TotalDetachment Extent = "total_detachment"
)

// BreakLocation is the tear location bucket consumed by the risk model
type BreakLocation string

const (
	BreakNone        BreakLocation = "none"
	BreakNineToThree BreakLocation = "9_to_3"
	BreakFourOrEight BreakLocation = "4_or_8"
	BreakFiveToSeven BreakLocation = "5_to_7"
)

// TotalDetachmentHours is the number of covered hours counted as a total detachment.
// It matches the formatter's "(Total)" rule so display and scoring agree.
const TotalDetachmentHours = clock.HourCount

// InferiorHours are the lower-half clock hours, 3 through 9
var InferiorHours = clock.NewHourSet(3, 4, 5, 6, 7, 8, 9)

var (
	lowestBreakHours = []clock.Hour{5, 6, 7}
	sideBreakHours   = []clock.Hour{4, 8}
)

// IsTotalDetachment reports whether the painted segments cover every clock hour
func IsTotalDetachment(segments clock.SegmentSet) bool {
	return hours.DetachmentHours(segments).Len() >= TotalDetachmentHours
}

// InferiorHourCount counts the inferior hours covered by the detachment
func InferiorHourCount(segments clock.SegmentSet) int {
	return countInferior(hours.DetachmentHours(segments))
}

// DetachmentCategory buckets the detachment. Total wins over the inferior-hour buckets.
func DetachmentCategory(segments clock.SegmentSet) Extent {
	return categorize(hours.DetachmentHours(segments))
}

// BreakLocationCategory buckets the tear hours. The lowest breaks take priority.
func BreakLocationCategory(tears clock.HourSet) BreakLocation {
	switch {
	case tears.Empty():
		return BreakNone
	case tears.HasAny(lowestBreakHours...):
		return BreakFiveToSeven
	case tears.HasAny(sideBreakHours...):
		return BreakFourOrEight
	default:
		return BreakNineToThree
	}
}

func countInferior(covered clock.HourSet) int {
	return (covered & InferiorHours).Len()
}

func categorize(covered clock.HourSet) Extent {
	inferior := countInferior(covered)
	switch {
	case covered.Len() >= TotalDetachmentHours:
		return TotalDetachment
	case inferior >= 6:
		return SixHours
	case inferior >= 3:
		return ThreeToFive
	default:
		return LessThan3
	}
}
