// Package hours collapses clock-face selections into clock-hour ranges for display.
package hours

import (
	"fmt"
	"sort"
	"strings"

	"github.com/philipparndt/rdclock/pkg/clock"
)

const (
	// None is shown for an empty selection
	None = "None"
	// TotalText is shown when every hour is covered
	TotalText = "1-12 o'clock (Total)"

	suffix    = " o'clock"
	separator = "; "
)

// Range is an inclusive run of hours walked clockwise from Start to End
type Range struct {
	Start clock.Hour
	End   clock.Hour
}

// CrossesMidnight reports whether the range runs through 12 into 1
func (r Range) CrossesMidnight() bool {
	return r.Start > r.End
}

// Len returns the number of hours in the range
func (r Range) Len() int {
	n := int(r.End) - int(r.Start)
	if n < 0 {
		n += clock.HourCount
	}
	return n + 1
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Touched returns every hour containing at least one selected segment
func Touched(segments clock.SegmentSet) clock.HourSet {
	return clock.HoursOf(segments)
}

// Implied adds the hours a break straddling an hour boundary is rounded to:
// 6 when 5 or 7 is present, 3 when 2 or 4 is present, 9 when 8 or 10 is present.
func Implied(set clock.HourSet) clock.HourSet {
	result := set
	if set.HasAny(5, 7) {
		result = result.Add(6)
	}
	if set.HasAny(2, 4) {
		result = result.Add(3)
	}
	if set.HasAny(8, 10) {
		result = result.Add(9)
	}
	return result
}

// DetachmentHours returns the hours a painted detachment covers, implications included
func DetachmentHours(segments clock.SegmentSet) clock.HourSet {
	return Implied(Touched(segments))
}

// Ranges returns the maximal runs of consecutive hours. A run through
// midnight is a single range and sorts first; the others sort by start hour.
// A full set yields the single range 1-12.
func Ranges(set clock.HourSet) []Range {
	if set.Empty() {
		return nil
	}
	if set.Full() {
		return []Range{{Start: 1, End: clock.HourCount}}
	}

	// Begin scanning just after a gap so that no run is split at the starting point
	start := clock.Hour(1)
	for set.Has(start.Prev()) {
		start = start.Next()
	}

	var ranges []Range
	h := start
	for i := 0; i < clock.HourCount; i, h = i+1, h.Next() {
		if !set.Has(h) {
			continue
		}
		if n := len(ranges); n > 0 && ranges[n-1].End.Next() == h {
			ranges[n-1].End = h
			continue
		}
		ranges = append(ranges, Range{Start: h, End: h})
	}

	sort.Slice(ranges, func(i, j int) bool {
		a, b := ranges[i], ranges[j]
		if a.CrossesMidnight() != b.CrossesMidnight() {
			return a.CrossesMidnight()
		}
		return a.Start < b.Start
	})
	return ranges
}

// Format renders a set of hours, e.g. "11-1; 6 o'clock"
func Format(set clock.HourSet) string {
	if set.Empty() {
		return None
	}
	if set.Full() {
		return TotalText
	}

	ranges := Ranges(set)
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, separator) + suffix
}

// FormatDetachment renders the hours covered by painted detachment segments
func FormatDetachment(segments clock.SegmentSet) string {
	return Format(DetachmentHours(segments))
}

// FormatTears renders tear hours. Tears are point locations, so no hours are implied.
func FormatTears(tears clock.HourSet) string {
	if tears.Empty() {
		return None
	}
	if tears.Full() {
		return fmt.Sprintf("1-12%s", suffix)
	}
	return Format(tears)
}
