package clock

import (
	"math/bits"
	"strconv"
	"strings"
)

// SegmentSet is a set of segments stored as a bitmask. The zero value is empty.
type SegmentSet uint64

const allSegments = SegmentSet(1)<<SegmentCount - 1

// NewSegmentSet builds a set, silently dropping out-of-range segments
func NewSegmentSet(segments ...Segment) SegmentSet {
	var set SegmentSet
	for _, s := range segments {
		set = set.Add(s)
	}
	return set
}

// AllSegments returns the set holding every segment
func AllSegments() SegmentSet {
	return allSegments
}

// Has reports whether the segment is in the set
func (s SegmentSet) Has(seg Segment) bool {
	return seg.Valid() && s&(1<<uint(seg)) != 0
}

// Add returns the set with the segment added. Invalid segments are ignored.
func (s SegmentSet) Add(seg Segment) SegmentSet {
	if !seg.Valid() {
		return s
	}
	return s | 1<<uint(seg)
}

// Remove returns the set without the segment
func (s SegmentSet) Remove(seg Segment) SegmentSet {
	if !seg.Valid() {
		return s
	}
	return s &^ (1 << uint(seg))
}

// Toggle adds the segment if absent and removes it if present
func (s SegmentSet) Toggle(seg Segment) SegmentSet {
	if !seg.Valid() {
		return s
	}
	return s ^ 1<<uint(seg)
}

// Union returns the segments present in either set
func (s SegmentSet) Union(other SegmentSet) SegmentSet {
	return (s | other) & allSegments
}

// Len returns the number of segments in the set
func (s SegmentSet) Len() int {
	return bits.OnesCount64(uint64(s & allSegments))
}

// Empty reports whether the set has no segments
func (s SegmentSet) Empty() bool {
	return s&allSegments == 0
}

// Segments returns the members in ascending order
func (s SegmentSet) Segments() []Segment {
	result := make([]Segment, 0, s.Len())
	for seg := Segment(0); seg < SegmentCount; seg++ {
		if s.Has(seg) {
			result = append(result, seg)
		}
	}
	return result
}

// String formats the set as "{58,59,0}" in ascending order
func (s SegmentSet) String() string {
	return joinInts(s.Segments())
}

// HourSet is a set of clock hours stored as a bitmask. Bit h represents hour h.
type HourSet uint16

const allHours = HourSet(1<<(HourCount+1) - 2)

// NewHourSet builds a set, silently dropping invalid hours
func NewHourSet(hours ...Hour) HourSet {
	var set HourSet
	for _, h := range hours {
		set = set.Add(h)
	}
	return set
}

// AllHours returns the set holding hours 1 through 12
func AllHours() HourSet {
	return allHours
}

// Has reports whether the hour is in the set
func (s HourSet) Has(h Hour) bool {
	return h.Valid() && s&(1<<uint(h)) != 0
}

// Add returns the set with the hour added. Invalid hours are ignored.
func (s HourSet) Add(h Hour) HourSet {
	if !h.Valid() {
		return s
	}
	return s | 1<<uint(h)
}

// Remove returns the set without the hour
func (s HourSet) Remove(h Hour) HourSet {
	if !h.Valid() {
		return s
	}
	return s &^ (1 << uint(h))
}

// Toggle adds the hour if absent and removes it if present
func (s HourSet) Toggle(h Hour) HourSet {
	if !h.Valid() {
		return s
	}
	return s ^ 1<<uint(h)
}

// Union returns the hours present in either set
func (s HourSet) Union(other HourSet) HourSet {
	return (s | other) & allHours
}

// Without returns the hours of s that are not in other
func (s HourSet) Without(other HourSet) HourSet {
	return s &^ other & allHours
}

// Len returns the number of hours in the set
func (s HourSet) Len() int {
	return bits.OnesCount16(uint16(s & allHours))
}

// Empty reports whether the set has no hours
func (s HourSet) Empty() bool {
	return s&allHours == 0
}

// Full reports whether all twelve hours are present
func (s HourSet) Full() bool {
	return s&allHours == allHours
}

// HasAny reports whether any of the given hours is present
func (s HourSet) HasAny(hours ...Hour) bool {
	for _, h := range hours {
		if s.Has(h) {
			return true
		}
	}
	return false
}

// Hours returns the members in ascending order
func (s HourSet) Hours() []Hour {
	result := make([]Hour, 0, s.Len())
	for h := Hour(1); h <= HourCount; h++ {
		if s.Has(h) {
			result = append(result, h)
		}
	}
	return result
}

// String formats the set as "{1,12}" in ascending order
func (s HourSet) String() string {
	return joinInts(s.Hours())
}

// HoursOf returns every hour touched by at least one segment of the set
func HoursOf(segments SegmentSet) HourSet {
	var hours HourSet
	for _, seg := range segments.Segments() {
		hours = hours.Add(SegmentToHour(seg))
	}
	return hours
}

// SegmentsForHours returns the union of the segment windows of the given hours
func SegmentsForHours(hours HourSet) SegmentSet {
	var set SegmentSet
	for _, h := range hours.Hours() {
		r, _ := HourToSegmentRange(h)
		for _, seg := range r.Segments() {
			set = set.Add(seg)
		}
	}
	return set
}

func joinInts[T ~int](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(int(v))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
