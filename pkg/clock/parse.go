package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSegments parses a comma separated list such as "58-2,10,12".
// A range a-b is walked clockwise, so "58-2" means 58, 59, 0, 1, 2.
func ParseSegments(text string) (SegmentSet, error) {
	var set SegmentSet
	err := parseList(text, func(lo, hi int) error {
		start, end := Segment(lo), Segment(hi)
		if !start.Valid() || !end.Valid() {
			return fmt.Errorf("segment out of range [0,%d): %d-%d", SegmentCount, lo, hi)
		}
		for _, seg := range SegmentsBetween(start, end, Clockwise) {
			set = set.Add(seg)
		}
		return nil
	})
	return set, err
}

// ParseHours parses a comma separated list such as "11-1,6".
// A range a-b is walked clockwise, so "11-1" means 11, 12, 1.
func ParseHours(text string) (HourSet, error) {
	var set HourSet
	err := parseList(text, func(lo, hi int) error {
		start, end := Hour(lo), Hour(hi)
		if !start.Valid() || !end.Valid() {
			return fmt.Errorf("hour out of range [1,%d]: %d-%d", HourCount, lo, hi)
		}
		for h, i := start, 0; i < HourCount; h, i = h.Next(), i+1 {
			set = set.Add(h)
			if h == end {
				break
			}
		}
		return nil
	})
	return set, err
}

func parseList(text string, add func(lo, hi int) error) error {
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(item, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", item, err)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return fmt.Errorf("invalid range %q: %w", item, err)
			}
		}

		if err := add(start, end); err != nil {
			return err
		}
	}
	return nil
}
