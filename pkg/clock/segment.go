package clock

// Partition of the clock face. Every other package derives its segment and
// hour arithmetic from these constants.
const (
	SegmentCount      = 60
	HourCount         = 12
	SegmentsPerHour   = SegmentCount / HourCount
	DegreesPerSegment = 360.0 / SegmentCount
	DegreesPerHour    = 360.0 / HourCount
)

// Segment is one of SegmentCount equal arcs, numbered clockwise from 12 o'clock
type Segment int

// Hour is a clock hour in [1, 12]. The zero value means "no hour".
type Hour int

// Direction is a rotational direction around the clock face
type Direction int

const (
	Clockwise Direction = iota + 1
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Valid reports whether the segment lies in [0, SegmentCount)
func (s Segment) Valid() bool {
	return s >= 0 && s < SegmentCount
}

// Next returns the neighbouring segment in clockwise order
func (s Segment) Next() Segment {
	return WrapSegment(int(s) + 1)
}

// Prev returns the neighbouring segment in counter-clockwise order
func (s Segment) Prev() Segment {
	return WrapSegment(int(s) - 1)
}

// Hour returns the clock hour owning the segment
func (s Segment) Hour() Hour {
	return SegmentToHour(s)
}

// WrapSegment maps any integer onto the segment ring
func WrapSegment(i int) Segment {
	i %= SegmentCount
	if i < 0 {
		i += SegmentCount
	}
	return Segment(i)
}

// Valid reports whether the hour lies in [1, 12]
func (h Hour) Valid() bool {
	return h >= 1 && h <= HourCount
}

// Next returns the following hour, 12 is followed by 1
func (h Hour) Next() Hour {
	return h%HourCount + 1
}

// Prev returns the preceding hour, 1 is preceded by 12
func (h Hour) Prev() Hour {
	if h <= 1 {
		return HourCount
	}
	return h - 1
}

// SegmentToHour maps a segment to the hour whose five-segment window contains it.
//
// Hour h owns the segments (5h-2)..(5h+2) modulo SegmentCount, centred on the
// hour mark. Hour 12 therefore owns 58, 59, 0, 1 and 2 and straddles the index
// wraparound. Invalid segments map to 0.
func SegmentToHour(s Segment) Hour {
	if !s.Valid() {
		return 0
	}
	h := Hour((int(s) + SegmentsPerHour/2) / SegmentsPerHour % HourCount)
	if h == 0 {
		return HourCount
	}
	return h
}

// SegmentRange is an inclusive circular run of segments walked clockwise from Start to End
type SegmentRange struct {
	Start Segment
	End   Segment
}

// HourToSegmentRange returns the five segments owned by an hour.
// An invalid hour yields the zero range and false.
func HourToSegmentRange(h Hour) (SegmentRange, bool) {
	if !h.Valid() {
		return SegmentRange{}, false
	}
	center := int(h) * SegmentsPerHour
	half := SegmentsPerHour / 2
	return SegmentRange{
		Start: WrapSegment(center - half),
		End:   WrapSegment(center + half),
	}, true
}

// Wraps reports whether the range crosses the segment 59 -> 0 boundary
func (r SegmentRange) Wraps() bool {
	return r.Start > r.End
}

// Len returns the number of segments in the range
func (r SegmentRange) Len() int {
	return int(WrapSegment(int(r.End)-int(r.Start))) + 1
}

// Contains reports whether s lies inside the range
func (r SegmentRange) Contains(s Segment) bool {
	if !s.Valid() {
		return false
	}
	if r.Wraps() {
		return s >= r.Start || s <= r.End
	}
	return s >= r.Start && s <= r.End
}

// Segments lists the range in clockwise order
func (r SegmentRange) Segments() []Segment {
	return SegmentsBetween(r.Start, r.End, Clockwise)
}

// CircularDistance returns the minimum number of hops between two segments around the ring
func CircularDistance(a, b Segment) int {
	forward := int(WrapSegment(int(b) - int(a)))
	backward := SegmentCount - forward
	if forward <= backward {
		return forward
	}
	return backward
}

// SegmentsBetween walks the ring from start to end in the given direction,
// including both ends. The walk never takes more than SegmentCount steps.
// Invalid segments or directions return nil.
func SegmentsBetween(start, end Segment, dir Direction) []Segment {
	if !start.Valid() || !end.Valid() {
		return nil
	}

	var step func(Segment) Segment
	switch dir {
	case Clockwise:
		step = Segment.Next
	case CounterClockwise:
		step = Segment.Prev
	default:
		return nil
	}

	result := make([]Segment, 0, CircularDistance(start, end)+1)
	current := start
	for i := 0; i < SegmentCount; i++ {
		result = append(result, current)
		if current == end {
			break
		}
		current = step(current)
	}
	return result
}
