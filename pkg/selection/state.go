// Package selection holds what the user has marked on the clock face: the
// painted detachment segments, the tear hours and the transient hover hour.
//
// State is an immutable value; every operation returns a new State. Values
// outside the valid segment or hour range are silently ignored so that a
// malformed coordinate degrades to a no-op instead of breaking the interaction.
package selection

import "github.com/philipparndt/rdclock/pkg/clock"

// Mode selects whether a paint stroke adds or removes segments
type Mode int

const (
	ModeNone Mode = iota
	ModeAdd
	ModeRemove
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeRemove:
		return "remove"
	default:
		return "none"
	}
}

// State is a snapshot of the clock-face selection
type State struct {
	Detachment clock.SegmentSet
	Tears      clock.HourSet
	// Hovered is UI-only and never feeds the assessment. Zero means no hover.
	Hovered clock.Hour
}

// ToggleSegment flips membership of a detachment segment
func (s State) ToggleSegment(seg clock.Segment) State {
	s.Detachment = s.Detachment.Toggle(seg)
	return s
}

// PaintRange adds or removes every listed segment. Painting is idempotent.
func (s State) PaintRange(segments []clock.Segment, mode Mode) State {
	for _, seg := range segments {
		switch mode {
		case ModeAdd:
			s.Detachment = s.Detachment.Add(seg)
		case ModeRemove:
			s.Detachment = s.Detachment.Remove(seg)
		}
	}
	return s
}

// ToggleHour flips membership of a tear hour
func (s State) ToggleHour(h clock.Hour) State {
	s.Tears = s.Tears.Toggle(h)
	return s
}

// WithHovered sets the hovered hour; invalid hours clear it
func (s State) WithHovered(h clock.Hour) State {
	if !h.Valid() {
		h = 0
	}
	s.Hovered = h
	return s
}

// ClearAll empties the detachment and tear sets
func (s State) ClearAll() State {
	return State{Hovered: s.Hovered}
}

// Empty reports whether nothing is selected
func (s State) Empty() bool {
	return s.Detachment.Empty() && s.Tears.Empty()
}
