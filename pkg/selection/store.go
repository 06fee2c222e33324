package selection

import (
	"sync"

	"github.com/google/uuid"
	"github.com/philipparndt/rdclock/internal/log"
	"github.com/philipparndt/rdclock/pkg/clock"
)

// Store owns the selection of one calculator session and notifies listeners
// after every operation that changed it.
type Store struct {
	mu      sync.Mutex
	state   State
	session string

	onSegments []func(clock.SegmentSet)
	onHours    []func(clock.HourSet)
	onHover    []func(clock.Hour)
}

// NewStore creates an empty store with a fresh session id
func NewStore() *Store {
	return &Store{session: uuid.NewString()}
}

// OnSegmentsChanged registers a callback fired when the detachment segments change
func (s *Store) OnSegmentsChanged(callback func(clock.SegmentSet)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSegments = append(s.onSegments, callback)
}

// OnHoursChanged registers a callback fired when the tear hours change
func (s *Store) OnHoursChanged(callback func(clock.HourSet)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onHours = append(s.onHours, callback)
}

// OnHoverChanged registers a callback fired when the hovered hour changes
func (s *Store) OnHoverChanged(callback func(clock.Hour)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onHover = append(s.onHover, callback)
}

// Snapshot returns the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Session returns the id of the current calculator session
func (s *Store) Session() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// ToggleSegment flips one detachment segment
func (s *Store) ToggleSegment(seg clock.Segment) bool {
	return s.apply(func(st State) State { return st.ToggleSegment(seg) })
}

// PaintRange adds or removes segments; it reports whether anything changed
func (s *Store) PaintRange(segments []clock.Segment, mode Mode) bool {
	return s.apply(func(st State) State { return st.PaintRange(segments, mode) })
}

// ToggleHour flips one tear hour
func (s *Store) ToggleHour(h clock.Hour) bool {
	return s.apply(func(st State) State { return st.ToggleHour(h) })
}

// SetHovered updates the hovered hour
func (s *Store) SetHovered(h clock.Hour) bool {
	return s.apply(func(st State) State { return st.WithHovered(h) })
}

// ClearAll empties detachment and tears but keeps the session
func (s *Store) ClearAll() bool {
	return s.apply(State.ClearAll)
}

// Reset clears everything and starts a new session
func (s *Store) Reset() {
	s.mu.Lock()
	previous := s.session
	s.session = uuid.NewString()
	s.mu.Unlock()

	s.apply(func(State) State { return State{} })
	log.Debugw("selection session reset", "previous", previous, "session", s.Session())
}

func (s *Store) apply(op func(State) State) bool {
	s.mu.Lock()
	before := s.state
	after := op(before)
	s.state = after
	onSegments := s.onSegments
	onHours := s.onHours
	onHover := s.onHover
	s.mu.Unlock()

	changed := false
	if before.Detachment != after.Detachment {
		changed = true
		for _, cb := range onSegments {
			cb(after.Detachment)
		}
	}
	if before.Tears != after.Tears {
		changed = true
		for _, cb := range onHours {
			cb(after.Tears)
		}
	}
	if before.Hovered != after.Hovered {
		changed = true
		for _, cb := range onHover {
			cb(after.Hovered)
		}
	}
	return changed
}
