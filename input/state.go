package input

import "time"

// DefaultHold is the window a key counts as held after its last press
// event. Terminals report presses only, never releases, so a held key
// is one whose auto-repeat keeps refreshing the timestamp within this
// window. The value sits above common repeat delays (~500ms initial).
const DefaultHold = 550 * time.Millisecond

// State tracks which keys are currently held, reconstructed from
// press-only terminal events. Single-threaded: the host feeds Press
// from its event loop and samples Predicate once per tick.
type State struct {
	hold    time.Duration
	pressed map[Key]time.Time
}

// NewState returns key state with the given hold window
// A zero or negative hold falls back to DefaultHold
func NewState(hold time.Duration) *State {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &State{
		hold:    hold,
		pressed: make(map[Key]time.Time, 8),
	}
}

// Press records a press event for the key at the given time
func (s *State) Press(k Key, now time.Time) {
	if k == KeyNone {
		return
	}
	s.pressed[k] = now
}

// PressedAt reports whether the key counts as held at the given time
func (s *State) PressedAt(k Key, now time.Time) bool {
	last, ok := s.pressed[k]
	if !ok {
		return false
	}
	if now.Sub(last) > s.hold {
		delete(s.pressed, k)
		return false
	}
	return true
}

// Predicate returns the key-pressed predicate the simulation samples
// during one tick, bound to the tick's timestamp
func (s *State) Predicate(now time.Time) func(Key) bool {
	return func(k Key) bool {
		return s.PressedAt(k, now)
	}
}
