package engine

import "github.com/lixenwraith/vi-pong/input"

// TimeResource carries per-tick timing shared by all systems
// The world updates it at the start of each tick, before any system runs
type TimeResource struct {
	// DeltaTime is the elapsed time since the previous tick in seconds,
	// never negative
	DeltaTime float64

	// FrameNumber is the running tick count for the current match
	FrameNumber int64
}

// InputResource carries the host's key-pressed predicate for the
// current tick. Systems sample it instead of touching the terminal,
// keeping the simulation decoupled from the backend.
type InputResource struct {
	Pressed func(input.Key) bool
}

// PressedFn is a zero predicate used when the host supplies none
func PressedFn(input.Key) bool { return false }
