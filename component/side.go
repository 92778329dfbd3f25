package component

// Side identifies a player and the arena boundary that scores for the opponent
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name for logging and test output
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}
