package component

import "github.com/lixenwraith/vi-pong/vmath"

// Ball is the mutable state of the match ball
// Position is unconstrained horizontally (leaving the arena triggers
// scoring) and clamped vertically at the walls by the physics system
type Ball struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}
