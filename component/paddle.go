package component

import "github.com/lixenwraith/vi-pong/vmath"

// Paddle is the mutable state of one player's paddle
// Pos.X is fixed at match start from the paddle's side and arena width;
// only Pos.Y changes during play. Size and color live in the match
// options, shared by both paddles.
type Paddle struct {
	Side  Side
	Pos   vmath.Vec2
	Score int
}

// StartX returns the fixed horizontal position for a paddle of the given
// side: one paddle width inside the arena edge
func StartX(side Side, arenaWidth, paddleWidth float64) float64 {
	x := arenaWidth/2 - paddleWidth
	if side == SideLeft {
		return -x
	}
	return x
}
