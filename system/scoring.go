package system

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// ScoringSystem detects the ball leaving the arena horizontally,
// credits the opposite player and restarts the rally
type ScoringSystem struct {
	world *engine.World
}

// NewScoringSystem creates the point detection system
func NewScoringSystem(world *engine.World) engine.System {
	return &ScoringSystem{world: world}
}

// Priority returns the system's priority (after physics, so it sees the
// post-move ball position of the same tick)
func (s *ScoringSystem) Priority() int {
	return parameter.PriorityScoring
}

// Update checks the post-physics ball position against the left and
// right boundaries. The left edge is tested first; at most one point is
// awarded per tick (a ball satisfying both sides at once requires a
// ball wider than the arena, which Validate rejects). On a point the
// scorer's score increments, a ScoreEvent with the new total is
// emitted, the ball returns to center with a fresh serve, and BOTH
// paddles return to vertical center.
func (s *ScoringSystem) Update() {
	ball := &s.world.Ball
	maxX := s.world.Options.Game.Size.X / 2
	hb := s.world.Options.Ball.Size.X / 2

	if ball.Pos.X-hb <= -maxX {
		s.scorePoint(component.SideRight)
	} else if ball.Pos.X+hb >= maxX {
		s.scorePoint(component.SideLeft)
	}
}

func (s *ScoringSystem) scorePoint(side component.Side) {
	paddle := s.world.Paddle(side)
	paddle.Score++

	s.world.Events.Push(event.ScoreEvent{Side: side, Score: paddle.Score})

	s.world.Ball = component.Ball{Pos: vmath.Vec2{}, Vel: s.world.Options.Serve()}
	for i := range s.world.Paddles {
		s.world.Paddles[i].Pos.Y = 0
	}
}
