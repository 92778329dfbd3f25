package system

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// PhysicsSystem integrates ball motion and resolves paddle and wall
// collisions. Paddle hits only flip velocity components; the walls also
// clamp the ball's edge exactly onto the boundary.
type PhysicsSystem struct {
	world *engine.World
}

// NewPhysicsSystem creates the ball physics system
func NewPhysicsSystem(world *engine.World) engine.System {
	return &PhysicsSystem{world: world}
}

// Priority returns the system's priority (after input, before scoring)
func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Update moves the ball by velocity*dt (explicit Euler), then checks
// each paddle independently against the post-move position: a hit on
// the ball's left/right face negates VelX, top/bottom negates VelY.
// The checks do not short-circuit, so a ball overlapping both paddles
// takes both negations even when they report the same axis. Wall
// contact runs last: reaching the top clamps the ball's top edge onto
// the boundary and flips VelY, symmetric at the bottom.
func (s *PhysicsSystem) Update() {
	opts := s.world.Options
	ball := &s.world.Ball

	ball.Pos = ball.Pos.Add(ball.Vel.Scale(s.world.Time.DeltaTime))

	for i := range s.world.Paddles {
		paddle := &s.world.Paddles[i]
		face, ok := vmath.Collide(paddle.Pos, opts.Player.Size, ball.Pos, opts.Ball.Size)
		if !ok {
			continue
		}
		if face.Horizontal() {
			ball.Vel.X = -ball.Vel.X
		} else {
			ball.Vel.Y = -ball.Vel.Y
		}
	}

	hg := opts.Game.Size.Y / 2
	hb := opts.Ball.Size.Y / 2
	if ball.Pos.Y+hb >= hg { // Ball hits top
		ball.Vel.Y = -ball.Vel.Y
		ball.Pos.Y = hg - hb
	} else if ball.Pos.Y-hb <= -hg { // Ball hits bottom
		ball.Vel.Y = -ball.Vel.Y
		ball.Pos.Y = -hg + hb
	}
}
