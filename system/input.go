package system

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// InputSystem moves paddles vertically from held keys, bounds-checked
// against the arena so a paddle's leading edge never leaves it
type InputSystem struct {
	world *engine.World
}

// NewInputSystem creates the paddle motion system
func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{world: world}
}

// Priority returns the system's priority (first stage, with Speedup)
func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

// Update applies held-key movement to both paddles
// Up is applied before down, and the down bound check reads the
// position the up branch may have just moved, so holding both keys on a
// centered paddle nets zero while a paddle pinned at a wall can still
// step back in. A failed bound check leaves the paddle where it is; no
// extra clamping happens.
func (s *InputSystem) Update() {
	opts := s.world.Options
	pressed := s.world.Input.Pressed

	movement := opts.Player.Speed * s.world.Time.DeltaTime
	hp := opts.Player.Size.Y / 2
	hg := opts.Game.Size.Y / 2

	for _, side := range []component.Side{component.SideLeft, component.SideRight} {
		paddle := s.world.Paddle(side)
		keys := opts.KeysFor(side)

		if pressed(keys.Up) && paddle.Pos.Y+hp+movement <= hg {
			paddle.Pos.Y += movement
		}
		if pressed(keys.Down) && paddle.Pos.Y-hp-movement >= -hg {
			paddle.Pos.Y -= movement
		}
	}
}
