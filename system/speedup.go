package system

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// SpeedupSystem scales the ball velocity every time the repeating
// speed-up timer fires, at most once per tick
type SpeedupSystem struct {
	world *engine.World
}

// NewSpeedupSystem creates the periodic ball acceleration system
func NewSpeedupSystem(world *engine.World) engine.System {
	return &SpeedupSystem{world: world}
}

// Priority returns the system's priority (first stage, with Input)
func (s *SpeedupSystem) Priority() int {
	return parameter.PrioritySpeedup
}

// Update advances the timer by dt and, on a period crossing, multiplies
// both velocity components by the configured factor. An oversized dt
// spanning several periods still scales exactly once.
func (s *SpeedupSystem) Update() {
	if !s.world.Speedup.Advance(s.world.Time.DeltaTime) {
		return
	}

	factor := s.world.Options.Ball.SpeedupFactor
	s.world.Ball.Vel = s.world.Ball.Vel.Scale(factor)
}
