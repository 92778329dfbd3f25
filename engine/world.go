package engine

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/vmath"
)

// World owns the entire match state as explicit records with stable
// indices: two paddles indexed by side, one ball, one speed-up timer.
// All mutation happens inside Tick in system priority order; between
// ticks the host only reads (renderer) and never writes back.
type World struct {
	// Options is the immutable match configuration
	Options *config.Options

	// Paddles is indexed by component.Side
	Paddles [2]component.Paddle
	Ball    component.Ball
	Speedup component.SpeedupTimer

	// Events collects score events produced during the current tick
	Events *event.Queue

	Time  TimeResource
	Input InputResource

	systems []System
}

// NewWorld builds a world at match-start state from validated options
func NewWorld(opts *config.Options) *World {
	w := &World{
		Options: opts,
		Events:  event.NewQueue(),
		Input:   InputResource{Pressed: PressedFn},
	}
	w.Reset()
	return w
}

// Reset restores match-start state: paddles on their side one paddle
// width inside the arena edge at vertical center, ball at the arena
// center with a freshly served velocity, scores zeroed, timer restarted
func (w *World) Reset() {
	for _, side := range []component.Side{component.SideLeft, component.SideRight} {
		w.Paddles[side] = component.Paddle{
			Side: side,
			Pos: vmath.Vec2{
				X: component.StartX(side, w.Options.Game.Size.X, w.Options.Player.Size.X),
			},
		}
	}
	w.Ball = component.Ball{Vel: w.Options.Serve()}
	w.Speedup = component.NewSpeedupTimer(w.Options.Ball.SpeedupPeriod)
	w.Time = TimeResource{}
}

// Paddle returns the paddle record for a side
func (w *World) Paddle(side component.Side) *component.Paddle {
	return &w.Paddles[side]
}

// AddSystem registers a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Tick runs one simulation step: it publishes dt and the key predicate,
// runs every system in priority order, then drains and returns the
// score events produced this tick in emission order. dt is seconds and
// is clamped at zero; a nil pressed predicate reads as no keys held.
func (w *World) Tick(dt float64, pressed func(input.Key) bool) []event.ScoreEvent {
	if dt < 0 {
		dt = 0
	}
	if pressed == nil {
		pressed = PressedFn
	}

	w.Time.DeltaTime = dt
	w.Time.FrameNumber++
	w.Input.Pressed = pressed

	for _, system := range w.systems {
		system.Update()
	}

	return w.Events.Drain()
}
