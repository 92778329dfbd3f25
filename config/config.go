package config

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// GameOptions configures the arena
type GameOptions struct {
	Size       vmath.Vec2
	Background string // color name, presentation-only
}

// PlayerOptions configures both paddles
type PlayerOptions struct {
	LeftColor  string
	RightColor string
	Size       vmath.Vec2
	LeftKeys   input.Bindings
	RightKeys  input.Bindings
	Speed      float64 // arena units per second
}

// BallOptions configures the ball and its periodic speed-up
type BallOptions struct {
	Color string
	Size  vmath.Vec2

	// StartVelocity generates the serve velocity at match start and
	// after every point. Injected so hosts and tests choose the policy;
	// nil falls back to the fixed default serve.
	StartVelocity func() vmath.Vec2

	SpeedupFactor float64
	SpeedupPeriod float64 // seconds
}

// ScoreDisplayOptions configures the score line; nil in Options
// disables the display entirely (score events are still emitted)
type ScoreDisplayOptions struct {
	FontSize float64
	Color    string
}

// Options is the full immutable match configuration. Built once by the
// host, validated, then passed by reference into the simulation; the
// core never mutates it.
type Options struct {
	Game         GameOptions
	Player       PlayerOptions
	Ball         BallOptions
	ScoreDisplay *ScoreDisplayOptions
}

// Default returns options matching the classic match setup: 600x400
// arena, 5x50 paddles at 200 units/s on w/s and up/down, 15x15 ball
// serving at (30, 15) with a 1.1x speed-up every 1.5 seconds.
func Default() *Options {
	return &Options{
		Game: GameOptions{
			Size:       vmath.Vec2{X: parameter.ArenaWidth, Y: parameter.ArenaHeight},
			Background: "black",
		},
		Player: PlayerOptions{
			LeftColor:  "white",
			RightColor: "white",
			Size:       vmath.Vec2{X: parameter.PaddleWidth, Y: parameter.PaddleHeight},
			LeftKeys:   input.Bindings{Up: input.KeyRune('w'), Down: input.KeyRune('s')},
			RightKeys:  input.Bindings{Up: input.KeyArrowUp, Down: input.KeyArrowDown},
			Speed:      parameter.PaddleSpeed,
		},
		Ball: BallOptions{
			Color:         "white",
			Size:          vmath.Vec2{X: parameter.BallWidth, Y: parameter.BallHeight},
			StartVelocity: FixedServe(parameter.BallStartVelX, parameter.BallStartVelY),
			SpeedupFactor: parameter.SpeedupFactor,
			SpeedupPeriod: parameter.SpeedupPeriod,
		},
		ScoreDisplay: &ScoreDisplayOptions{
			FontSize: parameter.ScoreFontSize,
			Color:    "white",
		},
	}
}

// KeysFor returns the bindings controlling the given side's paddle
func (o *Options) KeysFor(side component.Side) input.Bindings {
	if side == component.SideLeft {
		return o.Player.LeftKeys
	}
	return o.Player.RightKeys
}

// ColorFor returns the configured color name of the given side's paddle
func (o *Options) ColorFor(side component.Side) string {
	if side == component.SideLeft {
		return o.Player.LeftColor
	}
	return o.Player.RightColor
}

// Serve returns a serve velocity from the configured strategy
func (o *Options) Serve() vmath.Vec2 {
	if o.Ball.StartVelocity == nil {
		return vmath.Vec2{X: parameter.BallStartVelX, Y: parameter.BallStartVelY}
	}
	return o.Ball.StartVelocity()
}

// Validate rejects degenerate geometry and timing before a match
// starts. The simulation itself is total over its inputs and does not
// re-check any of this at runtime.
func (o *Options) Validate() error {
	if o.Game.Size.X <= 0 || o.Game.Size.Y <= 0 {
		return fmt.Errorf("arena size must be positive, got %gx%g", o.Game.Size.X, o.Game.Size.Y)
	}
	if o.Player.Size.X <= 0 || o.Player.Size.Y <= 0 {
		return fmt.Errorf("paddle size must be positive, got %gx%g", o.Player.Size.X, o.Player.Size.Y)
	}
	if o.Player.Size.Y >= o.Game.Size.Y {
		return fmt.Errorf("paddle height %g leaves no room in arena height %g", o.Player.Size.Y, o.Game.Size.Y)
	}
	if o.Player.Size.X*2 >= o.Game.Size.X {
		return fmt.Errorf("paddle width %g too large for arena width %g", o.Player.Size.X, o.Game.Size.X)
	}
	if o.Player.Speed <= 0 {
		return fmt.Errorf("paddle speed must be positive, got %g", o.Player.Speed)
	}
	for _, b := range []input.Bindings{o.Player.LeftKeys, o.Player.RightKeys} {
		if b.Up == input.KeyNone || b.Down == input.KeyNone {
			return fmt.Errorf("both paddles need up and down key bindings")
		}
	}
	if o.Ball.Size.X <= 0 || o.Ball.Size.Y <= 0 {
		return fmt.Errorf("ball size must be positive, got %gx%g", o.Ball.Size.X, o.Ball.Size.Y)
	}
	if o.Ball.Size.X >= o.Game.Size.X {
		return fmt.Errorf("ball width %g degenerates scoring in arena width %g", o.Ball.Size.X, o.Game.Size.X)
	}
	if o.Ball.Size.Y >= o.Game.Size.Y {
		return fmt.Errorf("ball height %g does not fit arena height %g", o.Ball.Size.Y, o.Game.Size.Y)
	}
	if o.Ball.SpeedupFactor <= 0 {
		return fmt.Errorf("speedup factor must be positive, got %g", o.Ball.SpeedupFactor)
	}
	if o.Ball.SpeedupPeriod <= 0 {
		return fmt.Errorf("speedup period must be positive, got %g", o.Ball.SpeedupPeriod)
	}
	if o.ScoreDisplay != nil && o.ScoreDisplay.FontSize <= 0 {
		return fmt.Errorf("score font size must be positive, got %g", o.ScoreDisplay.FontSize)
	}
	return nil
}
