package config

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestDefaultOptionsValid(t *testing.T) {
	opts := Default()
	if err := opts.Validate(); err != nil {
		t.Fatalf("Expected default options to validate, got %v", err)
	}

	if opts.Game.Size != (vmath.Vec2{X: 600, Y: 400}) {
		t.Errorf("Expected 600x400 arena, got %+v", opts.Game.Size)
	}
	if opts.Serve() != (vmath.Vec2{X: 30, Y: 15}) {
		t.Errorf("Expected default serve (30, 15), got %+v", opts.Serve())
	}
	if opts.ScoreDisplay == nil {
		t.Error("Expected score display enabled by default")
	}
}

func TestValidateRejectsDegenerateOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"Zero arena width", func(o *Options) { o.Game.Size.X = 0 }},
		{"Negative arena height", func(o *Options) { o.Game.Size.Y = -1 }},
		{"Paddle taller than arena", func(o *Options) { o.Player.Size.Y = 400 }},
		{"Paddles wider than arena", func(o *Options) { o.Player.Size.X = 300 }},
		{"Zero paddle speed", func(o *Options) { o.Player.Speed = 0 }},
		{"Missing key binding", func(o *Options) { o.Player.LeftKeys.Up = input.KeyNone }},
		{"Ball wider than arena", func(o *Options) { o.Ball.Size.X = 600 }},
		{"Ball taller than arena", func(o *Options) { o.Ball.Size.Y = 400 }},
		{"Zero speedup factor", func(o *Options) { o.Ball.SpeedupFactor = 0 }},
		{"Zero speedup period", func(o *Options) { o.Ball.SpeedupPeriod = 0 }},
		{"Zero font size", func(o *Options) { o.ScoreDisplay.FontSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			tt.mutate(opts)
			if err := opts.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestAccessorsBySide(t *testing.T) {
	opts := Default()
	opts.Player.LeftColor = "red"
	opts.Player.RightColor = "blue"

	if got := opts.ColorFor(component.SideLeft); got != "red" {
		t.Errorf("Expected left color red, got %q", got)
	}
	if got := opts.ColorFor(component.SideRight); got != "blue" {
		t.Errorf("Expected right color blue, got %q", got)
	}

	left := opts.KeysFor(component.SideLeft)
	if left.Up != input.KeyRune('w') || left.Down != input.KeyRune('s') {
		t.Errorf("Expected left keys w/s, got %v/%v", left.Up, left.Down)
	}
	right := opts.KeysFor(component.SideRight)
	if right.Up != input.KeyArrowUp || right.Down != input.KeyArrowDown {
		t.Errorf("Expected right keys up/down, got %v/%v", right.Up, right.Down)
	}
}

func TestServeStrategies(t *testing.T) {
	fixed := FixedServe(30, 15)
	for i := 0; i < 3; i++ {
		if v := fixed(); v != (vmath.Vec2{X: 30, Y: 15}) {
			t.Fatalf("Expected fixed serve (30, 15), got %+v", v)
		}
	}

	random := RandomServe(30, 15, rand.New(rand.NewSource(1)))
	for i := 0; i < 50; i++ {
		v := random()
		if v.X != 30 && v.X != -30 {
			t.Fatalf("Expected |vx| = 30, got %g", v.X)
		}
		if v.Y != 15 && v.Y != -15 {
			t.Fatalf("Expected |vy| = 15, got %g", v.Y)
		}
	}
}

func TestServeFallbackWithoutStrategy(t *testing.T) {
	opts := Default()
	opts.Ball.StartVelocity = nil
	if v := opts.Serve(); v != (vmath.Vec2{X: 30, Y: 15}) {
		t.Errorf("Expected fallback serve (30, 15), got %+v", v)
	}
}
