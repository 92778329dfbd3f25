package system

import (
	"testing"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestPhysicsIntegrationExact(t *testing.T) {
	// No collisions in reach: position advances by exactly velocity*dt
	tests := []struct {
		name string
		pos  vmath.Vec2
		vel  vmath.Vec2
		dt   float64
	}{
		{"Diagonal", vmath.Vec2{}, vmath.Vec2{X: 30, Y: 15}, 0.5},
		{"Leftward", vmath.Vec2{X: 10, Y: -20}, vmath.Vec2{X: -40, Y: 5}, 0.25},
		{"Zero dt", vmath.Vec2{X: 3, Y: 4}, vmath.Vec2{X: 100, Y: 100}, 0},
		{"Stationary", vmath.Vec2{X: 3, Y: 4}, vmath.Vec2{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(t, NewPhysicsSystem)
			w.Ball = component.Ball{Pos: tt.pos, Vel: tt.vel}
			w.Tick(tt.dt, nil)

			want := tt.pos.Add(tt.vel.Scale(tt.dt))
			if w.Ball.Pos != want {
				t.Errorf("Expected position %+v, got %+v", want, w.Ball.Pos)
			}
			if w.Ball.Vel != tt.vel {
				t.Errorf("Expected velocity unchanged %+v, got %+v", tt.vel, w.Ball.Vel)
			}
		})
	}
}

func TestPhysicsPaddleFaceNegation(t *testing.T) {
	// Left paddle center sits at x=-295 (arena 600, paddle width 5)
	// Each approach angle strikes a different face of the ball; only
	// the matching axis flips
	tests := []struct {
		name    string
		pos     vmath.Vec2 // pre-tick ball position
		vel     vmath.Vec2
		wantVel vmath.Vec2
	}{
		{
			// Moving left into the paddle: paddle strikes ball's left face
			name:    "Left face flips X only",
			pos:     vmath.Vec2{X: -287, Y: 0},
			vel:     vmath.Vec2{X: -40, Y: 4},
			wantVel: vmath.Vec2{X: 40, Y: 4},
		},
		{
			// Falling onto the paddle top from above
			name:    "Bottom face flips Y only",
			pos:     vmath.Vec2{X: -295, Y: 34},
			vel:     vmath.Vec2{X: 4, Y: -20},
			wantVel: vmath.Vec2{X: 4, Y: 20},
		},
		{
			// Rising into the paddle bottom from below
			name:    "Top face flips Y only",
			pos:     vmath.Vec2{X: -295, Y: -34},
			vel:     vmath.Vec2{X: 4, Y: 20},
			wantVel: vmath.Vec2{X: 4, Y: -20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(t, NewPhysicsSystem)
			w.Ball = component.Ball{Pos: tt.pos, Vel: tt.vel}
			w.Tick(0.1, nil)

			if w.Ball.Vel != tt.wantVel {
				t.Errorf("Expected velocity %+v, got %+v", tt.wantVel, w.Ball.Vel)
			}
		})
	}
}

func TestPhysicsWallBounceClampsExactly(t *testing.T) {
	// Arena half-height 200, ball half-height 7.5: the clamped center
	// sits exactly at +/-192.5 with the vertical velocity flipped
	t.Run("Top wall", func(t *testing.T) {
		w := testWorld(t, NewPhysicsSystem)
		w.Ball = component.Ball{Pos: vmath.Vec2{X: 0, Y: 190}, Vel: vmath.Vec2{X: 0, Y: 50}}
		w.Tick(0.1, nil)

		if w.Ball.Pos.Y != 192.5 {
			t.Errorf("Expected ball clamped to y=192.5, got %g", w.Ball.Pos.Y)
		}
		if w.Ball.Vel.Y != -50 {
			t.Errorf("Expected vertical velocity flipped to -50, got %g", w.Ball.Vel.Y)
		}
	})

	t.Run("Bottom wall", func(t *testing.T) {
		w := testWorld(t, NewPhysicsSystem)
		w.Ball = component.Ball{Pos: vmath.Vec2{X: 0, Y: -190}, Vel: vmath.Vec2{X: 0, Y: -50}}
		w.Tick(0.1, nil)

		if w.Ball.Pos.Y != -192.5 {
			t.Errorf("Expected ball clamped to y=-192.5, got %g", w.Ball.Pos.Y)
		}
		if w.Ball.Vel.Y != 50 {
			t.Errorf("Expected vertical velocity flipped to 50, got %g", w.Ball.Vel.Y)
		}
	})

	t.Run("Exact touch counts as contact", func(t *testing.T) {
		// Ball edge landing exactly on the boundary still bounces
		w := testWorld(t, NewPhysicsSystem)
		w.Ball = component.Ball{Pos: vmath.Vec2{X: 0, Y: 182.5}, Vel: vmath.Vec2{X: 0, Y: 100}}
		w.Tick(0.1, nil) // moves to exactly 192.5

		if w.Ball.Pos.Y != 192.5 || w.Ball.Vel.Y != -100 {
			t.Errorf("Expected clamp at 192.5 with flipped velocity, got y=%g vel=%g",
				w.Ball.Pos.Y, w.Ball.Vel.Y)
		}
	})
}
