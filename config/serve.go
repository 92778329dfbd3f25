package config

import (
	"math/rand"

	"github.com/lixenwraith/vi-pong/vmath"
)

// FixedServe returns a strategy serving the same velocity every point
func FixedServe(vx, vy float64) func() vmath.Vec2 {
	return func() vmath.Vec2 {
		return vmath.Vec2{X: vx, Y: vy}
	}
}

// RandomServe returns a strategy with fixed component magnitudes and
// random signs, so the ball opens toward either player at either slope.
// A nil rng uses the shared package source.
func RandomServe(vx, vy float64, rng *rand.Rand) func() vmath.Vec2 {
	coin := rand.Intn
	if rng != nil {
		coin = rng.Intn
	}
	return func() vmath.Vec2 {
		v := vmath.Vec2{X: vx, Y: vy}
		if coin(2) == 0 {
			v.X = -v.X
		}
		if coin(2) == 0 {
			v.Y = -v.Y
		}
		return v
	}
}
