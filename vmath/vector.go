package vmath

// Vec2 is a 2D vector in arena units (float64, y-up, origin at arena center)
type Vec2 struct {
	X, Y float64
}

// Add returns v + w componentwise
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w componentwise
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v multiplied by scalar s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Half returns v scaled by 0.5, the half-extent of a size vector
func (v Vec2) Half() Vec2 {
	return Vec2{v.X * 0.5, v.Y * 0.5}
}
