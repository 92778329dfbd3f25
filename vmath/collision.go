package vmath

// Face identifies which face of the second box an AABB test reports
type Face uint8

const (
	FaceLeft Face = iota
	FaceRight
	FaceTop
	FaceBottom
)

// String returns the face name for logging and test output
func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	}
	return "unknown"
}

// Horizontal reports whether the face lies on the X axis (left or right)
func (f Face) Horizontal() bool {
	return f == FaceLeft || f == FaceRight
}

// Collide performs an AABB overlap test between box A (aPos, aSize) and
// box B (bPos, bSize), both given as center position plus full size.
// On overlap it returns the face of B struck by A, classified by the
// minimum-penetration axis; equal penetration resolves to the vertical
// faces. Touching edges without overlap return ok=false.
func Collide(aPos, aSize, bPos, bSize Vec2) (Face, bool) {
	ah := aSize.Half()
	bh := bSize.Half()

	aMin := aPos.Sub(ah)
	aMax := aPos.Add(ah)
	bMin := bPos.Sub(bh)
	bMax := bPos.Add(bh)

	if aMin.X >= bMax.X || aMax.X <= bMin.X || aMin.Y >= bMax.Y || aMax.Y <= bMin.Y {
		return 0, false
	}

	// Penetration depth per axis: width of the overlap region
	px := min(aMax.X, bMax.X) - max(aMin.X, bMin.X)
	py := min(aMax.Y, bMax.Y) - max(aMin.Y, bMin.Y)

	if px < py {
		if aPos.X < bPos.X {
			return FaceLeft, true
		}
		return FaceRight, true
	}
	if aPos.Y < bPos.Y {
		return FaceBottom, true
	}
	return FaceTop, true
}
