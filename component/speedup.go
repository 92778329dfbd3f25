package component

import "math"

// SpeedupTimer is a repeating countdown driving periodic ball acceleration
type SpeedupTimer struct {
	Period  float64 // seconds per firing, <= 0 disables the timer
	elapsed float64
}

// NewSpeedupTimer returns a timer that fires every period seconds
func NewSpeedupTimer(period float64) SpeedupTimer {
	return SpeedupTimer{Period: period}
}

// Advance adds dt seconds and reports whether a period boundary was
// crossed. Several boundaries crossed by one oversized dt coalesce into
// a single firing; the remainder carries into the next period.
func (t *SpeedupTimer) Advance(dt float64) bool {
	if t.Period <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.Period {
		return false
	}
	t.elapsed = math.Mod(t.elapsed, t.Period)
	return true
}

// Reset restarts the current period
func (t *SpeedupTimer) Reset() {
	t.elapsed = 0
}
