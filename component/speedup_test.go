package component

import "testing"

func TestSpeedupTimerAdvance(t *testing.T) {
	tests := []struct {
		name   string
		period float64
		steps  []float64
		fired  []bool
	}{
		{
			name:   "Fires on period boundary",
			period: 1.5,
			steps:  []float64{1.0, 0.5, 1.0},
			fired:  []bool{false, true, false},
		},
		{
			name:   "Oversized dt coalesces to one firing",
			period: 1.5,
			steps:  []float64{15.0},
			fired:  []bool{true},
		},
		{
			name:   "Remainder carries into next period",
			period: 1.0,
			steps:  []float64{1.6, 0.3, 0.1},
			fired:  []bool{true, false, true},
		},
		{
			name:   "Zero dt never fires",
			period: 1.0,
			steps:  []float64{0, 0, 0},
			fired:  []bool{false, false, false},
		},
		{
			name:   "Disabled timer never fires",
			period: 0,
			steps:  []float64{10, 10},
			fired:  []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewSpeedupTimer(tt.period)
			for i, dt := range tt.steps {
				got := timer.Advance(dt)
				if got != tt.fired[i] {
					t.Errorf("Step %d (dt=%g): expected fired=%v, got %v", i, dt, tt.fired[i], got)
				}
			}
		})
	}
}

func TestSpeedupTimerSingleFiringPerTick(t *testing.T) {
	// Ten periods elapsed in one tick still count as one firing
	timer := NewSpeedupTimer(1.5)
	firings := 0
	if timer.Advance(15.0) {
		firings++
	}
	if firings != 1 {
		t.Errorf("Expected exactly one firing for dt=10x period, got %d", firings)
	}
	// The coalesced firing does not bank extra ones
	if timer.Advance(0.1) {
		t.Error("Expected no firing right after a coalesced one")
	}
}

func TestSpeedupTimerReset(t *testing.T) {
	timer := NewSpeedupTimer(1.0)
	timer.Advance(0.9)
	timer.Reset()
	if timer.Advance(0.9) {
		t.Error("Expected no firing 0.9s after reset")
	}
	if !timer.Advance(0.1) {
		t.Error("Expected firing once the full period elapsed after reset")
	}
}
