package parameter

// System Execution Priorities (lower runs first)
// Input and Speedup are order-independent; Physics must observe paddle
// positions written this tick, Scoring must observe the post-move ball,
// and the Scoreboard consumes events produced by Scoring.
const (
	PriorityInput      = 10
	PrioritySpeedup    = 20
	PriorityPhysics    = 30
	PriorityScoring    = 40
	PriorityScoreboard = 50
)
