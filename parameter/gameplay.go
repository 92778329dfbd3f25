package parameter

// Arena defaults
const (
	ArenaWidth  = 600.0
	ArenaHeight = 400.0
)

// Paddle defaults
const (
	PaddleWidth  = 5.0
	PaddleHeight = 50.0

	// PaddleSpeed is vertical travel in arena units per second while a key is held
	PaddleSpeed = 200.0
)

// Ball defaults
const (
	BallWidth  = 15.0
	BallHeight = 15.0

	BallStartVelX = 30.0
	BallStartVelY = 15.0

	// SpeedupFactor scales both velocity components on every timer firing
	SpeedupFactor = 1.1
	// SpeedupPeriod is the firing interval in seconds
	SpeedupPeriod = 1.5
)

// Score display defaults
const (
	ScoreFontSize = 20.0
)
