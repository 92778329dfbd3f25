package event

import "github.com/lixenwraith/vi-pong/component"

// ScoreEvent records one point scored during the current tick
// Score is the scorer's total after the increment
type ScoreEvent struct {
	Side  component.Side
	Score int
}
