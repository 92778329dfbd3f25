package system

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/event"
)

// Scoreboard is the score notification sink for the presentation
// layer. It mirrors score totals from consumed events; it never reads
// or writes simulation state, so a stale tick can at worst redraw the
// previous totals.
type Scoreboard struct {
	left  int
	right int
}

// NewScoreboard creates an empty 0:0 scoreboard
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// Notify consumes this tick's score events in emission order
func (b *Scoreboard) Notify(events []event.ScoreEvent) {
	for _, ev := range events {
		switch ev.Side {
		case component.SideLeft:
			b.left = ev.Score
		case component.SideRight:
			b.right = ev.Score
		}
	}
}

// Line returns the score display text, left player first
func (b *Scoreboard) Line() string {
	return fmt.Sprintf("%d:%d", b.left, b.right)
}

// Scores returns the mirrored totals, left player first
func (b *Scoreboard) Scores() (left, right int) {
	return b.left, b.right
}

var _ event.Sink = (*Scoreboard)(nil)
