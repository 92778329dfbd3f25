package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/system"
	"github.com/lixenwraith/vi-pong/vmath"
)

const (
	paddleRune = '█'
	ballRune   = '●'
	netRune    = '┆'
)

// Renderer draws the match state onto a tcell screen. It is a pure
// observer: it reads paddle/ball positions and the scoreboard mirror,
// it never writes simulation state back.
type Renderer struct {
	screen tcell.Screen
	opts   *config.Options
	board  *system.Scoreboard // nil when the score display is disabled

	background tcell.Style
	ballStyle  tcell.Style
	scoreStyle tcell.Style
	paddles    [2]tcell.Style
}

// NewRenderer creates a renderer bound to a screen and match options
// A nil board disables the score line
func NewRenderer(screen tcell.Screen, opts *config.Options, board *system.Scoreboard) *Renderer {
	bg := tcell.GetColor(opts.Game.Background)
	base := tcell.StyleDefault.Background(bg)

	r := &Renderer{
		screen:     screen,
		opts:       opts,
		board:      board,
		background: base,
		ballStyle:  base.Foreground(tcell.GetColor(opts.Ball.Color)),
	}
	r.paddles[component.SideLeft] = base.Foreground(tcell.GetColor(opts.ColorFor(component.SideLeft)))
	r.paddles[component.SideRight] = base.Foreground(tcell.GetColor(opts.ColorFor(component.SideRight)))

	r.scoreStyle = base
	if opts.ScoreDisplay != nil {
		r.scoreStyle = base.Foreground(tcell.GetColor(opts.ScoreDisplay.Color))
	}
	return r
}

// Frame renders one full frame and flushes it to the terminal
func (r *Renderer) Frame(w *engine.World) {
	r.screen.Fill(' ', r.background)

	cols, rows := r.screen.Size()
	if cols < 4 || rows < 4 {
		r.screen.Show()
		return
	}

	// Arena units → cells, axes scaled independently to fill the screen
	sx := float64(cols) / r.opts.Game.Size.X
	sy := float64(rows) / r.opts.Game.Size.Y

	r.drawNet(cols, rows)

	for i := range w.Paddles {
		r.drawPaddle(&w.Paddles[i], cols, rows, sx, sy)
	}

	bx, by := r.cell(w.Ball.Pos, cols, rows, sx, sy)
	r.screen.SetContent(bx, by, ballRune, nil, r.ballStyle)

	if r.board != nil {
		r.drawScore(cols)
	}

	r.screen.Show()
}

// cell maps an arena position (center origin, y-up) to screen cells
func (r *Renderer) cell(pos vmath.Vec2, cols, rows int, sx, sy float64) (int, int) {
	x := cols/2 + int(pos.X*sx)
	y := rows/2 - int(pos.Y*sy)
	return x, y
}

func (r *Renderer) drawNet(cols, rows int) {
	for y := 0; y < rows; y += 2 {
		r.screen.SetContent(cols/2, y, netRune, nil, r.background.Foreground(tcell.ColorGray))
	}
}

func (r *Renderer) drawPaddle(paddle *component.Paddle, cols, rows int, sx, sy float64) {
	x, cy := r.cell(paddle.Pos, cols, rows, sx, sy)

	half := int(r.opts.Player.Size.Y / 2 * sy)
	if half < 1 {
		half = 1
	}
	style := r.paddles[paddle.Side]
	for y := cy - half; y <= cy+half; y++ {
		if y >= 0 && y < rows {
			r.screen.SetContent(x, y, paddleRune, nil, style)
		}
	}
}

func (r *Renderer) drawScore(cols int) {
	line := r.board.Line()
	x := cols/2 - len(line)/2
	for i, ch := range line {
		r.screen.SetContent(x+i, 0, ch, nil, r.scoreStyle)
	}
}
