package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/system"
)

const frameRate = 60

func main() {
	configPath := flag.String("config", "", "path to YAML options file")
	logPath := flag.String("log", "", "write structured logs to this file (disabled when empty)")
	randomServe := flag.Bool("random-serve", false, "serve with random direction instead of the fixed default")
	flag.Parse()

	logger, err := buildLogger(*logPath)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	opts, err := loadOptions(*configPath, *randomServe)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(opts, logger); err != nil {
		log.Fatalf("vi-pong: %v", err)
	}
}

// buildLogger returns a file-backed zap logger, or a nop logger when no
// path is given. Stderr is unusable while tcell owns the terminal.
func buildLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func loadOptions(path string, randomServe bool) (*config.Options, error) {
	opts := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}
	if randomServe {
		opts.Ball.StartVelocity = config.RandomServe(parameter.BallStartVelX, parameter.BallStartVelY, nil)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(opts *config.Options, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	world := engine.NewWorld(opts)
	world.AddSystem(system.NewInputSystem(world))
	world.AddSystem(system.NewSpeedupSystem(world))
	world.AddSystem(system.NewPhysicsSystem(world))
	world.AddSystem(system.NewScoringSystem(world))

	var sinks []event.Sink
	var board *system.Scoreboard
	if opts.ScoreDisplay != nil {
		board = system.NewScoreboard()
		sinks = append(sinks, board)
	}
	sinks = append(sinks, &scoreLogger{logger: logger})

	renderer := render.NewRenderer(screen, opts, board)
	keys := input.NewState(input.DefaultHold)

	logger.Info("match started",
		zap.Float64("arena_w", opts.Game.Size.X),
		zap.Float64("arena_h", opts.Game.Size.Y),
	)

	// Terminal events arrive on their own goroutine; the frame loop
	// below is the only writer of simulation state
	termEvents := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(termEvents)
				return
			}
			termEvents <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-termEvents:
			if !ok {
				return nil
			}
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC {
					logger.Info("match ended", zap.Int64("frames", world.Time.FrameNumber))
					return nil
				}
				if k := decodeKey(tev); k != input.KeyNone {
					keys.Press(k, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			scored := world.Tick(dt, keys.Predicate(now))
			if len(scored) > 0 {
				for _, sink := range sinks {
					sink.Notify(scored)
				}
			}
			renderer.Frame(world)
		}
	}
}

// decodeKey maps a terminal key event to the abstract key space
func decodeKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyArrowUp
	case tcell.KeyDown:
		return input.KeyArrowDown
	case tcell.KeyLeft:
		return input.KeyArrowLeft
	case tcell.KeyRight:
		return input.KeyArrowRight
	case tcell.KeyRune:
		return input.KeyRune(ev.Rune())
	}
	return input.KeyNone
}

// scoreLogger logs every point as it is scored
type scoreLogger struct {
	logger *zap.Logger
}

func (l *scoreLogger) Notify(events []event.ScoreEvent) {
	for _, ev := range events {
		l.logger.Info("point scored",
			zap.String("side", ev.Side.String()),
			zap.Int("score", ev.Score),
		)
	}
}

var _ event.Sink = (*scoreLogger)(nil)
