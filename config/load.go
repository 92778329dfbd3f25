package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

// File schema for the YAML options overlay. Every field is optional;
// absent fields keep their compiled defaults. Pointer scalars
// distinguish "absent" from zero values.
type fileConfig struct {
	Game struct {
		Width      *float64 `yaml:"width"`
		Height     *float64 `yaml:"height"`
		Background *string  `yaml:"background"`
	} `yaml:"game"`
	Player struct {
		Width  *float64       `yaml:"width"`
		Height *float64       `yaml:"height"`
		Speed  *float64       `yaml:"speed"`
		Left   filePlayerSide `yaml:"left"`
		Right  filePlayerSide `yaml:"right"`
	} `yaml:"player"`
	Ball struct {
		Width         *float64 `yaml:"width"`
		Height        *float64 `yaml:"height"`
		Color         *string  `yaml:"color"`
		Serve         *string  `yaml:"serve"` // "fixed" or "random"
		ServeVX       *float64 `yaml:"serve_vx"`
		ServeVY       *float64 `yaml:"serve_vy"`
		SpeedupFactor *float64 `yaml:"speedup_factor"`
		SpeedupPeriod *float64 `yaml:"speedup_period"`
	} `yaml:"ball"`
	ScoreDisplay struct {
		Enabled  *bool    `yaml:"enabled"`
		FontSize *float64 `yaml:"font_size"`
		Color    *string  `yaml:"color"`
	} `yaml:"score_display"`
}

type filePlayerSide struct {
	Color *string `yaml:"color"`
	Up    *string `yaml:"up"`
	Down  *string `yaml:"down"`
}

// Load reads a YAML options file and overlays it onto the defaults
// The result is validated before it is returned
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse overlays YAML data onto the defaults and validates the result
func Parse(data []byte) (*Options, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	o := Default()

	setF(&o.Game.Size.X, fc.Game.Width)
	setF(&o.Game.Size.Y, fc.Game.Height)
	setS(&o.Game.Background, fc.Game.Background)

	setF(&o.Player.Size.X, fc.Player.Width)
	setF(&o.Player.Size.Y, fc.Player.Height)
	setF(&o.Player.Speed, fc.Player.Speed)
	setS(&o.Player.LeftColor, fc.Player.Left.Color)
	setS(&o.Player.RightColor, fc.Player.Right.Color)
	if err := setKey(&o.Player.LeftKeys.Up, fc.Player.Left.Up); err != nil {
		return nil, fmt.Errorf("player.left.up: %w", err)
	}
	if err := setKey(&o.Player.LeftKeys.Down, fc.Player.Left.Down); err != nil {
		return nil, fmt.Errorf("player.left.down: %w", err)
	}
	if err := setKey(&o.Player.RightKeys.Up, fc.Player.Right.Up); err != nil {
		return nil, fmt.Errorf("player.right.up: %w", err)
	}
	if err := setKey(&o.Player.RightKeys.Down, fc.Player.Right.Down); err != nil {
		return nil, fmt.Errorf("player.right.down: %w", err)
	}

	setF(&o.Ball.Size.X, fc.Ball.Width)
	setF(&o.Ball.Size.Y, fc.Ball.Height)
	setS(&o.Ball.Color, fc.Ball.Color)
	setF(&o.Ball.SpeedupFactor, fc.Ball.SpeedupFactor)
	setF(&o.Ball.SpeedupPeriod, fc.Ball.SpeedupPeriod)

	vx, vy := parameter.BallStartVelX, parameter.BallStartVelY
	setF(&vx, fc.Ball.ServeVX)
	setF(&vy, fc.Ball.ServeVY)
	if fc.Ball.Serve != nil {
		switch *fc.Ball.Serve {
		case "fixed":
			o.Ball.StartVelocity = FixedServe(vx, vy)
		case "random":
			o.Ball.StartVelocity = RandomServe(vx, vy, nil)
		default:
			return nil, fmt.Errorf("ball.serve: unknown strategy %q", *fc.Ball.Serve)
		}
	} else if fc.Ball.ServeVX != nil || fc.Ball.ServeVY != nil {
		o.Ball.StartVelocity = FixedServe(vx, vy)
	}

	if fc.ScoreDisplay.Enabled != nil && !*fc.ScoreDisplay.Enabled {
		o.ScoreDisplay = nil
	} else if o.ScoreDisplay != nil {
		setF(&o.ScoreDisplay.FontSize, fc.ScoreDisplay.FontSize)
		setS(&o.ScoreDisplay.Color, fc.ScoreDisplay.Color)
	}

	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return o, nil
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setS(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setKey(dst *input.Key, src *string) error {
	if src == nil {
		return nil
	}
	k, err := input.ParseKey(*src)
	if err != nil {
		return err
	}
	*dst = k
	return nil
}
