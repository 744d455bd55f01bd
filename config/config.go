// Package config loads round settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/gravity"
	"github.com/plus3/blockfall/internal/log"
	"github.com/plus3/blockfall/piece"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

const (
	ModeCountdown = "countdown"
	ModeManual    = "manual"
)

type Config struct {
	Gravity  Gravity  `yaml:"gravity"`
	Spawn    Spawn    `yaml:"spawn"`
	Rotation Rotation `yaml:"rotation"`
	Log      Log      `yaml:"log"`
	Window   Window   `yaml:"window"`
}

type Gravity struct {
	Mode           string        `yaml:"mode"`
	InitialPeriod  time.Duration `yaml:"initialPeriod"`
	MinPeriod      time.Duration `yaml:"minPeriod"`
	Speedup        float64       `yaml:"speedup"`
	ManualSpeed    float64       `yaml:"manualSpeed"`
	ManualStep     float64       `yaml:"manualStep"`
	ManualMinSpeed float64       `yaml:"manualMinSpeed"`
}

type Spawn struct {
	Column int      `yaml:"column"`
	Shapes []string `yaml:"shapes"`
	Seed   uint64   `yaml:"seed"`
}

type Rotation struct {
	Policy string `yaml:"policy"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// Default returns the embedded defaults.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads a YAML file and overlays it on the defaults.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// Parse overlays YAML data on the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	switch c.Gravity.Mode {
	case ModeCountdown:
		if c.Gravity.InitialPeriod <= 0 {
			errs = append(errs, fmt.Errorf("gravity.initialPeriod must be > 0, got %s", c.Gravity.InitialPeriod))
		}
		if c.Gravity.MinPeriod < 0 {
			errs = append(errs, fmt.Errorf("gravity.minPeriod must be >= 0, got %s", c.Gravity.MinPeriod))
		}
		if c.Gravity.Speedup < 0 || c.Gravity.Speedup >= 1 {
			errs = append(errs, fmt.Errorf("gravity.speedup must be in [0, 1), got %v", c.Gravity.Speedup))
		}
	case ModeManual:
		if c.Gravity.ManualMinSpeed <= 0 {
			errs = append(errs, fmt.Errorf("gravity.manualMinSpeed must be > 0, got %v", c.Gravity.ManualMinSpeed))
		}
		if c.Gravity.ManualSpeed < c.Gravity.ManualMinSpeed {
			errs = append(errs, fmt.Errorf("gravity.manualSpeed must be >= manualMinSpeed, got %v", c.Gravity.ManualSpeed))
		}
		if c.Gravity.ManualStep <= 0 {
			errs = append(errs, fmt.Errorf("gravity.manualStep must be > 0, got %v", c.Gravity.ManualStep))
		}
	default:
		errs = append(errs, fmt.Errorf("gravity.mode must be %q or %q, got %q", ModeCountdown, ModeManual, c.Gravity.Mode))
	}

	columnOK := c.Spawn.Column >= 0 && c.Spawn.Column < board.Columns
	if !columnOK {
		errs = append(errs, fmt.Errorf("spawn.column must be in [0, %d), got %d", board.Columns, c.Spawn.Column))
	}
	if _, err := c.ShapeSet(); err != nil {
		errs = append(errs, err)
	} else if columnOK {
		if err := c.checkSpawnFits(); err != nil {
			errs = append(errs, err)
		}
	}

	if _, err := piece.ParseRotationPolicy(c.Rotation.Policy); err != nil {
		errs = append(errs, fmt.Errorf("rotation.policy: %w", err))
	}

	if _, ok := log.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be > 0, got %d", c.Window.TPS))
	}

	return errors.Join(errs...)
}

// checkSpawnFits rejects a spawn column that would put a shape past the
// right wall.
func (c *Config) checkSpawnFits() error {
	shapes, _ := c.ShapeSet()
	for _, shape := range shapes {
		for _, b := range piece.New(shape, c.Spawn.Column).Blocks() {
			if b.Column() >= board.Columns {
				return fmt.Errorf("spawn.column %d puts shape %v past the right wall", c.Spawn.Column, shape)
			}
		}
	}
	return nil
}

// ShapeSet resolves the configured shape names.
func (c *Config) ShapeSet() ([]piece.Shape, error) {
	if len(c.Spawn.Shapes) == 0 {
		return nil, errors.New("spawn.shapes cannot be empty")
	}
	shapes := make([]piece.Shape, 0, len(c.Spawn.Shapes))
	for _, name := range c.Spawn.Shapes {
		shape, err := piece.ParseShape(name)
		if err != nil {
			return nil, fmt.Errorf("spawn.shapes: %w", err)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

// RotationPolicy returns the configured rotation policy.
func (c *Config) RotationPolicy() piece.RotationPolicy {
	policy, err := piece.ParseRotationPolicy(c.Rotation.Policy)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return policy
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}

// Clock builds the configured gravity clock.
func (c *Config) Clock() gravity.Clock {
	if c.Gravity.Mode == ModeManual {
		return gravity.NewManual(c.Gravity.ManualSpeed, c.Gravity.ManualStep, c.Gravity.ManualMinSpeed)
	}
	return gravity.NewCountdown(c.Gravity.InitialPeriod, c.Gravity.MinPeriod, c.Gravity.Speedup)
}

// TickPeriod is the frame period for frontends that drive their own loop.
func (c *Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.Window.TPS)
}
