package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
// The result is validated and has its colors normalized.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return finish(cfg, userCfgPath)
			}
			cfg = DefaultBreakoutConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return finish(cfg, "configs/breakout.yaml")
		}
		cfg = DefaultBreakoutConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return finish(DefaultBreakoutConfig(), "defaults") // Fallback to hardcoded if embed fails
	}
	return finish(cfg, "defaults")
}

func finish(cfg BreakoutConfig, source string) (BreakoutConfig, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// Validate checks that the configuration describes a playable game and
// normalizes every color to lowercase "#rrggbb".
func (c *BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("surface.width", c.Surface.Width)
	positive("surface.height", c.Surface.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.step", c.Paddle.Step)
	positive("ball.radius", c.Ball.Radius)
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)

	if c.Paddle.Width > c.Surface.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v exceeds surface.width %v", c.Paddle.Width, c.Surface.Width))
	}
	if c.Ball.DX == 0 && c.Ball.DY == 0 {
		errs = append(errs, errors.New("ball velocity must be non-zero"))
	}
	if c.Blocks.Rows <= 0 || c.Blocks.Cols <= 0 {
		errs = append(errs, fmt.Errorf("blocks grid must be at least 1x1, got %dx%d", c.Blocks.Rows, c.Blocks.Cols))
	}
	if c.Blocks.Rows > 0 {
		gridBottom := c.Blocks.OffsetTop + float64(c.Blocks.Rows)*(c.Blocks.Height+c.Blocks.Padding) - c.Blocks.Padding
		paddleTop := c.Surface.Height - c.Paddle.BottomOffset
		if gridBottom >= paddleTop {
			errs = append(errs, fmt.Errorf("blocks grid bottom %v reaches the paddle row at %v", gridBottom, paddleTop))
		}
	}
	if c.Blocks.Points <= 0 {
		errs = append(errs, fmt.Errorf("blocks.points must be positive, got %d", c.Blocks.Points))
	}
	if len(c.Blocks.Colors) == 0 {
		errs = append(errs, errors.New("blocks.colors must list at least one color"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.MaxBounceAngle <= 0 || c.Gameplay.MaxBounceAngle >= 90 {
		errs = append(errs, fmt.Errorf("gameplay.max_bounce_angle must be in (0, 90), got %v", c.Gameplay.MaxBounceAngle))
	}

	normalize := func(name string, col *core.Color) {
		if col.IsDefault() {
			return
		}
		parsed, err := core.ParseColor(string(*col))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		*col = parsed
	}

	normalize("paddle.color", &c.Paddle.Color)
	normalize("ball.color", &c.Ball.Color)
	normalize("banner.lost.color", &c.Banner.Lost.Color)
	normalize("banner.won.color", &c.Banner.Won.Color)
	for i := range c.Blocks.Colors {
		normalize(fmt.Sprintf("blocks.colors[%d]", i), &c.Blocks.Colors[i])
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c BreakoutConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
