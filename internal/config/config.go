// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import "github.com/vovakirdan/tui-breakout/internal/core"

// BreakoutConfig contains all configuration for the Breakout game.
// Distances are logical surface pixels; velocities are pixels per frame.
type BreakoutConfig struct {
	Surface  BreakoutSurface  `yaml:"surface"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Blocks   BreakoutBlocks   `yaml:"blocks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
	Banner   BreakoutBanner   `yaml:"banner"`
}

// BreakoutSurface defines the logical drawing surface.
type BreakoutSurface struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPaddle defines paddle geometry and movement.
type BreakoutPaddle struct {
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	BottomOffset float64    `yaml:"bottom_offset"` // Distance from the bottom edge to the paddle's top
	Step         float64    `yaml:"step"`          // Horizontal move per frame while a key is held
	Radius       float64    `yaml:"radius"`        // Corner radius
	Color        core.Color `yaml:"color"`
}

// BreakoutBall defines the ball and its serve.
type BreakoutBall struct {
	Radius      float64    `yaml:"radius"`
	StartOffset float64    `yaml:"start_offset"` // Distance from the bottom edge at serve
	DX          float64    `yaml:"dx"`
	DY          float64    `yaml:"dy"`
	Color       core.Color `yaml:"color"`
}

// BreakoutBlocks defines the block grid.
type BreakoutBlocks struct {
	Rows       int          `yaml:"rows"`
	Cols       int          `yaml:"cols"`
	Width      float64      `yaml:"width"`
	Height     float64      `yaml:"height"`
	Padding    float64      `yaml:"padding"`
	OffsetTop  float64      `yaml:"offset_top"`
	OffsetLeft float64      `yaml:"offset_left"`
	Radius     float64      `yaml:"radius"`
	Points     int          `yaml:"points"` // Score per destroyed block
	Colors     []core.Color `yaml:"colors"` // Row bands, cycled when rows exceed the palette
}

// BreakoutGameplay defines rules.
type BreakoutGameplay struct {
	Lives          int     `yaml:"lives"`
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // Degrees off vertical at the paddle edge
}

// BreakoutBanner defines the end-of-game text.
type BreakoutBanner struct {
	TitleSize    float64    `yaml:"title_size"`
	SubtitleSize float64    `yaml:"subtitle_size"`
	LineGap      float64    `yaml:"line_gap"` // Baseline distance from title to subtitle
	Lost         BannerText `yaml:"lost"`
	Won          BannerText `yaml:"won"`
}

// BannerText is one terminal banner.
type BannerText struct {
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Color    core.Color `yaml:"color"`
}

// MaxScore returns the score reached when every block is destroyed.
func (c BreakoutConfig) MaxScore() int {
	return c.Blocks.Rows * c.Blocks.Cols * c.Blocks.Points
}

// RowColor returns the color band for a block row.
func (c BreakoutConfig) RowColor(row int) core.Color {
	if len(c.Blocks.Colors) == 0 {
		return core.ColorDefault
	}
	return c.Blocks.Colors[row%len(c.Blocks.Colors)]
}
