package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Surface: BreakoutSurface{
			Width:  800,
			Height: 600,
		},
		Paddle: BreakoutPaddle{
			Width:        100,
			Height:       15,
			BottomOffset: 30,
			Step:         8,
			Radius:       7,
			Color:        core.ColorGold,
		},
		Ball: BreakoutBall{
			Radius:      8,
			StartOffset: 50,
			DX:          5,
			DY:          -5,
			Color:       core.ColorWhite,
		},
		Blocks: BreakoutBlocks{
			Rows:       5,
			Cols:       8,
			Width:      80,
			Height:     25,
			Padding:    10,
			OffsetTop:  50,
			OffsetLeft: 65,
			Radius:     5,
			Points:     10,
			Colors: []core.Color{
				core.ColorCoral,
				core.ColorTeal,
				core.ColorSky,
				core.ColorSage,
				core.ColorCream,
			},
		},
		Gameplay: BreakoutGameplay{
			Lives:          3,
			MaxBounceAngle: 60,
		},
		Banner: BreakoutBanner{
			TitleSize:    48,
			SubtitleSize: 24,
			LineGap:      50,
			Lost: BannerText{
				Title:    "GAME OVER",
				Subtitle: "Press R to Restart",
				Color:    core.ColorCoral,
			},
			Won: BannerText{
				Title:    "YOU WIN!",
				Subtitle: "Press R to Play Again",
				Color:    core.ColorTeal,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
