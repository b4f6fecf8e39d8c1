package config

import "fmt"

// DifficultyPreset represents a predefined difficulty setting.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = ""       // Config as loaded
	DifficultyEasy   DifficultyPreset = "easy"   // Slower ball, wider paddle
	DifficultyNormal DifficultyPreset = "normal" // Config as loaded
	DifficultyHard   DifficultyPreset = "hard"   // Faster ball, narrower paddle
)

// Preset tuning.
const (
	easySpeedFactor  = 0.8
	hardSpeedFactor  = 1.3
	paddleWidthDelta = 20.0
	minPaddleWidth   = 40.0
)

// ParseDifficulty converts a CLI value to a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyNone, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNone, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// The serve velocity is scaled as a whole so its direction is kept.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.DX *= easySpeedFactor
		cfg.Ball.DY *= easySpeedFactor
		cfg.Paddle.Width = min(cfg.Paddle.Width+paddleWidthDelta, cfg.Surface.Width)
	case DifficultyHard:
		cfg.Ball.DX *= hardSpeedFactor
		cfg.Ball.DY *= hardSpeedFactor
		cfg.Paddle.Width = max(cfg.Paddle.Width-paddleWidthDelta, minPaddleWidth)
	}
}
