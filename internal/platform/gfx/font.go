package gfx

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts caches Go Regular faces by pixel size.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFonts parses the embedded Go Regular font.
func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gfx: load font: %w", err)
	}
	return &Fonts{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face returns the face for a pixel size.
func (f *Fonts) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    f.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	f.faces[size] = face
	return face
}
