package theme

import (
	"image/color"

	"git.lost.host/meutraa/omfp/internal/game"
)

type DefaultTheme struct{}

func (t *DefaultTheme) KindColor(kind game.Kind) color.RGBA {
	col, ok := kindColors[kind]
	if !ok {
		return white
	}
	return col
}

func (t *DefaultTheme) DensityColor(count, max int) color.RGBA {
	if max <= 0 || count <= 0 {
		return densityColors[0]
	}
	i := count * (len(densityColors) - 1) / max
	if i >= len(densityColors) {
		i = len(densityColors) - 1
	}
	return densityColors[i]
}

func (t *DefaultTheme) BarSymbol() string {
	return barSym
}

const (
	barSym = "█"
)

var (
	white      = color.RGBA{255, 255, 255, 255}
	kindColors = map[game.Kind]color.RGBA{
		game.Point:   {0, 118, 236, 255}, // blue
		game.Sustain: {236, 195, 0, 255}, // yellow
	}
	// Quiet to dense
	densityColors = [...]color.RGBA{
		{106, 106, 106, 255}, // grey
		{0, 236, 128, 255},   // green
		{236, 195, 0, 255},   // yellow
		{236, 128, 0, 255},   // orange
		{236, 30, 0, 255},    // red
	}
)
