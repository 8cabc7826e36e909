package theme

import (
	"image/color"

	"git.lost.host/meutraa/omfp/internal/game"
)

type Theme interface {
	KindColor(kind game.Kind) color.RGBA
	// Colour of a density bar holding count objects out of the busiest max
	DensityColor(count, max int) color.RGBA
	BarSymbol() string
}
