package render

import (
	"image/color"
	"io"
)

type Renderer interface {
	Init(w io.Writer)
	Width() int
	Fill(message string)
	FillColor(c color.RGBA, message string)
	Bar(label string, value, max int, c color.RGBA, symbol string)
	Flush() error
}
