package parser

import (
	"io"

	"git.lost.host/meutraa/omfp/internal/game"
)

type Parser interface {
	ParseFile(file string) error
	ParseReader(r io.Reader) error
	ParseContent(content []byte)
	Reset()

	Mode() uint8
	HitObjects() []game.HitObject
}
