package parser

import (
	"bytes"
	"io"
	"io/ioutil"

	"git.lost.host/meutraa/omfp/internal/game"
	"github.com/pkg/errors"
)

// Most hit objects reserved up front, enough for nearly every beatmap
const maxReserve = 50000

// Shortest plausible hit object line, used to size the reservation
const minLineLength = 16

var (
	hitObjectsHeader = []byte("[HitObjects]")
	modeKey          = []byte("Mode:")
)

// DefaultParser decodes the mode and hit objects of .osu beatmaps.
// A zero DefaultParser is ready to use. It is not safe for concurrent use
// while parsing; once a parse returns, the accessors may be shared.
type DefaultParser struct {
	mode       uint8
	hitObjects []game.HitObject
}

func (p *DefaultParser) Mode() uint8 {
	return p.mode
}

// HitObjects returns the decoded objects in file order. The slice is owned by
// the parser and is overwritten by the next Reset and parse.
func (p *DefaultParser) HitObjects() []game.HitObject {
	return p.hitObjects
}

// Reset returns the parser to mode 0 with no hit objects, keeping the
// backing storage for the next parse.
func (p *DefaultParser) Reset() {
	p.mode = 0
	p.hitObjects = p.hitObjects[:0]
}

func (p *DefaultParser) ParseFile(file string) error {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return errors.Wrapf(err, "unable to read beatmap %s", file)
	}
	p.ParseContent(data)
	return nil
}

func (p *DefaultParser) ParseReader(r io.Reader) error {
	data, err := ioutil.ReadAll(r)
	if nil != err {
		return errors.Wrap(err, "unable to read beatmap")
	}
	p.ParseContent(data)
	return nil
}

// ParseContent decodes a whole beatmap held in memory, appending its hit
// objects. Only the first Mode: line outside [HitObjects] sets the mode.
// Lines that cannot be understood are skipped or decode to zeroed fields.
func (p *DefaultParser) ParseContent(content []byte) {
	p.reserve(len(content))

	inHitObjects := false
	modeFound := false

	for len(content) > 0 {
		var line []byte
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			line, content = content[:i], content[i+1:]
		} else {
			line, content = content, nil
		}
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}

		// Blank lines and comments
		if len(line) == 0 || line[0] == '/' {
			continue
		}

		if line[0] == '[' && line[len(line)-1] == ']' {
			// [General] and every other section leave [HitObjects]
			inHitObjects = bytes.Equal(line, hitObjectsHeader)
			continue
		}

		if inHitObjects {
			p.hitObjects = append(p.hitObjects, DecodeHitObject(line, p.mode))
			continue
		}

		if !modeFound && bytes.HasPrefix(line, modeKey) {
			p.mode = uint8(ParseInt(line[len(modeKey):]))
			modeFound = true
		}
	}
}

func (p *DefaultParser) reserve(size int) {
	want := size / minLineLength
	if want > maxReserve {
		want = maxReserve
	}
	want += len(p.hitObjects)
	if cap(p.hitObjects) >= want {
		return
	}
	grown := make([]game.HitObject, len(p.hitObjects), want)
	copy(grown, p.hitObjects)
	p.hitObjects = grown
}
