package parser

import (
	"bytes"

	"git.lost.host/meutraa/omfp/internal/game"
)

// Mode whose type flags can mark a hold note
const ManiaMode uint8 = 3

// next returns the comma terminated field starting at pos and the position
// just past its comma. Past the end of the line every field is empty.
func next(line []byte, pos int) ([]byte, int) {
	if pos >= len(line) {
		return nil, len(line)
	}
	end := bytes.IndexByte(line[pos:], ',')
	if end < 0 {
		return line[pos:], len(line)
	}
	return line[pos : pos+end], pos + end + 1
}

// DecodeHitObject decodes one [HitObjects] line of the form
//
//	x,y,time,type,hitSound,objectParams
//
// Only mania (mode 3) lines with the 0x80 type bit become sustains, and only
// then is the end time read from objectParams, up to its first ':'.
// Missing fields decode as zero.
func DecodeHitObject(line []byte, mode uint8) game.HitObject {
	var field []byte
	pos := 0

	field, pos = next(line, pos)
	x := ParseInt(field)
	field, pos = next(line, pos)
	y := ParseInt(field)
	field, pos = next(line, pos)
	time := ParseInt(field)
	field, pos = next(line, pos)
	flags := uint8(ParseInt(field))

	if mode != ManiaMode || flags&game.SustainFlag == 0 {
		return game.HitObject{X: x, Y: y, Time: time, Kind: game.Point}
	}

	// hitSound is not needed
	_, pos = next(line, pos)

	// The end time is packed in front of the colon separated hit sample
	end := pos
	for end < len(line) && line[end] != ':' && line[end] != ',' {
		end++
	}
	var endTime int32
	if pos < end {
		endTime = ParseInt(line[pos:end])
	}

	return game.HitObject{X: x, Y: y, Time: time, Kind: game.Sustain, EndTime: endTime}
}
