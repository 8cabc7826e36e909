package testdata

import (
	_ "embed"
	"strconv"
)

//go:embed mania.osu
var mania []byte

//go:embed standard.osu
var standard []byte

// Mania is a 4k beatmap with 6 hit objects, 2 of them holds
func Mania() []byte {
	return mania
}

// Standard is a mode 0 beatmap with a circle, slider, spinner and an object
// carrying the hold bit
func Standard() []byte {
	return standard
}

// Generate builds a 4k beatmap with n hit objects, every fourth one a hold,
// in the shape of a real ranked map.
func Generate(n int) []byte {
	b := make([]byte, 0, 256+n*36)
	b = append(b, "osu file format v14\r\n\r\n[General]\r\nAudioFilename: audio.mp3\r\nMode: 3\r\n\r\n[HitObjects]\r\n"...)
	for i := 0; i < n; i++ {
		x := 64 + 128*(i%4)
		t := 1000 + i*125
		b = strconv.AppendInt(b, int64(x), 10)
		b = append(b, ",192,"...)
		b = strconv.AppendInt(b, int64(t), 10)
		if i%4 == 3 {
			b = append(b, ",128,0,"...)
			b = strconv.AppendInt(b, int64(t+500), 10)
			b = append(b, ":0:0:0:0:\r\n"...)
		} else {
			b = append(b, ",1,0,0:0:0:0:\r\n"...)
		}
	}
	return b
}
