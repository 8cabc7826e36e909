package game

// Kind is the subtype of a hit object. Only the two kinds the difficulty
// engine consumes are modelled; slider and spinner bits are ignored and
// decode as Point.
type Kind uint8

const (
	Point   Kind = iota // An instantaneous hit
	Sustain             // A hit held until EndTime
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Sustain:
		return "sustain"
	}
	return "unknown"
}

// Type flag bit marking a hold note in mania beatmaps
const SustainFlag uint8 = 1 << 7

type HitObject struct {
	X, Y int32
	Time int32 // Milliseconds from the start of the beatmap
	Kind Kind

	// Release timestamp in milliseconds, only meaningful for Sustain.
	// Points always carry zero here.
	EndTime int32
}

// End returns the release time and true for sustains, or 0 and false.
func (h HitObject) End() (int32, bool) {
	if h.Kind != Sustain {
		return 0, false
	}
	return h.EndTime, true
}
