package game

import (
	"sort"

	"github.com/pkg/errors"
)

// Width of the virtual playfield that mania columns are spread across
const PlayfieldWidth = 512

// Most columns a mania beatmap can have
const MaxKeys = 18

// Row is one line of the chart as the difficulty engine wants it: every lane
// pressed at Time, as a bitflag.
type Row struct {
	Lanes uint32
	Time  float32 // Seconds
}

// Lane maps an x coordinate onto a column for a keys-wide chart.
// For 4 keys, 64, 192, 320 and 448 are lanes 0 to 3.
func Lane(x int32, keys int) (int, error) {
	if keys < 1 || keys > MaxKeys {
		return -1, errors.Errorf("unsupported key count %v", keys)
	}
	lane := int(x) * keys / PlayfieldWidth
	if x < 0 || lane >= keys {
		return -1, errors.Errorf("x %v is outside a %vk playfield", x, keys)
	}
	return lane, nil
}

// Rows converts hit objects into rows sorted by time, merging the lanes of
// objects that start at the same moment. Sustains contribute only their head.
// Objects that do not map onto a lane are skipped and counted.
func Rows(objects []HitObject, keys int) ([]Row, int) {
	raw := make([]Row, 0, len(objects))
	skipped := 0
	for _, o := range objects {
		lane, err := Lane(o.X, keys)
		if nil != err {
			skipped++
			continue
		}
		raw = append(raw, Row{
			Lanes: 1 << uint(lane),
			Time:  float32(o.Time) / 1000,
		})
	}
	if len(raw) == 0 {
		return raw, skipped
	}

	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].Time < raw[j].Time
	})

	rows := raw[:1]
	for _, r := range raw[1:] {
		last := &rows[len(rows)-1]
		if r.Time == last.Time {
			last.Lanes |= r.Lanes
			continue
		}
		rows = append(rows, r)
	}
	return rows, skipped
}
