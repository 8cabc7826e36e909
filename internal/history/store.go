package history

import "time"

type Store interface {
	Init(path string) error
	Deinit()

	// Save a timed parse of a beatmap
	Save(run Run) error

	// Load previous runs for the beatmap content, oldest first
	Load(sum string) ([]Run, error)
}

type Run struct {
	Sum      string // Hash of the beatmap content
	File     string
	Mode     uint8
	Objects  int
	Duration time.Duration // Best parse time
	Created  time.Time
}

// Best returns the fastest run, or false when there are none
func Best(runs []Run) (Run, bool) {
	if len(runs) == 0 {
		return Run{}, false
	}
	best := runs[0]
	for _, r := range runs[1:] {
		if r.Duration < best.Duration {
			best = r
		}
	}
	return best, true
}
