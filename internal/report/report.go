package report

import (
	"sort"
	"time"

	"git.lost.host/meutraa/omfp/internal/game"
	"git.lost.host/meutraa/omfp/internal/history"
)

// Source is what a report reads from a finished parse
type Source interface {
	Mode() uint8
	HitObjects() []game.HitObject
	CountByKind() (points, sustains int)
	SustainExamples(limit int) []game.HitObject
	Density(window int32) map[int32]int
}

type Object struct {
	X       int32  `yaml:"x" json:"x"`
	Y       int32  `yaml:"y" json:"y"`
	Time    int32  `yaml:"time" json:"time"`
	Kind    string `yaml:"kind" json:"kind"`
	EndTime *int32 `yaml:"end_time,omitempty" json:"end_time,omitempty"`
}

type Bucket struct {
	Start int32 `yaml:"start" json:"start"`
	Count int   `yaml:"count" json:"count"`
}

type Timing struct {
	Iterations int   `yaml:"iterations" json:"iterations"`
	BestNs     int64 `yaml:"best_ns" json:"best_ns"`
	MeanNs     int64 `yaml:"mean_ns" json:"mean_ns"`
}

func (t Timing) Best() time.Duration { return time.Duration(t.BestNs) }
func (t Timing) Mean() time.Duration { return time.Duration(t.MeanNs) }

type Report struct {
	File     string   `yaml:"file" json:"file"`
	Sum      string   `yaml:"sum" json:"sum"`
	Size     int      `yaml:"size" json:"size"`
	Mode     uint8    `yaml:"mode" json:"mode"`
	Objects  int      `yaml:"objects" json:"objects"`
	Points   int      `yaml:"points" json:"points"`
	Sustains int      `yaml:"sustains" json:"sustains"`
	Keys     int      `yaml:"keys" json:"keys"`
	Rows     int      `yaml:"rows" json:"rows"`
	Skipped  int      `yaml:"skipped" json:"skipped"`
	Timing   Timing   `yaml:"timing" json:"timing"`
	First    []Object `yaml:"first" json:"first"`
	Holds    []Object `yaml:"holds" json:"holds"`
	Window   int32    `yaml:"window_ms" json:"window_ms"`
	Density  []Bucket `yaml:"density" json:"density"`

	// Fastest earlier run of the same content, if any
	Previous *Timing `yaml:"previous,omitempty" json:"previous,omitempty"`
}

type Options struct {
	File     string
	Content  []byte
	Timings  []time.Duration
	Keys     int
	Examples int
	Window   int32
	History  []history.Run
}

func Build(src Source, o Options) Report {
	objects := src.HitObjects()
	points, sustains := src.CountByKind()
	rows, skipped := game.Rows(objects, o.Keys)

	r := Report{
		File:     o.File,
		Sum:      history.Hash(o.Content),
		Size:     len(o.Content),
		Mode:     src.Mode(),
		Objects:  len(objects),
		Points:   points,
		Sustains: sustains,
		Keys:     o.Keys,
		Rows:     len(rows),
		Skipped:  skipped,
		Timing:   timing(o.Timings),
		First:    convert(objects, o.Examples),
		Holds:    convert(src.SustainExamples(o.Examples), o.Examples),
		Window:   o.Window,
		Density:  buckets(src.Density(o.Window)),
	}
	if best, ok := history.Best(o.History); ok {
		r.Previous = &Timing{Iterations: 1, BestNs: best.Duration.Nanoseconds(), MeanNs: best.Duration.Nanoseconds()}
	}
	return r
}

func timing(timings []time.Duration) Timing {
	t := Timing{Iterations: len(timings)}
	if len(timings) == 0 {
		return t
	}
	best, total := timings[0], time.Duration(0)
	for _, d := range timings {
		if d < best {
			best = d
		}
		total += d
	}
	t.BestNs = best.Nanoseconds()
	t.MeanNs = (total / time.Duration(len(timings))).Nanoseconds()
	return t
}

func convert(objects []game.HitObject, limit int) []Object {
	if limit > len(objects) {
		limit = len(objects)
	}
	out := make([]Object, 0, limit)
	for _, h := range objects[:limit] {
		o := Object{X: h.X, Y: h.Y, Time: h.Time, Kind: h.Kind.String()}
		if end, ok := h.End(); ok {
			o.EndTime = &end
		}
		out = append(out, o)
	}
	return out
}

func buckets(density map[int32]int) []Bucket {
	out := make([]Bucket, 0, len(density))
	for start, count := range density {
		out = append(out, Bucket{Start: start, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}
