package parser

import (
	"math"
	"sort"

	"git.lost.host/meutraa/omfp/internal/game"
)

func (p *DefaultParser) filter(keep func(o *game.HitObject) bool) []game.HitObject {
	objects := []game.HitObject{}
	for i := range p.hitObjects {
		if keep(&p.hitObjects[i]) {
			objects = append(objects, p.hitObjects[i])
		}
	}
	return objects
}

func (p *DefaultParser) Points() []game.HitObject {
	return p.filter(func(o *game.HitObject) bool { return o.Kind == game.Point })
}

func (p *DefaultParser) Sustains() []game.HitObject {
	return p.filter(func(o *game.HitObject) bool { return o.Kind == game.Sustain })
}

// InRange returns the objects starting between start and end inclusive
func (p *DefaultParser) InRange(start, end int32) []game.HitObject {
	return p.filter(func(o *game.HitObject) bool { return o.Time >= start && o.Time <= end })
}

// SustainExamples returns up to limit sustains in file order
func (p *DefaultParser) SustainExamples(limit int) []game.HitObject {
	objects := []game.HitObject{}
	for _, o := range p.hitObjects {
		if len(objects) >= limit {
			break
		}
		if o.Kind == game.Sustain {
			objects = append(objects, o)
		}
	}
	return objects
}

func (p *DefaultParser) CountByKind() (points, sustains int) {
	for _, o := range p.hitObjects {
		switch o.Kind {
		case game.Point:
			points++
		case game.Sustain:
			sustains++
		}
	}
	return points, sustains
}

// SortedByTime returns a copy of the objects ordered by start time. Objects
// sharing a time keep their file order.
func (p *DefaultParser) SortedByTime() []game.HitObject {
	objects := make([]game.HitObject, len(p.hitObjects))
	copy(objects, p.hitObjects)
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].Time < objects[j].Time
	})
	return objects
}

// Density counts objects per window milliseconds, keyed by the start of each
// window. Negative times fall into the window below them.
func (p *DefaultParser) Density(window int32) map[int32]int {
	buckets := map[int32]int{}
	if window <= 0 {
		return buckets
	}
	for _, o := range p.hitObjects {
		buckets[WindowStart(o.Time, window)]++
	}
	return buckets
}

// WindowStart is floor(time / window) * window. Windows starting below
// math.MinInt32 are clamped to it.
func WindowStart(time, window int32) int32 {
	t, w := int64(time), int64(window)
	q := t / w
	if t%w != 0 && t < 0 {
		q--
	}
	start := q * w
	if start < math.MinInt32 {
		return math.MinInt32
	}
	return int32(start)
}
