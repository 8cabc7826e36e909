package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"git.lost.host/meutraa/omfp/internal/game"
	"git.lost.host/meutraa/omfp/internal/render"
	"git.lost.host/meutraa/omfp/internal/theme"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Encode writes the reports as a single yaml or json document
func Encode(w io.Writer, format string, reports []Report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); nil != err {
			return errors.Wrap(err, "unable to encode yaml report")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); nil != err {
			return errors.Wrap(err, "unable to encode json report")
		}
		return nil
	}
	return errors.Errorf("unknown report format %q", format)
}

// Render writes the human readable form of one report
func Render(r render.Renderer, th theme.Theme, rep *Report) {
	r.Fill(fmt.Sprintf("%v (%v)", rep.File, humanize.Bytes(uint64(rep.Size))))
	r.Fill(fmt.Sprintf("      Mode:  %v", rep.Mode))
	r.Fill(fmt.Sprintf("   Objects:  %v", humanize.Comma(int64(rep.Objects))))
	r.FillColor(th.KindColor(game.Point), fmt.Sprintf("    Points:  %v", humanize.Comma(int64(rep.Points))))
	r.FillColor(th.KindColor(game.Sustain), fmt.Sprintf("     Holds:  %v", humanize.Comma(int64(rep.Sustains))))
	r.Fill(fmt.Sprintf("  %2vk rows:  %v (%v skipped)", rep.Keys, humanize.Comma(int64(rep.Rows)), rep.Skipped))

	if rep.Timing.Iterations > 0 {
		best := rep.Timing.Best()
		r.Fill(fmt.Sprintf("    Parsed:  %v best, %v mean over %v runs", best, rep.Timing.Mean(), rep.Timing.Iterations))
		if best > 0 {
			perSecond := float64(rep.Size) / best.Seconds()
			r.Fill(fmt.Sprintf("Throughput:  %v/s", humanize.Bytes(uint64(perSecond))))
		}
	}
	if nil != rep.Previous {
		r.Fill(fmt.Sprintf("  Previous:  %v best", rep.Previous.Best()))
	}

	if len(rep.First) > 0 {
		r.Fill("")
		for i, o := range rep.First {
			r.FillColor(th.KindColor(kindOf(o)), fmt.Sprintf("%4v) %v", i, describe(o)))
		}
	}
	if len(rep.Holds) > 0 {
		r.Fill("")
		r.Fill("Holds:")
		for _, o := range rep.Holds {
			r.FillColor(th.KindColor(game.Sustain), fmt.Sprintf("      %v", describe(o)))
		}
	}

	if len(rep.Density) > 0 {
		r.Fill("")
		r.Fill(fmt.Sprintf("Density per %v:", time.Duration(rep.Window)*time.Millisecond))
		max := 0
		for _, b := range rep.Density {
			if b.Count > max {
				max = b.Count
			}
		}
		for _, b := range rep.Density {
			label := fmt.Sprintf("%9v", time.Duration(b.Start)*time.Millisecond)
			r.Bar(label, b.Count, max, th.DensityColor(b.Count, max), th.BarSymbol())
		}
	}
	r.Fill("")
}

func kindOf(o Object) game.Kind {
	if nil != o.EndTime {
		return game.Sustain
	}
	return game.Point
}

func describe(o Object) string {
	if nil != o.EndTime {
		return fmt.Sprintf("%-7v at %6vms until %6vms  (%v, %v)", o.Kind, o.Time, *o.EndTime, o.X, o.Y)
	}
	return fmt.Sprintf("%-7v at %6vms                    (%v, %v)", o.Kind, o.Time, o.X, o.Y)
}
