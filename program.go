package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/omfp/internal/config"
	"git.lost.host/meutraa/omfp/internal/history"
	"git.lost.host/meutraa/omfp/internal/parser"
	"git.lost.host/meutraa/omfp/internal/render"
	"git.lost.host/meutraa/omfp/internal/report"
	"git.lost.host/meutraa/omfp/internal/theme"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Decoder parses beatmaps and answers the queries a report needs
type Decoder interface {
	parser.Parser
	report.Source
}

type Program struct {
	Parser   Decoder
	Store    history.Store // nil when history is disabled
	Renderer render.Renderer
	Theme    theme.Theme

	config *config.Config
	logger log.Logger
}

func (p *Program) Init(c *config.Config, logger log.Logger) error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Renderer = &render.DefaultRenderer{}
	p.Theme = &theme.DefaultTheme{}
	p.config = c
	p.logger = logger

	if c.History == "" {
		return nil
	}
	store := &history.DefaultStore{}
	if err := store.Init(c.History); nil != err {
		// Timing still works without a history
		level.Warn(logger).Log("msg", "history disabled", "path", c.History, "err", err)
		return nil
	}
	p.Store = store
	return nil
}

func (p *Program) Deinit() {
	if nil != p.Store {
		p.Store.Deinit()
		p.Store = nil
	}
}

// Run parses every configured file and writes the reports to w
func (p *Program) Run(w io.Writer) error {
	reports := make([]report.Report, 0, len(p.config.Files))
	for _, file := range p.config.Files {
		rep, err := p.parse(file)
		if nil != err {
			return err
		}
		reports = append(reports, rep)
	}

	if p.config.Format != "text" {
		return report.Encode(w, p.config.Format, reports)
	}

	p.Renderer.Init(w)
	for i := range reports {
		report.Render(p.Renderer, p.Theme, &reports[i])
	}
	return p.Renderer.Flush()
}

func (p *Program) parse(file string) (report.Report, error) {
	f, err := os.Open(file)
	if nil != err {
		return report.Report{}, errors.Wrapf(err, "unable to open beatmap %s", file)
	}
	defer f.Close()

	// The first parse reads the file and keeps its content for the timed runs
	var buf bytes.Buffer
	p.Parser.Reset()
	if err := p.Parser.ParseReader(io.TeeReader(f, &buf)); nil != err {
		return report.Report{}, errors.Wrapf(err, "unable to parse %s", file)
	}
	content := buf.Bytes()
	level.Debug(p.logger).Log("msg", "parsing", "file", file, "bytes", len(content))

	timings := make([]time.Duration, 0, p.config.Iterations)
	for i := uint(0); i < p.config.Iterations; i++ {
		p.Parser.Reset()
		start := time.Now()
		p.Parser.ParseContent(content)
		timings = append(timings, time.Since(start))
	}

	sum := history.Hash(content)
	var previous []history.Run
	if nil != p.Store {
		previous, err = p.Store.Load(sum)
		if nil != err {
			level.Warn(p.logger).Log("msg", "unable to load previous runs", "file", file, "err", err)
		}
	}

	rep := report.Build(p.Parser, report.Options{
		File:     filepath.Base(file),
		Content:  content,
		Timings:  timings,
		Keys:     int(p.config.Keys),
		Examples: int(p.config.Examples),
		Window:   p.config.WindowMs(),
		History:  previous,
	})

	level.Info(p.logger).Log(
		"msg", "parsed",
		"file", file,
		"mode", rep.Mode,
		"objects", rep.Objects,
		"best", rep.Timing.Best(),
	)
	if rep.Skipped > 0 {
		level.Warn(p.logger).Log("msg", "hit objects outside the playfield", "file", file, "keys", rep.Keys, "skipped", rep.Skipped)
	}

	if nil != p.Store {
		err := p.Store.Save(history.Run{
			Sum:      sum,
			File:     rep.File,
			Mode:     rep.Mode,
			Objects:  rep.Objects,
			Duration: rep.Timing.Best(),
		})
		if nil != err {
			level.Warn(p.logger).Log("msg", "unable to save run", "file", file, "err", err)
		}
	}
	return rep, nil
}
