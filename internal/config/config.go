package config

import (
	"math"
	"time"

	"git.lost.host/meutraa/omfp/internal/game"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Files      []string
	Iterations uint
	Window     time.Duration
	Keys       uint
	Examples   uint
	Format     string
	History    string
	LogLevel   string
}

// WindowMs is the density window in whole milliseconds
func (c *Config) WindowMs() int32 {
	return int32(c.Window / time.Millisecond)
}

// Parse reads the command line, without the program name
func Parse(args []string) (*Config, error) {
	c := &Config{}
	app := kingpin.New("omfp", "Decode osu! beatmaps and report their hit objects.")
	app.Version(Version)
	app.Arg("files", "Beatmap files").Required().ExistingFilesVar(&c.Files)
	app.Flag("iterations", "Times each file is parsed for timing").Default("1").Short('n').UintVar(&c.Iterations)
	app.Flag("window", "Density histogram bucket width").Default("1s").Short('w').DurationVar(&c.Window)
	app.Flag("keys", "Key count used to map hit objects onto lanes").Default("4").Short('k').UintVar(&c.Keys)
	app.Flag("examples", "Hit objects and holds shown per file").Default("5").Short('e').UintVar(&c.Examples)
	app.Flag("format", "Report format").Default("text").Short('f').EnumVar(&c.Format, "text", "yaml", "json")
	app.Flag("history", "Run history database, empty to disable").Default("./runs.db").StringVar(&c.History)
	app.Flag("log-level", "Log level").Default("info").EnumVar(&c.LogLevel, "debug", "info", "warn", "error")

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	if err := c.validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Iterations == 0 {
		return errors.New("iterations must be at least 1")
	}
	if c.Window < time.Millisecond {
		return errors.Errorf("window %v is shorter than 1ms", c.Window)
	}
	if c.Window > time.Duration(math.MaxInt32)*time.Millisecond {
		return errors.Errorf("window %v is longer than %vms", c.Window, math.MaxInt32)
	}
	if c.Keys == 0 || c.Keys > game.MaxKeys {
		return errors.Errorf("keys must be between 1 and %v, got %v", game.MaxKeys, c.Keys)
	}
	return nil
}
