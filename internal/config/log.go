package config

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger writes logfmt lines to w, dropping anything below the configured level
func (c *Config) Logger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, levelOption(c.LogLevel))
}

func levelOption(l string) level.Option {
	switch l {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	}
	return level.AllowInfo()
}
