package main

import (
	"fmt"
	"os"

	"git.lost.host/meutraa/omfp/internal/config"
	"github.com/go-kit/log/level"
)

func main() {
	c, err := config.Parse(os.Args[1:])
	if nil != err {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := c.Logger(os.Stderr)
	p := &Program{}
	if err := p.Init(c, logger); nil != err {
		level.Error(logger).Log("msg", "unable to start", "err", err)
		os.Exit(1)
	}
	defer p.Deinit()

	if err := p.Run(os.Stdout); nil != err {
		level.Error(logger).Log("err", err)
		p.Deinit()
		os.Exit(1)
	}
}
