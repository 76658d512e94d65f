// Package primecli implements the primes command line interface.
package primecli

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const (
	ErrExhausted  errorkit.Error = "ErrExhausted"
	ErrBadRequest errorkit.Error = "ErrBadRequest"
)

func NewMux() *cli.Mux {
	var m cli.Mux
	m.Handle("take", TakeCommand{})
	m.Handle("until", UntilCommand{})
	m.Handle("nth", NthCommand{})
	return &m
}

type session struct {
	Settings Settings
	Logger   *logging.Logger
	Source   source
}

func begin(ctx context.Context, w cli.Response, f Flags) (*session, bool) {
	settings, err := f.Resolve()
	if err != nil {
		fail(w, cli.ExitCodeBadRequest, err)
		return nil, false
	}
	logger := &logging.Logger{
		Out:   stderr(w),
		Level: settings.LogLevel,
	}
	logger.Debug(ctx, "settings resolved",
		logging.Field("width", settings.Width),
		logging.Field("format", settings.Format),
		logging.Field("config", f.Config))
	return &session{
		Settings: settings,
		Logger:   logger,
		Source:   newSource(ctx, logger, settings.Width),
	}, true
}

func (s *session) report(ctx context.Context, w cli.Response, r Report) {
	if r.Primes == nil {
		r.Primes = []uint64{}
	}
	if r.Exhausted {
		s.Logger.Warn(ctx, "integer range exhausted",
			logging.Field("width", s.Settings.Width),
			logging.Field("count", len(r.Primes)))
	}
	if err := r.Encode(w, s.Settings.Format); err != nil {
		fail(w, cli.ExitCodeError, err)
	}
}

func stderr(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		if o := ew.Stderr(); o != nil {
			return o
		}
	}
	return io.Discard
}

func fail(w cli.Response, code int, err error) {
	w.ExitCode(code)
	fmt.Fprintln(stderr(w), err.Error())
}

type TakeCommand struct {
	Width    int    `flag:"width" env:"PRIMES_WIDTH" enum:"8,16,32,64," desc:"bit width of the integer type (default 64)"`
	Format   string `flag:"format" env:"PRIMES_FORMAT" enum:"text,json,toml," desc:"output format (default text)"`
	LogLevel string `flag:"log-level" env:"PRIMES_LOG_LEVEL" enum:"debug,info,warn,error," desc:"logging level, debug traces every candidate"`
	Config   string `flag:"config" env:"PRIMES_CONFIG" desc:"path to a TOML config file"`

	N int `arg:"0" required:"true" desc:"number of primes to print"`
}

const takeCapacityHint = 1024

func (cmd TakeCommand) Summary() string { return "print the first N primes" }

func (cmd TakeCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	if cmd.N < 0 {
		fail(w, cli.ExitCodeBadRequest, ErrBadRequest.F("N must not be negative, got %d", cmd.N))
		return
	}
	s, ok := begin(ctx, w, Flags{Width: cmd.Width, Format: cmd.Format, LogLevel: cmd.LogLevel, Config: cmd.Config})
	if !ok {
		return
	}
	// N is not bounded by the width, the range may run out long before it.
	var rep = Report{N: cmd.N, Primes: make([]uint64, 0, min(cmd.N, takeCapacityHint))}
	for len(rep.Primes) < cmd.N {
		p, ok := s.Source.Next()
		if !ok {
			rep.Exhausted = true
			break
		}
		rep.Primes = append(rep.Primes, p)
	}
	s.report(ctx, w, rep)
}

type UntilCommand struct {
	Width    int    `flag:"width" env:"PRIMES_WIDTH" enum:"8,16,32,64," desc:"bit width of the integer type (default 64)"`
	Format   string `flag:"format" env:"PRIMES_FORMAT" enum:"text,json,toml," desc:"output format (default text)"`
	LogLevel string `flag:"log-level" env:"PRIMES_LOG_LEVEL" enum:"debug,info,warn,error," desc:"logging level, debug traces every candidate"`
	Config   string `flag:"config" env:"PRIMES_CONFIG" desc:"path to a TOML config file"`

	Limit uint64 `arg:"0" required:"true" desc:"print primes until the first one that exceeds the limit"`
}

func (cmd UntilCommand) Summary() string {
	return "print primes up to and including the first one above LIMIT"
}

func (cmd UntilCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	s, ok := begin(ctx, w, Flags{Width: cmd.Width, Format: cmd.Format, LogLevel: cmd.LogLevel, Config: cmd.Config})
	if !ok {
		return
	}
	var rep = Report{Limit: cmd.Limit}
	for {
		p, ok := s.Source.Next()
		if !ok {
			rep.Exhausted = true
			break
		}
		rep.Primes = append(rep.Primes, p)
		if cmd.Limit < p {
			break
		}
	}
	s.report(ctx, w, rep)
}

type NthCommand struct {
	Width    int    `flag:"width" env:"PRIMES_WIDTH" enum:"8,16,32,64," desc:"bit width of the integer type (default 64)"`
	Format   string `flag:"format" env:"PRIMES_FORMAT" enum:"text,json,toml," desc:"output format (default text)"`
	LogLevel string `flag:"log-level" env:"PRIMES_LOG_LEVEL" enum:"debug,info,warn,error," desc:"logging level, debug traces every candidate"`
	Config   string `flag:"config" env:"PRIMES_CONFIG" desc:"path to a TOML config file"`

	N int `arg:"0" required:"true" desc:"one based index of the prime"`
}

func (cmd NthCommand) Summary() string { return "print the Nth prime" }

func (cmd NthCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	if cmd.N < 1 {
		fail(w, cli.ExitCodeBadRequest, ErrBadRequest.F("N must be at least 1, got %d", cmd.N))
		return
	}
	s, ok := begin(ctx, w, Flags{Width: cmd.Width, Format: cmd.Format, LogLevel: cmd.LogLevel, Config: cmd.Config})
	if !ok {
		return
	}
	var (
		p     uint64
		count int
	)
	for count < cmd.N {
		v, ok := s.Source.Next()
		if !ok {
			s.Logger.Error(ctx, "integer range exhausted",
				logging.Field("width", s.Settings.Width),
				logging.Field("count", count))
			fail(w, cli.ExitCodeError, ErrExhausted.F("only %d primes fit into %d bits, the %d. was requested", count, s.Settings.Width, cmd.N))
			return
		}
		p, count = v, count+1
	}
	s.report(ctx, w, Report{N: cmd.N, Primes: []uint64{p}})
}
