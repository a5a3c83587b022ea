package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
)

var knownFlags = []string{
	"ui", "delivered", "read", "time-format", "registry",
	"log-level", "log-backend", "log-file", "theme",
}

// parseFlags populates cfg from the command-line flags in args.
//
// Delays are given in whole milliseconds. Only the flags listed in
// knownFlags are looked at (see flagx.FilterArgs), so -c/-config and
// anything meant for other components pass through untouched.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("gophchat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.UI, "ui", cfg.UI, "front-end: auto, tui or plain")
	delivered := fs.Int("delivered", int(cfg.DeliveredDelay.Milliseconds()), "delay before Delivered (ms)")
	read := fs.Int("read", int(cfg.ReadDelay.Milliseconds()), "further delay before Read (ms)")
	fs.StringVar(&cfg.TimeFormat, "time-format", cfg.TimeFormat, "timestamp layout")
	fs.StringVar(&cfg.Registry, "registry", cfg.Registry, "user directory backend: memory or sqlite")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "slog or zap")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "light or dark")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}

	// delays from the environment or a file may be finer than a millisecond,
	// so only flags actually given replace them
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "delivered":
			cfg.DeliveredDelay = time.Duration(*delivered) * time.Millisecond
		case "read":
			cfg.ReadDelay = time.Duration(*read) * time.Millisecond
		}
	})
}
