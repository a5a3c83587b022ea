package config

import (
	"fmt"
	"time"
)

const (
	UIAuto  = "auto"
	UITUI   = "tui"
	UIPlain = "plain"

	RegistryMemory = "memory"
	RegistrySQLite = "sqlite"

	LogBackendSlog = "slog"
	LogBackendZap  = "zap"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds runtime settings for the gophchat client.
//
// DeliveredDelay is the wait between sending a message and its "Delivered"
// line; ReadDelay is the further wait before "Read".
type Config struct {
	UI             string
	DeliveredDelay time.Duration
	ReadDelay      time.Duration
	TimeFormat     string
	Registry       string
	LogLevel       string
	LogBackend     string
	LogFile        string
	Theme          string
}

// LoadDefaults populates c with the values the demo has always used.
func (c *Config) LoadDefaults() {
	c.UI = UIAuto
	c.DeliveredDelay = 1000 * time.Millisecond
	c.ReadDelay = 1500 * time.Millisecond
	c.TimeFormat = "15:04"
	c.Registry = RegistryMemory
	c.LogLevel = "info"
	c.LogBackend = LogBackendSlog
	c.LogFile = ""
	c.Theme = ThemeLight
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if !oneOf(c.UI, UIAuto, UITUI, UIPlain) {
		return fmt.Errorf("unknown ui %q", c.UI)
	}
	if !oneOf(c.Registry, RegistryMemory, RegistrySQLite) {
		return fmt.Errorf("unknown registry %q", c.Registry)
	}
	if !oneOf(c.LogBackend, LogBackendSlog, LogBackendZap) {
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	if !oneOf(c.Theme, ThemeLight, ThemeDark) {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if c.DeliveredDelay < 0 || c.ReadDelay < 0 {
		return fmt.Errorf("acknowledgment delays must not be negative")
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("time format must not be empty")
	}
	return nil
}

// LoadConfig constructs a Config from defaults, the environment, an optional
// config file and finally the command-line flags in args (without the
// program name). Later sources take precedence over earlier ones.
//
// Unreadable files and malformed values panic, the same way flag parsing
// with flag.PanicOnError does; callers decide whether to recover.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

func oneOf(v string, options ...string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
