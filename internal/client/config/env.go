package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "GOPHCHAT_"

// parseEnv overlays cfg with GOPHCHAT_* variables. Values from dotenvPath are
// used only when the process environment does not define the same key; a
// missing .env file is not an error.
func parseEnv(cfg *Config, dotenvPath string) {
	fileVars, err := godotenv.Read(dotenvPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			return v, true
		}
		v, ok := fileVars[envPrefix+key]
		return v, ok
	}

	texts := map[string]*string{
		"UI":          &cfg.UI,
		"TIME_FORMAT": &cfg.TimeFormat,
		"REGISTRY":    &cfg.Registry,
		"LOG_LEVEL":   &cfg.LogLevel,
		"LOG_BACKEND": &cfg.LogBackend,
		"LOG_FILE":    &cfg.LogFile,
		"THEME":       &cfg.Theme,
	}
	for key, dst := range texts {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"DELIVERED_DELAY": &cfg.DeliveredDelay,
		"READ_DELAY":      &cfg.ReadDelay,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		*dst = d
	}
}
