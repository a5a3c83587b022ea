package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", `{
			"ui": "plain",
			"delivered_delay": "250ms",
			"read_delay": 500000000,
			"log_backend": "zap"
		}`)

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, []string{"-config", path})

		assert.Equal(t, UIPlain, cfg.UI)
		assert.Equal(t, 250*time.Millisecond, cfg.DeliveredDelay)
		assert.Equal(t, 500*time.Millisecond, cfg.ReadDelay)
		assert.Equal(t, LogBackendZap, cfg.LogBackend)
		assert.Equal(t, RegistryMemory, cfg.Registry, "absent keys keep their value")
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yaml", "registry: sqlite\ntheme: dark\nread_delay: 2s\n")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, []string{"-c", path})

		assert.Equal(t, RegistrySQLite, cfg.Registry)
		assert.Equal(t, ThemeDark, cfg.Theme)
		assert.Equal(t, 2*time.Second, cfg.ReadDelay)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{Registry: "defaults"}
		parseFile(cfg, []string{"-ui", "tui"})
		assert.Equal(t, "defaults", cfg.Registry)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", `{ this is not valid json`)
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", path}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() {
			parseFile(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		})
	})
}
