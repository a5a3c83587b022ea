package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
	"github.com/dmitrijs2005/gophchat/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used only for decoding config files. Pointer fields
// distinguish "absent" from "empty" so a file can override a subset of the
// settings.
type FileConfig struct {
	UI             *string         `json:"ui"              yaml:"ui"`
	DeliveredDelay *timex.Duration `json:"delivered_delay" yaml:"delivered_delay"`
	ReadDelay      *timex.Duration `json:"read_delay"      yaml:"read_delay"`
	TimeFormat     *string         `json:"time_format"     yaml:"time_format"`
	Registry       *string         `json:"registry"        yaml:"registry"`
	LogLevel       *string         `json:"log_level"       yaml:"log_level"`
	LogBackend     *string         `json:"log_backend"     yaml:"log_backend"`
	LogFile        *string         `json:"log_file"        yaml:"log_file"`
	Theme          *string         `json:"theme"           yaml:"theme"`
}

// parseFile overlays cfg with the file named by -c/-config in args.
// Without such a flag it does nothing. Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.UI, fc.UI)
	setString(&cfg.TimeFormat, fc.TimeFormat)
	setString(&cfg.Registry, fc.Registry)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogBackend, fc.LogBackend)
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.Theme, fc.Theme)

	if fc.DeliveredDelay != nil {
		cfg.DeliveredDelay = fc.DeliveredDelay.Duration
	}
	if fc.ReadDelay != nil {
		cfg.ReadDelay = fc.ReadDelay.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
