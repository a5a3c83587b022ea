// Package config loads runtime configuration for the gophchat client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: GOPHCHAT_* variables, optionally read from a .env file in
//     the working directory (see parseEnv). Real environment variables win
//     over the .env file.
//  3. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, everything else as JSON (see parseFile).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-ui string           front-end: auto, tui or plain
//	-delivered int       delay before "Delivered" (milliseconds)
//	-read int            further delay before "Read" (milliseconds)
//	-time-format string  Go layout for the message timestamp
//	-registry string     user directory backend: memory or sqlite
//	-log-level string    debug, info, warn or error
//	-log-backend string  slog or zap
//	-log-file string     append logs to this file
//	-theme string        light or dark
//
// # File schema
//
// Durations accept strings like "1500ms" or integer nanoseconds:
//
//	{
//	  "ui": "tui",
//	  "delivered_delay": "1s",
//	  "read_delay": "1500ms",
//	  "registry": "sqlite",
//	  "log_backend": "zap"
//	}
package config
