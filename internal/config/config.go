// Package config loads process settings from the environment with sensible
// defaults, so the binary runs with no configuration at all.
package config

import (
	"os"
	"strconv"
)

// Environment variable names.
const (
	envUploadDir = "SKINTONE_UPLOAD_DIR"
	envMaxUpload = "SKINTONE_MAX_UPLOAD_BYTES"
	envLogLevel  = "SKINTONE_LOG_LEVEL"
)

// Defaults.
const (
	DefaultUploadDir      = "uploads"
	DefaultMaxUploadBytes = 16 << 20 // 16 MiB
	DefaultLogLevel       = "info"
)

// Settings holds the process-wide configuration. Values are read once at
// startup and never change afterwards.
type Settings struct {
	// UploadDir is where uploaded and modified images are persisted.
	UploadDir string

	// MaxUploadBytes caps the size of a single upload buffer.
	MaxUploadBytes int64

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string
}

// Load reads settings from the environment, falling back to defaults for
// unset or malformed values.
func Load() Settings {
	s := Settings{
		UploadDir:      DefaultUploadDir,
		MaxUploadBytes: DefaultMaxUploadBytes,
		LogLevel:       DefaultLogLevel,
	}

	if v := os.Getenv(envUploadDir); v != "" {
		s.UploadDir = v
	}
	if v := os.Getenv(envMaxUpload); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			s.MaxUploadBytes = n
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		s.LogLevel = v
	}

	return s
}
