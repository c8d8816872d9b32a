package logger

import (
	"log/slog"
	"strings"
)

// Service identity attached to every record.
const (
	DefaultServiceName = "valley-farm"
	DefaultVersion     = "dev"
)

// Log format values.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Attribute keys.
const (
	AttrService   = "service"
	AttrVersion   = "version"
	AttrSessionID = "session_id"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	AddSource   bool
}

// DefaultConfig returns defaults (fallback when no config provided)
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      FormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
	}
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == FormatJSON
}

// BaseAttributes returns common attributes to add to all logs
func (c Config) BaseAttributes() []any {
	name := c.ServiceName
	if name == "" {
		name = DefaultServiceName
	}
	version := c.Version
	if version == "" {
		version = DefaultVersion
	}
	return []any{slog.String(AttrService, name), slog.String(AttrVersion, version)}
}
