// Package config loads host settings from defaults, an optional YAML file,
// a .env file and VALLEY_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"valley-farm/internal/logger"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "VALLEY_"

// Config holds the host settings.
type Config struct {
	PlayerName       string        `yaml:"player_name" validate:"required,max=32"`
	Seed             int64         `yaml:"seed"`
	FrameRate        int           `yaml:"frame_rate" validate:"gte=10,lte=240"`
	KeyHold          time.Duration `yaml:"key_hold" validate:"gte=0"`
	SaveBackend      string        `yaml:"save_backend" validate:"oneof=file sqlite memory"`
	SaveDir          string        `yaml:"save_dir"`
	SaveSlot         int           `yaml:"save_slot" validate:"gte=-1,lte=9"`
	AutosaveInterval time.Duration `yaml:"autosave_interval" validate:"gte=0"`
	MapFile          string        `yaml:"map_file"`
	LogLevel         string        `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat        string        `yaml:"log_format" validate:"oneof=json text"`
	LogFile          string        `yaml:"log_file"`
	SSHPort          int           `yaml:"ssh_port" validate:"gte=1,lte=65535"`
	HostKey          string        `yaml:"host_key" validate:"required"`
	MetricsAddr      string        `yaml:"metrics_addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		PlayerName:       "Farmer",
		FrameRate:        60,
		KeyHold:          180 * time.Millisecond,
		SaveBackend:      "file",
		SaveSlot:         -1,
		AutosaveInterval: 5 * time.Minute,
		LogLevel:         "info",
		LogFormat:        logger.FormatText,
		SSHPort:          2222,
		HostKey:          "server_host_key",
		MetricsAddr:      ":9090",
	}
}

// Load layers the YAML file at path (skipped when path is empty), a .env
// file in the working directory and the environment over the defaults,
// then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

var validate = validator.New()

// Validate checks every field's range.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

type envVar struct {
	name string
	set  func(string) error
}

func (c *Config) envVars() []envVar {
	str := func(dst *string) func(string) error {
		return func(v string) error { *dst = v; return nil }
	}
	num := func(dst *int) func(string) error {
		return func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		}
	}
	dur := func(dst *time.Duration) func(string) error {
		return func(v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return err
			}
			*dst = d
			return nil
		}
	}
	return []envVar{
		{"PLAYER_NAME", str(&c.PlayerName)},
		{"SEED", func(v string) error {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return err
			}
			c.Seed = n
			return nil
		}},
		{"FRAME_RATE", num(&c.FrameRate)},
		{"KEY_HOLD", dur(&c.KeyHold)},
		{"SAVE_BACKEND", str(&c.SaveBackend)},
		{"SAVE_DIR", str(&c.SaveDir)},
		{"SAVE_SLOT", num(&c.SaveSlot)},
		{"AUTOSAVE_INTERVAL", dur(&c.AutosaveInterval)},
		{"MAP_FILE", str(&c.MapFile)},
		{"LOG_LEVEL", str(&c.LogLevel)},
		{"LOG_FORMAT", str(&c.LogFormat)},
		{"LOG_FILE", str(&c.LogFile)},
		{"SSH_PORT", num(&c.SSHPort)},
		{"HOST_KEY", str(&c.HostKey)},
		{"METRICS_ADDR", str(&c.MetricsAddr)},
	}
}

func (c *Config) applyEnv() error {
	var errs []error
	for _, e := range c.envVars() {
		v, ok := os.LookupEnv(EnvPrefix + e.name)
		if !ok {
			continue
		}
		if err := e.set(v); err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, e.name, err))
		}
	}
	return errors.Join(errs...)
}

// Logger returns the logger settings.
func (c *Config) Logger(version string) logger.Config {
	return logger.Config{
		Level:       c.LogLevel,
		Format:      c.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Version:     version,
	}
}

// FrameInterval is the render period for FrameRate.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
