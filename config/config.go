package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ftahirops/xstatus/collector"
	"github.com/ftahirops/xstatus/format"
	"github.com/ftahirops/xstatus/sink"
)

// Config holds user-configurable defaults.
type Config struct {
	Interval time.Duration `yaml:"interval"`
	Strict   bool          `yaml:"strict"`
	Sink     string        `yaml:"sink"`
	LogLevel string        `yaml:"log_level"`
	Paths    PathsConfig   `yaml:"paths"`
	Audio    AudioConfig   `yaml:"audio"`
	Format   FormatConfig  `yaml:"format"`
}

type PathsConfig struct {
	PowerSupply string `yaml:"power_supply"`
	Backlight   string `yaml:"backlight"`
	Meminfo     string `yaml:"meminfo"`
}

type AudioConfig struct {
	Command string        `yaml:"command"`
	Sink    string        `yaml:"sink"`
	Timeout time.Duration `yaml:"timeout"`
}

type FormatConfig struct {
	Separator   string `yaml:"separator"`
	TimeLayout  string `yaml:"time_layout"`
	DateLayout  string `yaml:"date_layout"`
	Placeholder string `yaml:"placeholder"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	co := collector.DefaultOptions()
	fo := format.DefaultOptions()
	return Config{
		Interval: time.Second,
		Sink:     sink.NameXSetRoot,
		LogLevel: "info",
		Paths: PathsConfig{
			PowerSupply: co.PowerSupplyDir,
			Backlight:   co.BacklightDir,
			Meminfo:     co.MeminfoPath,
		},
		Audio: AudioConfig{
			Command: co.AudioCommand,
			Sink:    co.AudioSink,
			Timeout: co.AudioTimeout,
		},
		Format: FormatConfig{
			Separator:   fo.Separator,
			TimeLayout:  fo.TimeLayout,
			DateLayout:  fo.DateLayout,
			Placeholder: fo.Placeholder,
		},
	}
}

// Path returns ~/.config/xstatus/config.yaml (or under XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "xstatus", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error;
// keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the poll loop cannot run with.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.Audio.Timeout < 0 {
		return fmt.Errorf("audio.timeout must not be negative, got %s", c.Audio.Timeout)
	}
	if c.Audio.Command == "" {
		return errors.New("audio.command is empty")
	}
	switch c.Sink {
	case sink.NameXSetRoot, sink.NameStdout:
	default:
		return fmt.Errorf("unknown sink %q", c.Sink)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// CollectorOptions converts the config into collector locations.
func (c Config) CollectorOptions() collector.Options {
	return collector.Options{
		PowerSupplyDir: c.Paths.PowerSupply,
		BacklightDir:   c.Paths.Backlight,
		MeminfoPath:    c.Paths.Meminfo,
		AudioCommand:   c.Audio.Command,
		AudioSink:      c.Audio.Sink,
		AudioTimeout:   c.Audio.Timeout,
	}
}

// FormatOptions converts the config into line layout options.
func (c Config) FormatOptions() format.Options {
	return format.Options{
		Separator:   c.Format.Separator,
		TimeLayout:  c.Format.TimeLayout,
		DateLayout:  c.Format.DateLayout,
		Placeholder: c.Format.Placeholder,
	}
}
