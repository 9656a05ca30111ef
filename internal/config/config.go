package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlabel/labeler"
)

// View names accepted in Config.Views.
const (
	ViewBinary    = "binary"
	ViewColorize  = "colorize"
	ViewHighlight = "highlight"
	ViewIdentify  = "identify"
)

// AllViews lists every view in rendering order.
var AllViews = []string{ViewBinary, ViewColorize, ViewHighlight, ViewIdentify}

// Config represents the top-level YAML configuration.
type Config struct {
	// Mode is "brighter"/"0" or "darker"/"1".
	Mode      string        `yaml:"mode"`
	Deadline  time.Duration `yaml:"deadline"`
	Seed      int64         `yaml:"seed"`
	LogLevel  string        `yaml:"log_level"`
	OutputDir string        `yaml:"output_dir"`
	Format    string        `yaml:"format"`
	Views     []string      `yaml:"views"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyEnv()
	_ = c.validate()
	return c
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnv fills in empty fields from environment variables.
// YAML values take precedence; env vars are used only as fallback.
func (c *Config) applyEnv() {
	if c.Mode == "" {
		c.Mode = os.Getenv("LVLABEL_MODE")
	}
	if c.Deadline == 0 {
		if s := os.Getenv("LVLABEL_DEADLINE"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				c.Deadline = d
			}
		}
	}
	if c.Seed == 0 {
		if s := os.Getenv("LVLABEL_SEED"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				c.Seed = n
			}
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv("LVLABEL_LOG_LEVEL")
	}
}

// validate checks values and fills defaults.
func (c *Config) validate() error {
	if c.Mode == "" {
		c.Mode = labeler.BrighterForeground.String()
	}
	if _, err := labeler.ParseModeName(c.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	if c.Deadline == 0 {
		c.Deadline = labeler.DefaultDeadline
	}
	if c.Deadline < 0 {
		return fmt.Errorf("deadline must be positive, got %s", c.Deadline)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Format == "" {
		c.Format = "png"
	}
	if len(c.Views) == 0 {
		c.Views = append([]string(nil), AllViews...)
	}
	for i, v := range c.Views {
		if !knownView(v) {
			return fmt.Errorf("views[%d]: unknown view %q", i, v)
		}
	}
	return nil
}

// Validate re-checks c after flags have overridden fields.
func (c *Config) Validate() error {
	return c.validate()
}

// LabelMode returns the parsed Mode.
func (c *Config) LabelMode() labeler.Mode {
	m, _ := labeler.ParseModeName(c.Mode)
	return m
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel accepts debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

func knownView(v string) bool {
	for _, k := range AllViews {
		if k == v {
			return true
		}
	}
	return false
}
