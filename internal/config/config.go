package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/flipsort/internal/registry"
	"github.com/san-kum/flipsort/internal/sorting"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize    = 10
	DefaultSeed    = 42
	DefaultFPS     = 4
	DefaultWidth   = 60
	DefaultDataDir = ".flipsort"
	MaxSize        = 64
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalidSize   = errors.New("config: size out of range")
)

type Config struct {
	Algorithm string `yaml:"algorithm"`
	Values    []int  `yaml:"values,omitempty"`
	Preset    string `yaml:"preset"`
	Size      int    `yaml:"size"`
	Seed      int64  `yaml:"seed"`
	FPS       int    `yaml:"fps"`
	Width     int    `yaml:"width"`
	Theme     string `yaml:"theme"`
	LogLevel  string `yaml:"log_level"`
	DataDir   string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: registry.Insertion,
		Preset:    "random",
		Size:      DefaultSize,
		Seed:      DefaultSeed,
		FPS:       DefaultFPS,
		Width:     DefaultWidth,
		Theme:     "cyberpunk",
		LogLevel:  "info",
		DataDir:   DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Input resolves the configured values, or the preset when no explicit values
// are set, into a fresh item sequence.
func (c *Config) Input() ([]sorting.Item, error) {
	if len(c.Values) > 0 {
		if len(c.Values) > MaxSize {
			return nil, fmt.Errorf("%w: %d values (max %d)", ErrInvalidSize, len(c.Values), MaxSize)
		}
		return sorting.NewItems(c.Values...), nil
	}
	values, err := Generate(c.Preset, c.Size, c.Seed)
	if err != nil {
		return nil, err
	}
	return sorting.NewItems(values...), nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// ParseValues reads a comma or space separated list of integers.
func ParseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}
