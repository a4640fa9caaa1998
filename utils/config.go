package utils

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDelayMs = 200
	MinDelayMs     = 50
	MaxDelayMs     = 1000

	DisplayClear = "clear"
	DisplayLive  = "live"
)

// RunMode selects whether the simulation stops on its own
type RunMode int

const (
	Bounded RunMode = iota
	Unbounded
)

func (m RunMode) String() string {
	if m == Unbounded {
		return "unbounded"
	}
	return "bounded"
}

// Config holds the configuration for the simulation
type Config struct {
	Pattern       string `json:"pattern" yaml:"pattern"`
	Mode          string `json:"mode" yaml:"mode"`
	DelayMs       int    `json:"delay_ms" yaml:"delay_ms"`
	Width         int    `json:"width" yaml:"width"`             // 0 uses the pattern's viewport
	Height        int    `json:"height" yaml:"height"`           // 0 uses the pattern's viewport
	Generations   int    `json:"generations" yaml:"generations"` // negative uses the pattern's limit
	Display       string `json:"display" yaml:"display"`
	UseParallel   bool   `json:"use_parallel" yaml:"use_parallel"`
	Workers       int    `json:"workers" yaml:"workers"`
	UseMemoryPool bool   `json:"use_memory_pool" yaml:"use_memory_pool"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Pattern:       "1",
		Mode:          "a",
		DelayMs:       DefaultDelayMs,
		Generations:   -1,
		Display:       DisplayClear,
		UseParallel:   false,
		UseMemoryPool: true,
		LogLevel:      "info",
	}
}

// LoadConfig loads configuration from a YAML (or JSON) file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	config.DelayMs = ClampDelay(config.DelayMs)
	return config, nil
}

// RunMode interprets the configured mode
func (c Config) RunMode() RunMode {
	return ParseMode(c.Mode)
}

// ParseMode maps "b", "infinite" and "unbounded" to Unbounded, anything else is Bounded
func ParseMode(input string) RunMode {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "b", "infinite", "unbounded":
		return Unbounded
	default:
		return Bounded
	}
}

// ParseDelay reads a per-generation delay in milliseconds. Empty or
// unparseable input gives the default, numbers are clamped to the allowed range.
func ParseDelay(input string) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultDelayMs
	}
	ms, err := strconv.Atoi(input)
	if err != nil {
		return DefaultDelayMs
	}
	return ClampDelay(ms)
}

// ClampDelay bounds ms to [MinDelayMs, MaxDelayMs]
func ClampDelay(ms int) int {
	return min(max(ms, MinDelayMs), MaxDelayMs)
}
