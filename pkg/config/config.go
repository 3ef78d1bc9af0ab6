// Package config loads gruvcrisp settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/amirkhaki/gruvcrisp/pkg/scratch"
	"gopkg.in/yaml.v3"
)

// Version is the program version reported in banners and the scratch file.
const Version = "1.0.0"

// PathEnv names the environment variable holding the config file path.
const PathEnv = "GRUVCRISP_CONFIG"

// Config holds all gruvcrisp configuration.
type Config struct {
	Title    string `yaml:"title"`
	Version  string `yaml:"version"`
	Platform string `yaml:"platform"`

	// ScratchFile is created and removed by the file demo.
	ScratchFile string `yaml:"scratch_file"`

	// ArrayLen is the initial element count of the dynamic memory demo;
	// the buffer is later grown to twice this size.
	ArrayLen int `yaml:"array_len"`
	// MemoryLimit caps buffer element counts (0 = package default).
	MemoryLimit int `yaml:"memory_limit"`

	// Seed for the pseudo-random generator. 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	// TraceFile receives a JSON-lines trace of the run when set.
	TraceFile string `yaml:"trace_file"`

	Color bool `yaml:"color"`
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Title:       "Gruvbox Crisp Theme Demo",
		Version:     Version,
		Platform:    DetectPlatform(runtime.GOOS),
		ScratchFile: scratch.DefaultName,
		ArrayLen:    10,
		Color:       true,
	}
}

// DetectPlatform maps a GOOS value to a display name.
func DetectPlatform(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	default:
		return "Unknown"
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv returns the defaults with environment overrides applied. It is the
// fallback when a config file cannot be loaded.
func FromEnv() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects settings the demos cannot run with.
func (c *Config) Validate() error {
	if c.ScratchFile == "" {
		return errors.New("scratch_file must not be empty")
	}
	if c.ArrayLen <= 0 {
		return fmt.Errorf("array_len must be positive, got %d", c.ArrayLen)
	}
	if c.MemoryLimit < 0 {
		return fmt.Errorf("memory_limit must not be negative, got %d", c.MemoryLimit)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GRUVCRISP_SCRATCH_FILE"); v != "" {
		c.ScratchFile = v
	}
	if v := os.Getenv("GRUVCRISP_TRACE"); v != "" {
		c.TraceFile = v
	}
	if v := os.Getenv("GRUVCRISP_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := os.Getenv("GRUVCRISP_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Debug = debug
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Color = false
	}
}
