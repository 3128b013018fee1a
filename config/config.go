// Package config handles patchwork.toml host configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "patchwork.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PATCHWORK_"

// Config represents a patchwork.toml file plus environment overrides.
type Config struct {
	Host      Host              `toml:"host" envPrefix:"HOST_"`
	Store     Store             `toml:"store" envPrefix:"STORE_"`
	Server    Server            `toml:"server" envPrefix:"SERVER_"`
	Log       Log               `toml:"log" envPrefix:"LOG_"`
	Telemetry Telemetry         `toml:"telemetry" envPrefix:"OTEL_"`
	Bundles   map[string]Bundle `toml:"bundles"`

	// Dir is the directory containing the patchwork.toml file (set at load time).
	Dir string `toml:"-"`
}

// Host describes the patched process.
type Host struct {
	MainBundle  string `toml:"main-bundle" env:"MAIN_BUNDLE"`
	DisplayName string `toml:"display-name" env:"DISPLAY_NAME"`
}

// Store configures the patch library database.
type Store struct {
	Path     string `toml:"path" env:"PATH"`
	Autoload bool   `toml:"autoload" env:"AUTOLOAD"`
	Autosave bool   `toml:"autosave" env:"AUTOSAVE"`
}

// Server configures the control service.
type Server struct {
	Addr string `toml:"addr" env:"ADDR"`
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity" env:"VERBOSITY"`
	File      string `toml:"file" env:"FILE"`
}

// Telemetry configures OpenTelemetry tracing. Tracing is off while
// Endpoint is empty.
type Telemetry struct {
	Endpoint    string `toml:"endpoint" env:"ENDPOINT"`
	ServiceName string `toml:"service-name" env:"SERVICE_NAME"`
}

// Bundle holds per-bundle settings.
type Bundle struct {
	DisplayName string `toml:"display-name"`
	Enabled     *bool  `toml:"enabled"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Host:      Host{MainBundle: "main"},
		Store:     Store{Path: filepath.Join(".patchwork", "patches.db"), Autoload: true, Autosave: true},
		Server:    Server{Addr: "127.0.0.1:7766"},
		Telemetry: Telemetry{ServiceName: "patchwork"},
	}
}

// Load parses a patchwork.toml file from the given directory and applies
// environment overrides.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	if err := ParseEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a patchwork.toml file and
// loads it. Without a file it returns Default with environment overrides,
// rooted at startDir.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	start := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	c := Default()
	c.Dir = start
	if err := ParseEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseEnv applies PATCHWORK_* environment variables on top of c.
func ParseEnv(c *Config) error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// StorePath returns the database path, resolved against Dir when relative.
func (c *Config) StorePath() string {
	if c.Store.Path == "" || filepath.IsAbs(c.Store.Path) || c.Dir == "" {
		return c.Store.Path
	}
	return filepath.Join(c.Dir, c.Store.Path)
}

// DisplayNames returns the configured per-bundle display names.
func (c *Config) DisplayNames() map[string]string {
	out := make(map[string]string)
	for id, b := range c.Bundles {
		if b.DisplayName != "" {
			out[id] = b.DisplayName
		}
	}
	if c.Host.DisplayName != "" && c.Host.MainBundle != "" {
		if _, ok := out[c.Host.MainBundle]; !ok {
			out[c.Host.MainBundle] = c.Host.DisplayName
		}
	}
	return out
}

// EnabledFlags returns the bundles whose enabled flag is set explicitly.
func (c *Config) EnabledFlags() map[string]bool {
	out := make(map[string]bool)
	for id, b := range c.Bundles {
		if b.Enabled != nil {
			out[id] = *b.Enabled
		}
	}
	return out
}

// ConfigureLogging sets up the commonlog backend from the log section.
func (c *Config) ConfigureLogging() {
	var path *string
	if c.Log.File != "" {
		file := c.Log.File
		if !filepath.IsAbs(file) && c.Dir != "" {
			file = filepath.Join(c.Dir, file)
		}
		path = &file
	}
	commonlog.Configure(c.Log.Verbosity, path)
}
