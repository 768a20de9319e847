// Package config loads the pageroutes server configuration from a TOML file,
// an optional environment overlay and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackielii/pageroutes"
	"github.com/jackielii/pageroutes/internal/logging"
	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the default configuration file name.
	BaseConfigFile = "pageroutes.toml"

	// EnvServiceEnv selects the overlay pageroutes.<env>.toml next to the base file.
	EnvServiceEnv = "PAGEROUTES_ENV"

	EnvAddr            = "PAGEROUTES_ADDR"
	EnvRouter          = "PAGEROUTES_ROUTER"
	EnvShutdownTimeout = "PAGEROUTES_SHUTDOWN_TIMEOUT"
	EnvDir             = "PAGEROUTES_DIR"
	EnvHistory         = "PAGEROUTES_HISTORY"
)

var logEnv = &logging.Env{
	Level:  "PAGEROUTES_LOG_LEVEL",
	Format: "PAGEROUTES_LOG_FORMAT",
}

// Config represents the root configuration.
type Config struct {
	Server  ServerConfig   `toml:"server"`
	Pages   PagesConfig    `toml:"pages"`
	Logging logging.Config `toml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string `toml:"addr"`
	Router          string `toml:"router"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// PagesConfig configures page discovery and the route table.
type PagesConfig struct {
	// Dir is the directory the convention prefix is resolved against.
	Dir     string `toml:"dir"`
	Prefix  string `toml:"prefix"`
	Suffix  string `toml:"suffix"`
	History string `toml:"history"`
	// Lenient keeps non-conforming keys as the empty-name route instead of
	// rejecting them. Nil means unset, so an overlay can turn it off again.
	Lenient *bool `toml:"lenient"`
}

// Load reads path and applies the overlay selected by PAGEROUTES_ENV. A
// missing base file yields an empty configuration.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	if p := overlayPath(path); p != "" {
		overlay, err := load(p)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", p, err)
		}
		cfg.Merge(overlay)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Logging.Finalize(logEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Validate checks the configuration without reapplying environment overrides,
// for use after command line flags were merged in.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Logging.Finalize(nil); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	c.Server.Merge(&overlay.Server)
	c.Pages.Merge(&overlay.Pages)
	c.Logging.Merge(&overlay.Logging)
}

func (s *ServerConfig) Merge(o *ServerConfig) {
	if o.Addr != "" {
		s.Addr = o.Addr
	}
	if o.Router != "" {
		s.Router = o.Router
	}
	if o.ShutdownTimeout != "" {
		s.ShutdownTimeout = o.ShutdownTimeout
	}
}

func (p *PagesConfig) Merge(o *PagesConfig) {
	if o.Dir != "" {
		p.Dir = o.Dir
	}
	if o.Prefix != "" {
		p.Prefix = o.Prefix
	}
	if o.Suffix != "" {
		p.Suffix = o.Suffix
	}
	if o.History != "" {
		p.History = o.History
	}
	if o.Lenient != nil {
		v := *o.Lenient
		p.Lenient = &v
	}
}

// IsLenient reports whether non-conforming pages are kept.
func (p *PagesConfig) IsLenient() bool {
	return p.Lenient != nil && *p.Lenient
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout.
func (s *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(s.ShutdownTimeout)
	return d
}

// Convention returns the page naming convention.
func (p *PagesConfig) Convention() pageroutes.Convention {
	return pageroutes.Convention{Prefix: p.Prefix, Suffix: p.Suffix}
}

// HistoryMode parses History. Finalize has already validated it.
func (p *PagesConfig) HistoryMode() pageroutes.History {
	h, _ := pageroutes.ParseHistory(p.History)
	return h
}

func (c *Config) loadDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.Router == "" {
		c.Server.Router = "std"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}
	if c.Pages.Dir == "" {
		c.Pages.Dir = "."
	}
	if c.Pages.Prefix == "" {
		c.Pages.Prefix = pageroutes.DefaultConvention.Prefix
	}
	if c.Pages.Suffix == "" {
		c.Pages.Suffix = pageroutes.DefaultConvention.Suffix
	}
	if c.Pages.History == "" {
		c.Pages.History = pageroutes.WebHistory.String()
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvRouter); v != "" {
		c.Server.Router = v
	}
	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		c.Server.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvDir); v != "" {
		c.Pages.Dir = v
	}
	if v := os.Getenv(EnvHistory); v != "" {
		c.Pages.History = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	switch c.Server.Router {
	case "std", "chi":
	default:
		return fmt.Errorf("invalid router %q (must be std or chi)", c.Server.Router)
	}
	if _, err := pageroutes.ParseHistory(c.Pages.History); err != nil {
		return err
	}
	if !strings.HasSuffix(c.Pages.Prefix, "/") {
		return fmt.Errorf("invalid pages prefix %q (must end with /)", c.Pages.Prefix)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func overlayPath(base string) string {
	env := os.Getenv(EnvServiceEnv)
	if env == "" {
		return ""
	}
	ext := filepath.Ext(base)
	p := strings.TrimSuffix(base, ext) + "." + env + ext
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
