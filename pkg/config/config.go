// Package config loads edgeviz configuration from a TOML file.
//
// Configuration feeds the serve command and the CLI's render defaults.
// Values resolve in three layers: built-in defaults, then the TOML
// file, then command-line flags at the call sites. A missing file at
// the default path is fine and yields the built-ins; an explicitly
// requested file must exist and parse.
//
// A complete file looks like:
//
//	[server]
//	address = "localhost:8080"
//	cors_origins = ["https://viz.example.com"]
//
//	[cache]
//	backend = "redis"
//	addr = "localhost:6379"
//	db = 2
//
//	[store]
//	backend = "mongo"
//	uri = "mongodb://localhost:27017"
//
//	[logging]
//	logfile = "/var/log/edgeviz/serve.log"
//	max_log_size = 100
//	max_log_age = 30
//
//	[render]
//	width = 800
//	height = 600
//	fraction = 0.15
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/lumberjack"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/style"
)

// Cache backend names accepted in [cache].backend.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Store backend names accepted in [store].backend.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Config is the full configuration tree, one field per TOML section.
type Config struct {
	Server  ServerConfig `toml:"server"`
	Cache   CacheConfig  `toml:"cache"`
	Store   StoreConfig  `toml:"store"`
	Logging LogConfig    `toml:"logging"`
	Render  RenderConfig `toml:"render"`
}

// ServerConfig tunes the HTTP server.
type ServerConfig struct {
	// Address is the listen address for edgeviz serve.
	Address string `toml:"address"`

	// CORSOrigins lists the allowed cross-origin hosts. "*" allows any.
	CORSOrigins []string `toml:"cors_origins"`
}

// CacheConfig selects and tunes the layout and artifact cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "none".
	Backend string `toml:"backend"`

	// Dir is the file backend's directory. Empty resolves to the user
	// cache directory.
	Dir string `toml:"dir"`

	// Addr, Password, and DB configure the redis backend.
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ResolvedDir returns the file backend directory, falling back to
// ~/.cache/edgeviz when unset.
func (c CacheConfig) ResolvedDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "edgeviz")
}

// StoreConfig selects the plot store backend.
type StoreConfig struct {
	// Backend is "memory" or "mongo".
	Backend string `toml:"backend"`

	// URI and Database configure the mongo backend.
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// LogConfig routes server logs to a rotating file.
type LogConfig struct {
	// Logfile enables file logging when set; empty logs to stderr.
	Logfile string `toml:"logfile"`

	// MaxSize is the rotation threshold in megabytes.
	MaxSize int `toml:"max_log_size"`

	// MaxAge is how many days rotated files are kept.
	MaxAge int `toml:"max_log_age"`
}

// Writer returns the log destination: a rotating file when Logfile is
// set, stderr otherwise.
func (c LogConfig) Writer() io.Writer {
	if c.Logfile == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
}

// RenderConfig sets the drawing defaults applied when flags are absent.
type RenderConfig struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Fraction float64 `toml:"fraction"`
	Style    string  `toml:"style"`
	Colormap string  `toml:"colormap"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:     "localhost:8080",
			CORSOrigins: []string{"*"},
		},
		Cache: CacheConfig{
			Backend: CacheFile,
		},
		Store: StoreConfig{
			Backend: StoreMemory,
			URI:     "mongodb://localhost:27017",
		},
		Logging: LogConfig{
			MaxSize: 100,
			MaxAge:  30,
		},
		Render: RenderConfig{
			Width:    800,
			Height:   600,
			Fraction: geom.DefaultFraction,
			Style:    string(style.Solid),
			Colormap: string(style.Viridis),
		},
	}
}

// DefaultPath returns ~/.config/edgeviz/config.toml, or "" when the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "edgeviz", "config.toml")
}

// Load reads a configuration file over the built-in defaults. An empty
// path tries [DefaultPath] and silently keeps the defaults when no
// file exists there; a non-empty path must exist. Unknown keys are
// rejected so a typo fails loudly instead of silently using a default.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown config keys in %s: %v", path, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields and numeric ranges. Load calls it
// after merging; call it directly when building a Config in code.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server address cannot be empty")
	}

	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (want file, redis, or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend redis requires addr")
	}

	switch c.Store.Backend {
	case StoreMemory, StoreMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown store backend %q (want memory or mongo)", c.Store.Backend)
	}
	if c.Store.Backend == StoreMongo && c.Store.URI == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "store backend mongo requires uri")
	}

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"render size %dx%d must be positive", c.Render.Width, c.Render.Height)
	}
	if c.Render.Fraction < 0 || c.Render.Fraction > 1 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"render fraction %g must be within [0, 1]", c.Render.Fraction)
	}
	if _, err := style.ParseLineStyle(c.Render.Style); err != nil {
		return err
	}
	if !style.Colormap(c.Render.Colormap).Valid() {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown colormap %q", c.Render.Colormap)
	}
	return nil
}
