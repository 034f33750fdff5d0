// Package cli implements the edgeviz command-line interface.
//
// This package provides commands for computing graph layouts, rendering
// edge plots to various formats, serving the HTTP API, and managing the
// local result cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Draw a graph as SVG, PNG, HTML, DOT, PDF, or layout JSON
//   - layout: Compute node positions and save them for later renders
//   - serve: Run the HTTP rendering and plot-store server
//   - cache: Inspect or clear cached layouts and artifacts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The
// logger lives on the CLI struct shared by every command.
//
// # Example
//
//	import "github.com/edgeviz/edgeviz/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/buildinfo"
	"github.com/edgeviz/edgeviz/pkg/cache"
	"github.com/edgeviz/edgeviz/pkg/config"
	"github.com/edgeviz/edgeviz/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "edgeviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The configuration file named by --config (or the default path, when it
// exists) is loaded before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Edgeviz draws graph edges with configurable arrowheads",
		Long:         `Edgeviz renders directed and undirected graphs as edge plots with triangular or rectangular arrowheads, from the command line or over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+configPathHint()+")")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configPathHint returns the default config path for flag help, or a
// generic placeholder when the home directory cannot be resolved.
func configPathHint() string {
	if path := config.DefaultPath(); path != "" {
		return path
	}
	return "~/.config/" + appName + "/config.toml"
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the cache backend selected by the loaded config. With
// noCache, or when the backend cannot be initialized, it falls back to a
// null cache so commands keep working without caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache || c.cfg.Cache.Backend == config.CacheNone {
		return cache.NewNullCache()
	}
	ca, err := openCache(ctx, c.cfg.Cache)
	if err != nil {
		c.Logger.Debugf("Cache unavailable, continuing without: %v", err)
		return cache.NewNullCache()
	}
	return ca
}

// openCache constructs the configured backend, erroring instead of
// falling back. The cache subcommands use it so failures are visible.
func openCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	case config.CacheNone:
		return cache.NewNullCache(), nil
	default:
		dir := cfg.ResolvedDir()
		if dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "cache directory could not be resolved")
		}
		return cache.NewFileCache(dir)
	}
}

// =============================================================================
// Flag Helpers
// =============================================================================

// splitList parses a comma-separated flag value into its non-empty parts.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return splitList(s)
}
