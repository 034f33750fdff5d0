package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/cache"
	"github.com/edgeviz/edgeviz/pkg/config"
	"github.com/edgeviz/edgeviz/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached layouts and render artifacts",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cacheStatsCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached layouts and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if c.cfg.Cache.Backend == config.CacheNone {
				printInfo("Cache is disabled")
				return nil
			}

			ca, err := openCache(ctx, c.cfg.Cache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer ca.Close()

			clearer, ok := ca.(cache.Clearer)
			if !ok {
				printInfo("Cache backend %q cannot be cleared", c.cfg.Cache.Backend)
				return nil
			}

			entries := int64(-1)
			if sp, ok := ca.(cache.StatsProvider); ok {
				if stats, err := sp.Stats(ctx); err == nil {
					entries = stats.Entries
				}
			}

			if err := clearer.Clear(ctx); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			if entries >= 0 {
				printSuccess("Cleared %d cached entries", entries)
			} else {
				printSuccess("Cache cleared")
			}
			c.printCacheTarget()
			return nil
		},
	}
}

// cacheStatsCommand creates the "cache stats" subcommand.
func (c *CLI) cacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache entry count and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if c.cfg.Cache.Backend == config.CacheNone {
				printInfo("Cache is disabled")
				return nil
			}

			ca, err := openCache(ctx, c.cfg.Cache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer ca.Close()

			sp, ok := ca.(cache.StatsProvider)
			if !ok {
				printInfo("Cache backend %q does not report stats", c.cfg.Cache.Backend)
				return nil
			}
			stats, err := sp.Stats(ctx)
			if err != nil {
				return fmt.Errorf("cache stats: %w", err)
			}

			printKeyValue("Backend", c.cfg.Cache.Backend)
			printKeyValue("Entries", fmt.Sprintf("%d", stats.Entries))
			if stats.Bytes > 0 {
				printKeyValue("Size", humanize.Bytes(uint64(stats.Bytes)))
			}
			if dir := c.cfg.Cache.ResolvedDir(); dir != "" && c.cfg.Cache.Backend == config.CacheFile {
				printKeyValue("Directory", dir)
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.cfg.Cache.Backend {
			case config.CacheRedis:
				fmt.Printf("redis://%s/%d\n", c.cfg.Cache.Addr, c.cfg.Cache.DB)
			case config.CacheNone:
				printInfo("Cache is disabled")
			default:
				dir := c.cfg.Cache.ResolvedDir()
				if dir == "" {
					return errors.New(errors.ErrCodeInvalidConfig, "cache directory could not be resolved")
				}
				fmt.Println(dir)
			}
			return nil
		},
	}
}

// printCacheTarget prints where the cache lives, as a detail line.
func (c *CLI) printCacheTarget() {
	switch c.cfg.Cache.Backend {
	case config.CacheRedis:
		printDetail("Redis: %s db %d", c.cfg.Cache.Addr, c.cfg.Cache.DB)
	case config.CacheFile:
		if dir := c.cfg.Cache.ResolvedDir(); dir != "" {
			printDetail("Directory: %s", dir)
		}
	}
}
