package cli

import (
	"context"
	"io"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/config"
)

func TestCacheCommandStructure(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.cacheCommand()

	if cmd.Use != "cache" {
		t.Errorf("cmd.Use = %q, want %q", cmd.Use, "cache")
	}

	want := map[string]bool{
		"clear": false,
		"stats": false,
		"path":  false,
	}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("cache subcommand %q not registered", name)
		}
	}
}

func TestCacheClearDisabled(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.cfg.Cache.Backend = config.CacheNone

	cmd := c.cacheClearCommand()
	cmd.SetContext(context.Background())
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Errorf("clear with disabled cache should be a no-op, got %v", err)
	}
}

func TestCacheStats(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.cfg.Cache.Dir = t.TempDir()

	cmd := c.cacheStatsCommand()
	cmd.SetContext(context.Background())
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Errorf("stats on empty cache: %v", err)
	}
}

func TestCachePathFile(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.cfg.Cache.Dir = t.TempDir()

	cmd := c.cachePathCommand()
	cmd.SetContext(context.Background())
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Errorf("path with file backend: %v", err)
	}
}
