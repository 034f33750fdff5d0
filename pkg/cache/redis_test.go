//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestRedisCache_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping integration test")
	}

	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisOptions{Addr: addr, DB: 15})
	if err != nil {
		t.Fatalf("NewRedisCache() error: %v", err)
	}
	defer c.Close()

	rc := c.(*RedisCache)
	if err := rc.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}

	if err := c.Set(ctx, "artifact:abc", []byte("<svg/>"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "<svg/>" {
		t.Errorf("Get = %q hit=%v, want <svg/> hit", data, hit)
	}

	stats, err := rc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.Entries != 1 {
		t.Errorf("Entries = %d, want 1", stats.Entries)
	}

	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:abc"); hit {
		t.Error("entry survived Delete")
	}
}
