package cli

import (
	"context"
	"io"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/config"
	"github.com/edgeviz/edgeviz/pkg/store"
)

func TestOpenStoreMemory(t *testing.T) {
	st, err := openStore(context.Background(), config.StoreConfig{Backend: config.StoreMemory})
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer st.Close(context.Background())

	if _, ok := st.(*store.MemoryStore); !ok {
		t.Errorf("openStore memory backend = %T, want *store.MemoryStore", st)
	}
}

func TestServeCommandFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.serveCommand()

	if cmd.Use != "serve" {
		t.Errorf("cmd.Use = %q, want %q", cmd.Use, "serve")
	}
	if cmd.Flags().Lookup("address") == nil {
		t.Error("serve command missing --address flag")
	}
}
