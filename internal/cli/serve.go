package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/internal/server"
	"github.com/edgeviz/edgeviz/pkg/config"
	"github.com/edgeviz/edgeviz/pkg/store"
)

// serveCommand creates the serve command running the HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering and plot-store server",
		Long: `Run the HTTP rendering and plot-store server.

The server renders graphs on demand (POST /api/render), stores named
plots (/api/plots), and streams render events over a websocket
(/api/live). Backends for the plot store (memory or MongoDB) and the
artifact cache (file, Redis, or none) come from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), address)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "listen address (overrides config)")

	return cmd
}

// runServe wires the configured backends into a server and runs it until
// the context is canceled.
func (c *CLI) runServe(ctx context.Context, address string) error {
	cfg := c.cfg
	if address != "" {
		cfg.Server.Address = address
	}

	// With a logfile configured the server logs rotate on disk instead
	// of going to stderr.
	logger := c.Logger
	if cfg.Logging.Logfile != "" {
		logger = newLogger(cfg.Logging.Writer(), c.Logger.GetLevel())
	}

	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	defer st.Close(context.Background())

	ca, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("open %s cache: %w", cfg.Cache.Backend, err)
	}
	defer ca.Close()

	printInfo("Serving on http://%s", cfg.Server.Address)
	printDetail("store: %s · cache: %s · press Ctrl+C to stop", cfg.Store.Backend, cfg.Cache.Backend)

	return server.New(cfg, st, ca, logger).Run(ctx)
}

// openStore constructs the configured plot store backend.
func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	if cfg.Backend == config.StoreMongo {
		return store.NewMongoStore(ctx, store.MongoOptions{
			URI:      cfg.URI,
			Database: cfg.Database,
		})
	}
	return store.NewMemoryStore(), nil
}
