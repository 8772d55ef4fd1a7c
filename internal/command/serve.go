package command

import (
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/posternapp/postern/internal/app"
	"github.com/posternapp/postern/internal/server"
	"github.com/posternapp/postern/internal/store"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the web application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			// The store lives for the whole process; per-request state is
			// constructed inside the app's auth middleware.
			users := store.NewMemory(store.Seed()...)
			srv := app.New(cfg, logger, users)

			grp, ctx := errgroup.WithContext(cmd.Context())
			addr, err := server.Run(ctx, grp, srv, cfg.ListenAddress)
			if err != nil {
				return err
			}

			logger.InfoContext(ctx,
				"starting app server...",
				slog.String("address", addr.String()),
			)
			return grp.Wait()
		},
	}
}
