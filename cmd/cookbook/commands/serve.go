package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/cookbook/internal/adapters/httpapi" //nolint:depguard // transport is chosen by the CLI
	"golang.org/x/sync/errgroup"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cookbook HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			seedPath, _ := cmd.Flags().GetString("seed")
			watch, _ := cmd.Flags().GetBool("watch")

			ctx := cmd.Context()
			if err := c.seed(ctx, seedPath); err != nil {
				return err
			}

			settings := c.settings.Server
			settings.Address = addr
			server := httpapi.NewServer(settings, c.app, c.logger)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return server.Serve(gctx)
			})
			if watch && seedPath != "" {
				g.Go(func() error {
					err := c.app.WatchSeed(gctx, seedPath)
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().String("addr", c.settings.Server.Address, "Address to listen on")
	cmd.Flags().String("seed", c.settings.Seed.Path, "Seed file loaded before serving")
	cmd.Flags().Bool("watch", c.settings.Seed.Watch, "Reload the seed file when it changes")
	return cmd
}
