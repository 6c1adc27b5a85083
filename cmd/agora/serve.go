package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/agora-protocol/dashboard/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Long:  `Serves the snapshot and its derived view as a read-only JSON API with report downloads and Prometheus metrics. Stops on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("listen") {
				a.settings.ListenAddr = listen
				if err := a.settings.Validate(); err != nil {
					return err
				}
			}
			snap, err := a.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if !a.settings.Debug {
				gin.SetMode(gin.ReleaseMode)
			}

			router := server.New(snap, server.Options{
				AllowedOrigins: a.settings.AllowedOrigins,
				Logger:         a.logger,
			})

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, a.settings.ListenAddr, router, a.logger)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (host:port)")
	return cmd
}
