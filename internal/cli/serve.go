package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/billsplit/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the BillService over Connect (h2c)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, a)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().String("jwt-secret", "", "secret used to sign session tokens (random when empty)")
	cmd.Flags().String("token-ttl", "", "session token lifetime, e.g. 24h")
	cmd.Flags().String("shutdown-timeout", "", "graceful shutdown timeout, e.g. 10s")
	return cmd
}

func runServer(ctx context.Context, a *app) error {
	srv, err := server.New(a.cfg)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
