package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/app"
	"github.com/Mahafuj2040/mamar-bank/internal/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type serveRunner struct {
	app  *app.App
	addr string
}

func NewServeCmd(a *app.App) *cobra.Command {
	runner := &serveRunner{app: a}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Expose the banking operations as a JSON API under /api/v1.
The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			annotationLogLevel:    "info",
			annotationInteractive: "false",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&runner.addr, "addr", "", "Listen address (default from server.addr)")

	return cmd
}

func (r *serveRunner) Run(ctx context.Context) error {
	addr := r.addr
	if addr == "" {
		addr = r.app.Config.Server.Addr
	}

	srv := server.New(r.app.Service, r.app.Log, r.app.Config.Location())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Listen(addr); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		r.app.Log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			r.app.Log.Error("shutdown failed", zap.Error(err))
			return err
		}
		return nil
	})

	return g.Wait()
}
