package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"projex/internal/server"
	"projex/internal/session"
)

func serveCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and the built frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVar(&f.addr, "addr", "", "HTTP listen address")
	cmd.Flags().StringVar(&f.staticDir, "static", "", "Directory with built frontend")
	return cmd
}

func serve(ctx context.Context, f *flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, f, os.Stdout)
	if err != nil {
		return err
	}
	defer a.close()

	a.logger.Info().Str("version", Version).Str("env", a.cfg.App.Env).Msg("projex starting")

	sessions, err := session.NewIssuer(a.cfg.JWT.Secret, a.cfg.JWT.Issuer, a.cfg.JWT.Expiration)
	if err != nil {
		return err
	}
	srv := server.New(a.actions, sessions, a.logger, a.cfg.HTTP.StaticDir)

	httpServer := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", httpServer.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error().Err(err).Msg("server stopped unexpectedly")
			return err
		}
	case <-quit:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("failed to shutdown server")
	}

	a.logger.Info().Msg("server stopped")
	return nil
}
