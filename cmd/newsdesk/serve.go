package main

import (
	"context"
	"time"

	ndhttp "github.com/fwojciec/newsdesk/http"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until deps.Ctx is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config.Server
	addr := cfg.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	srv := ndhttp.NewServer(addr, deps.Summarizer, deps.Logger,
		ndhttp.WithAllowedOrigins(cfg.AllowedOrigins...),
		ndhttp.WithReadTimeout(cfg.ReadTimeout),
		ndhttp.WithWriteTimeout(cfg.WriteTimeout),
		ndhttp.WithIdleTimeout(cfg.IdleTimeout),
	)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down", "timeout", shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
