package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	HTTPAdapter "github.com/bnema/vidmerge/internal/adapter/http"
	"github.com/bnema/vidmerge/internal/adapter/http/middleware"
	sqlitestore "github.com/bnema/vidmerge/internal/adapter/storage/sqlite"
	"github.com/bnema/vidmerge/internal/infrastructure/logger"
	"github.com/bnema/vidmerge/internal/service"
)

const (
	cleanupInterval = time.Hour
	shutdownTimeout = 30 * time.Second
	portWaitTimeout = 10 * time.Second
)

func newServeCmd(a *app) *cobra.Command {
	var (
		host string
		port int
		open bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				if port < 1 || port > 65535 {
					return fmt.Errorf("invalid port: %d", port)
				}
				a.cfg.Port = port
			}
			return a.serve(cmd.Context(), open)
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "Listen address (default HOST)")
	cmd.Flags().IntVar(&port, "port", 8000, "Listen port (default PORT)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the UI in the default browser once the server is up")
	return cmd
}

func (a *app) serve(ctx context.Context, openBrowser bool) error {
	cfg := a.cfg
	logger.Info.Printf("starting vidmerge on %s, data=%s", cfg.Addr(), cfg.DataDir)

	if err := a.checker().CheckDeps(ctx); err != nil {
		// the UI still starts; each job reports the environment failure itself
		logger.Warn.Printf("environment check failed: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	store, err := sqlitestore.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open job store: %w", err)
	}
	defer func() { _ = store.Close() }()

	jobQueue := sqlitestore.NewJobQueue(store)
	eventBus := service.NewEventBus()
	jobSvc := service.NewJobService(store, jobQueue, cfg.DataDir, cfg.Retention)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	workerPool := service.NewWorkerPool(jobQueue, store, a.pipeline(), eventBus, cfg.DataDir, cfg.Workers)
	workerPool.Start(workerCtx)

	if err := jobSvc.Cleanup(); err != nil {
		logger.Error.Printf("cleanup failed: %v", err)
	}
	go jobSvc.RunCleanup(workerCtx, cleanupInterval)

	server := HTTPAdapter.NewServer(jobSvc, eventBus, middleware.NewCSRFProtection(cfg.CSRFSecret))
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info.Printf("server listening on http://%s", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	if openBrowser {
		go func() {
			addr := browserHost(cfg.Host, cfg.Port)
			if err := waitForPort(ctx, addr, portWaitTimeout); err != nil {
				logger.Warn.Printf("server not reachable, not opening browser: %v", err)
				return
			}
			if err := openURL("http://" + addr); err != nil {
				logger.Warn.Printf("could not open browser, visit http://%s: %v", addr, err)
			}
		}()
	}

	select {
	case err, ok := <-serveErr:
		if ok && err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info.Printf("shutting down")
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("http shutdown error: %v", err)
	}

	// Cancelling kills running ffmpeg/yt-dlp children; the job is requeued on next start.
	workerCancel()
	workerPool.Wait()

	logger.Info.Printf("shutdown complete")
	return nil
}

// browserHost maps wildcard listen addresses to loopback for the browser.
func browserHost(host string, port int) string {
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// waitForPort polls addr until it accepts TCP connections or timeout passes.
func waitForPort(ctx context.Context, addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	dialer := net.Dialer{Timeout: 500 * time.Millisecond}
	for {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%s not accepting connections after %s: %w", addr, timeout, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}
