// Package main is the journald editor server: the journal engine over HTTP
// for editors that prefer a long-lived process to shelling out per keystroke.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shunichi-ikebuchi/journalfmt/internal/api"
	"github.com/shunichi-ikebuchi/journalfmt/pkg/accounts"
	"github.com/shunichi-ikebuchi/journalfmt/pkg/config"
	"github.com/shunichi-ikebuchi/journalfmt/pkg/db"
	"github.com/shunichi-ikebuchi/journalfmt/pkg/pathutil"
)

const defaultPort = "8080"

func main() {
	// Setup structured JSON logging.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(config.Overrides{}, os.Getenv("JOURNALFMT_CONFIG"), "")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	// The account index only exists when a workspace is configured; the
	// text endpoints work without one.
	var index *accounts.Index
	if cfg.Workspace != "" {
		resolver := pathutil.New(pathutil.Config{
			WorkspaceRoot: cfg.Workspace,
			CachePath:     cfg.CacheDB,
		})

		var store *db.AccountStore
		conn, err := db.Open(resolver.GetCachePath())
		if err != nil {
			slog.Warn("account cache unavailable", "error", err, "path", resolver.GetCachePath())
		} else {
			defer func() {
				if err := conn.Close(); err != nil {
					slog.Error("failed to close account cache", "error", err)
				}
			}()
			store = db.NewAccountStore(conn)
		}

		index = accounts.NewIndex(resolver, store, cfg.RefreshInterval)
		slog.Info("account index enabled", "workspace", cfg.Workspace)
	}

	handler := api.NewHandler(cfg.Options, index)
	router := api.NewRouter(handler)

	addr := fmt.Sprintf(":%s", port)
	slog.Info("starting journald", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("shutting down server")
		if err := server.Close(); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
