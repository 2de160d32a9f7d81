package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/anytime-contest/cliparse"
	"github.com/danielhkuo/anytime-contest/router"
	"github.com/danielhkuo/anytime-contest/storage"
)

func main() {
	var err error

	// Load .env if present (dev convenience; real deployments set real env)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Debug() {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	slog.Info("Starting ANYTIME Contest API", "environment", cfg.Environment)

	// Select the storage backend (computed once; restart to re-evaluate)
	store := storage.Select(context.Background(), cfg)
	defer store.Close()
	slog.Info("Storage backend selected", "backend", store.Backend())
	slog.Info("CORS origins", "origins", cfg.CORSOrigins, "pattern", cfg.CORSOriginPattern)

	// Create router
	handler := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "addr", server.Addr)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
