package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/texasfightcollective/fight-night-api/internal/api"
	"github.com/texasfightcollective/fight-night-api/internal/config"
	"github.com/texasfightcollective/fight-night-api/internal/intake"
	"github.com/texasfightcollective/fight-night-api/internal/mailer"
	"github.com/texasfightcollective/fight-night-api/internal/pkg/logger"
	"github.com/texasfightcollective/fight-night-api/internal/pkg/metrics"
	"github.com/texasfightcollective/fight-night-api/internal/store"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %w", port, addr, err)
	}
	ln.Close()
	return nil
}

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	host := cfg.Server.GetHost()
	if err := checkPortAvailable(host, cfg.Server.Port); err != nil {
		logger.Error("pre-flight check failed", "error", err.Error())
		os.Exit(1)
	}

	// Store: MongoDB in any real deployment; in-memory fallback so the form
	// flow can be exercised locally without a database.
	var st store.Store
	if cfg.Mongo.URI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoStore, err := store.NewMongo(ctx, cfg.Mongo)
		cancel()
		if err != nil {
			logger.Error("failed to connect to MongoDB", "error", err.Error())
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoStore.Close(ctx)
		}()
		st = mongoStore
		logger.Info("connected to MongoDB", "database", cfg.Mongo.Database)
	} else {
		st = store.NewMemory()
		logger.Warn("MONGO_URI not set; using in-memory store (submissions are lost on restart)")
	}

	svc := intake.NewService(st, mailer.New(cfg.Email), metrics.New())
	server := api.NewServer(api.NewHandlers(svc, st))

	addr := fmt.Sprintf("%s:%d", host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("intake API listening", "addr", addr, "relay", cfg.Email.Addr())
		errCh <- server.ListenAndServe(addr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server exited", "error", err.Error())
		os.Exit(1)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err.Error())
	}
}
