package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/InventoryManager_Go/internal/bootstrap"
	"github.com/osse101/InventoryManager_Go/internal/config"
	"github.com/osse101/InventoryManager_Go/internal/database"
	"github.com/osse101/InventoryManager_Go/internal/database/sqlite"
	"github.com/osse101/InventoryManager_Go/internal/lifecycle"
	"github.com/osse101/InventoryManager_Go/internal/server"
	"github.com/osse101/InventoryManager_Go/internal/snapshot"
	"github.com/osse101/InventoryManager_Go/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	slog.Info(bootstrap.LogMsgStarting, "version", cfg.Version, "environment", cfg.Environment)

	ctx := context.Background()
	db, err := database.Open(ctx, database.Options{
		Path:           cfg.DBPath,
		ReaderPoolSize: cfg.ReaderPoolSize,
		BusyTimeout:    cfg.BusyTimeout,
	})
	if err != nil {
		slog.Error("Failed to open store", "path", cfg.DBPath, "error", err)
		_ = logFile.Close()
		os.Exit(1)
	}

	users := user.NewService(sqlite.NewUserRepository(db), user.CacheConfig{
		Size: cfg.UserCacheSize,
		TTL:  cfg.UserCacheTTL,
	})
	snapshots := snapshot.NewService(sqlite.NewSnapshotRepository(db), nil)
	manager := lifecycle.NewManager(users, snapshots)

	srv := server.NewServer(
		server.Options{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
		},
		server.Dependencies{
			Store:     db,
			Users:     users,
			Snapshots: snapshots,
			Lifecycle: manager,
		},
	)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Store:  db,
		Log:    logFile,
	})
}
