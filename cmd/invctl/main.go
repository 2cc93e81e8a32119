// Command invctl inspects the inventory store from a shell.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/osse101/InventoryManager_Go/internal/config"
	"github.com/osse101/InventoryManager_Go/internal/database"
	"github.com/osse101/InventoryManager_Go/internal/logger"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	registry := defaultRegistry()
	if len(args) < 1 {
		registry.PrintHelp(stderr)
		return 2
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		registry.PrintHelp(stderr)
		return 2
	}

	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// Logs go to stderr so stdout stays parseable JSON.
	logger.InitLoggerWithWriter(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "invctl", cfg.Version, cfg.Environment, false), stderr)

	db, err := database.Open(ctx, database.Options{
		Path:           cfg.DBPath,
		ReaderPoolSize: 1,
		BusyTimeout:    cfg.BusyTimeout,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer db.Close()

	if err := cmd.Run(ctx, newEnv(db, stdout), args[1:]); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
		return 1
	}
	return 0
}
