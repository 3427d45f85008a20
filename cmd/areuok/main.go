// Areuok - Daily Check-In and Supervision
//
// A local-first CLI for recording daily check-ins, keeping streaks, and
// letting trusted devices supervise each other's check-in state.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/areuok/areuok/internal/cli"
	"github.com/areuok/areuok/internal/config"
	"github.com/areuok/areuok/internal/db"
	"github.com/areuok/areuok/internal/log"
	"github.com/areuok/areuok/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load config and open database for persistent tracking ID
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	if err := log.Init(paths.LogDir); err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = log.Close()
	}()

	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = database.Close()
	}()

	// Use persistent tracking ID from database
	telemetryClient := telemetry.New(database)
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
