package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/carousel/config"
	"github.com/adrianliechti/carousel/pkg/otel"
	"github.com/adrianliechti/carousel/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "config file")

	flag.Parse()

	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := otel.Setup(ctx, "carousel", version); err != nil {
		slog.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to parse config", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
