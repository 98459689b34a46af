package otel

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
)

// Setup configures the default slog logger and, when telemetry is enabled,
// the OTLP log, trace and metric pipelines.
func Setup(ctx context.Context, service, version string) error {
	level := slog.LevelInfo

	if EnableDebug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if !EnableTelemetry {
		return nil
	}

	resource, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewSchemaless(
			attribute.String("service.name", service),
			attribute.String("service.version", version),
		),
	)

	if err != nil {
		return err
	}

	if err := setupLogger(ctx, resource); err != nil {
		return err
	}

	if err := setupTracer(ctx, resource); err != nil {
		return err
	}

	if err := setupMeter(ctx, resource); err != nil {
		return err
	}

	return nil
}
