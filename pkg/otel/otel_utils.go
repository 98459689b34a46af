package otel

import (
	"context"
	"net/http"

	"github.com/adrianliechti/carousel/pkg/auth"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

type KeyValue = attribute.KeyValue

func String(key string, val string) KeyValue {
	return attribute.String(key, val)
}

func Int(key string, val int) KeyValue {
	return attribute.Int(key, val)
}

func KeyValues(attrs ...[]KeyValue) []KeyValue {
	var result []KeyValue

	for _, a := range attrs {
		result = append(result, a...)
	}

	return result
}

func EndUserAttrs(ctx context.Context) []KeyValue {
	var attrs []KeyValue

	if user, ok := ctx.Value(auth.UserContextKey).(string); ok && user != "" {
		attrs = append(attrs, attribute.String("enduser.id", user))
	}

	return attrs
}

// Handler wraps an HTTP handler with server spans and metrics.
func Handler(h http.Handler, operation string) http.Handler {
	if !EnableTelemetry {
		return h
	}

	return otelhttp.NewHandler(h, operation)
}

// Transport wraps an outbound round tripper with client spans.
func Transport(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}

	if !EnableTelemetry {
		return rt
	}

	return otelhttp.NewTransport(rt)
}
