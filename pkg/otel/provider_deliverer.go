package otel

import (
	"context"

	"github.com/adrianliechti/carousel/pkg/webhook"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Deliverer interface {
	Observable
	webhook.Deliverer
}

type observableDeliverer struct {
	deliverer webhook.Deliverer

	deliveryMetric metric.Int64Counter
}

func NewDeliverer(p webhook.Deliverer) Deliverer {
	meter := otel.Meter(instrumentationName)

	deliveryMetric, _ := meter.Int64Counter("carousel.delivery.count",
		metric.WithDescription("Number of webhook deliveries by outcome"),
	)

	return &observableDeliverer{
		deliverer: p,

		deliveryMetric: deliveryMetric,
	}
}

func (p *observableDeliverer) otelSetup() {
}

func (p *observableDeliverer) Deliver(ctx context.Context, key string, number int) webhook.Result {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "deliver post", trace.WithAttributes(
		attribute.Int("slide.number", number),
	))
	defer span.End()

	result := p.deliverer.Deliver(ctx, key, number)

	span.SetAttributes(attribute.Int("http.response.status_code", result.StatusCode))

	outcome := "success"

	if !result.OK() {
		outcome = "failure"

		if result.Error != nil {
			span.RecordError(result.Error)
		}

		span.SetStatus(codes.Error, "delivery failed")
	}

	if p.deliveryMetric != nil {
		p.deliveryMetric.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}

	return result
}
