package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/carousel/pkg/slide"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Renderer interface {
	Observable
	slide.Renderer
}

type observableRenderer struct {
	renderer slide.Renderer

	durationMetric metric.Float64Histogram
}

func NewRenderer(p slide.Renderer) Renderer {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("carousel.render.duration",
		metric.WithDescription("Duration of slide rendering"),
		metric.WithUnit("s"),
	)

	return &observableRenderer{
		renderer: p,

		durationMetric: durationMetric,
	}
}

func (p *observableRenderer) otelSetup() {
}

func (p *observableRenderer) Render(ctx context.Context, s slide.Slide) (string, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "render slide", trace.WithAttributes(
		attribute.Int("slide.number", s.Number),
		attribute.String("slide.type", string(s.Kind())),
	))
	defer span.End()

	timestamp := time.Now()

	key, err := p.renderer.Render(ctx, s)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if p.durationMetric != nil {
		p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(),
			metric.WithAttributes(attribute.String("slide.type", string(s.Kind()))),
		)
	}

	return key, err
}
