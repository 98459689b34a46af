package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adrianliechti/carousel/pkg/slide"
	"github.com/adrianliechti/carousel/pkg/webhook"

	"github.com/google/uuid"
)

// FontProvider makes sure the fonts a renderer needs are present.
type FontProvider interface {
	EnsureAvailable(ctx context.Context) error
}

type Generator struct {
	fonts     FontProvider
	renderer  slide.Renderer
	deliverer webhook.Deliverer
}

type Result struct {
	ID string

	Posts []Post
}

func (r *Result) Count() int {
	return len(r.Posts)
}

type Post struct {
	Number int
	File   string

	Delivery webhook.Result
}

func New(fonts FontProvider, renderer slide.Renderer, deliverer webhook.Deliverer) (*Generator, error) {
	if fonts == nil {
		return nil, errors.New("font provider is required")
	}

	if renderer == nil {
		return nil, errors.New("renderer is required")
	}

	if deliverer == nil {
		return nil, errors.New("deliverer is required")
	}

	return &Generator{
		fonts:     fonts,
		renderer:  renderer,
		deliverer: deliverer,
	}, nil
}

// Generate renders and delivers every slide in order. Fonts are ensured once
// up front. Delivery failures are recorded per post and do not stop the batch;
// font and render failures abort it.
func (g *Generator) Generate(ctx context.Context, slides []slide.Slide) (*Result, error) {
	if len(slides) == 0 {
		return nil, wrap(KindValidation, ErrNoSlides)
	}

	id, err := uuid.NewV7()

	if err != nil {
		id = uuid.New()
	}

	logger := slog.With("batch", id.String())

	if err := g.fonts.EnsureAvailable(ctx); err != nil {
		return nil, wrap(KindFont, err)
	}

	result := &Result{
		ID: id.String(),

		Posts: make([]Post, 0, len(slides)),
	}

	for _, s := range slides {
		key, err := g.renderer.Render(ctx, s)

		if err != nil {
			return nil, wrap(KindRender, err)
		}

		delivery := g.deliverer.Deliver(ctx, key, s.Number)

		if !delivery.OK() {
			delivery.Error = wrap(KindDelivery, deliveryError(delivery))

			logger.WarnContext(ctx, "continuing after failed delivery", "slide", s.Number, "status", delivery.StatusCode)
		}

		result.Posts = append(result.Posts, Post{
			Number: s.Number,
			File:   key,

			Delivery: delivery,
		})
	}

	logger.InfoContext(ctx, "batch generated", "posts", result.Count())

	return result, nil
}

func deliveryError(r webhook.Result) error {
	if r.Error != nil {
		return r.Error
	}

	return fmt.Errorf("unexpected status %d", r.StatusCode)
}
