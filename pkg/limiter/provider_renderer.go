package limiter

import (
	"context"

	"github.com/adrianliechti/carousel/pkg/slide"

	"golang.org/x/time/rate"
)

type Renderer interface {
	Limiter
	slide.Renderer
}

type limitedRenderer struct {
	limiter  *rate.Limiter
	provider slide.Renderer
}

func NewRenderer(l *rate.Limiter, p slide.Renderer) Renderer {
	return &limitedRenderer{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedRenderer) limiterSetup() {
}

func (p *limitedRenderer) Render(ctx context.Context, s slide.Slide) (string, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	return p.provider.Render(ctx, s)
}
