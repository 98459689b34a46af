package limiter

import (
	"context"

	"github.com/adrianliechti/carousel/pkg/slide"
	"github.com/adrianliechti/carousel/pkg/webhook"

	"golang.org/x/time/rate"
)

type Deliverer interface {
	Limiter
	webhook.Deliverer
}

type limitedDeliverer struct {
	limiter  *rate.Limiter
	provider webhook.Deliverer
}

func NewDeliverer(l *rate.Limiter, p webhook.Deliverer) Deliverer {
	return &limitedDeliverer{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedDeliverer) limiterSetup() {
}

func (p *limitedDeliverer) Deliver(ctx context.Context, key string, number int) webhook.Result {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return webhook.Result{
				Number: number,
				File:   slide.FileName(number),

				Error: err,
			}
		}
	}

	return p.provider.Deliver(ctx, key, number)
}
