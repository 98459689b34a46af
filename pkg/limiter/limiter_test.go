package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/adrianliechti/carousel/pkg/limiter"
	"github.com/adrianliechti/carousel/pkg/slide"
	"github.com/adrianliechti/carousel/pkg/webhook"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type countingDeliverer struct {
	calls int
}

func (d *countingDeliverer) Deliver(ctx context.Context, key string, number int) webhook.Result {
	d.calls++

	return webhook.Result{Number: number, File: slide.FileName(number), StatusCode: 200}
}

type countingRenderer struct {
	calls int
}

func (r *countingRenderer) Render(ctx context.Context, s slide.Slide) (string, error) {
	r.calls++
	return slide.FileName(s.Number), nil
}

func TestDeliverer(t *testing.T) {
	t.Run("without limiter", func(t *testing.T) {
		d := &countingDeliverer{}
		l := limiter.NewDeliverer(nil, d)

		result := l.Deliver(context.Background(), "post1.png", 1)
		require.True(t, result.OK())
		require.Equal(t, 1, d.calls)
	})

	t.Run("cancelled wait", func(t *testing.T) {
		d := &countingDeliverer{}
		l := limiter.NewDeliverer(rate.NewLimiter(rate.Every(time.Hour), 1), d)

		result := l.Deliver(context.Background(), "post1.png", 1)
		require.True(t, result.OK())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result = l.Deliver(ctx, "post2.png", 2)
		require.False(t, result.OK())
		require.Error(t, result.Error)
		require.Equal(t, "post2.png", result.File)
		require.Equal(t, 1, d.calls)
	})
}

func TestRenderer(t *testing.T) {
	r := &countingRenderer{}
	l := limiter.NewRenderer(rate.NewLimiter(rate.Every(time.Hour), 1), r)

	key, err := l.Render(context.Background(), slide.Slide{Number: 4})
	require.NoError(t, err)
	require.Equal(t, "post4.png", key)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.Render(ctx, slide.Slide{Number: 5})
	require.Error(t, err)
	require.Equal(t, 1, r.calls)
}
