package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/carousel/pkg/generator"
	"github.com/adrianliechti/carousel/pkg/slide"
	"github.com/adrianliechti/carousel/pkg/webhook"

	"github.com/stretchr/testify/require"
)

type stubFonts struct {
	calls int
	err   error
}

func (f *stubFonts) EnsureAvailable(ctx context.Context) error {
	f.calls++
	return f.err
}

type stubRenderer struct {
	rendered []int
	failOn   int
}

func (r *stubRenderer) Render(ctx context.Context, s slide.Slide) (string, error) {
	if r.failOn != 0 && s.Number == r.failOn {
		return "", errors.New("render failed")
	}

	r.rendered = append(r.rendered, s.Number)
	return slide.FileName(s.Number), nil
}

type stubDeliverer struct {
	delivered []string
	status    map[int]int
}

func (d *stubDeliverer) Deliver(ctx context.Context, key string, number int) webhook.Result {
	d.delivered = append(d.delivered, key)

	status := 200

	if s, ok := d.status[number]; ok {
		status = s
	}

	return webhook.Result{Number: number, File: slide.FileName(number), StatusCode: status}
}

func TestGenerate(t *testing.T) {
	fonts := &stubFonts{}
	renderer := &stubRenderer{}
	deliverer := &stubDeliverer{}

	g, err := generator.New(fonts, renderer, deliverer)
	require.NoError(t, err)

	slides := []slide.Slide{{Number: 1, Type: "title"}, {Number: 2}, {Number: 3, Type: "quote"}}

	result, err := g.Generate(context.Background(), slides)
	require.NoError(t, err)

	require.Equal(t, 3, result.Count())
	require.NotEmpty(t, result.ID)
	require.Equal(t, 1, fonts.calls)
	require.Equal(t, []int{1, 2, 3}, renderer.rendered)
	require.Equal(t, []string{"post1.png", "post2.png", "post3.png"}, deliverer.delivered)

	for i, post := range result.Posts {
		require.Equal(t, slides[i].Number, post.Number)
		require.True(t, post.Delivery.OK())
	}
}

func TestGenerateEmpty(t *testing.T) {
	fonts := &stubFonts{}
	renderer := &stubRenderer{}
	deliverer := &stubDeliverer{}

	g, err := generator.New(fonts, renderer, deliverer)
	require.NoError(t, err)

	for _, slides := range [][]slide.Slide{nil, {}} {
		_, err = g.Generate(context.Background(), slides)

		require.ErrorIs(t, err, generator.ErrNoSlides)
		require.Equal(t, generator.KindValidation, generator.KindOf(err))
		require.EqualError(t, err, "No slides provided")
	}

	require.Zero(t, fonts.calls)
	require.Empty(t, renderer.rendered)
	require.Empty(t, deliverer.delivered)
}

func TestGenerateFontFailure(t *testing.T) {
	fonts := &stubFonts{err: errors.New("download failed")}
	renderer := &stubRenderer{}
	deliverer := &stubDeliverer{}

	g, err := generator.New(fonts, renderer, deliverer)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), []slide.Slide{{Number: 1}})
	require.EqualError(t, err, "download failed")
	require.Equal(t, generator.KindFont, generator.KindOf(err))
	require.Empty(t, renderer.rendered)
}

func TestGenerateRenderFailure(t *testing.T) {
	renderer := &stubRenderer{failOn: 2}
	deliverer := &stubDeliverer{}

	g, err := generator.New(&stubFonts{}, renderer, deliverer)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), []slide.Slide{{Number: 1}, {Number: 2}, {Number: 3}})
	require.Equal(t, generator.KindRender, generator.KindOf(err))
	require.Equal(t, []int{1}, renderer.rendered)
	require.Equal(t, []string{"post1.png"}, deliverer.delivered)
}

func TestGenerateDeliveryFailureContinues(t *testing.T) {
	renderer := &stubRenderer{}
	deliverer := &stubDeliverer{status: map[int]int{1: 500}}

	g, err := generator.New(&stubFonts{}, renderer, deliverer)
	require.NoError(t, err)

	result, err := g.Generate(context.Background(), []slide.Slide{{Number: 1}, {Number: 2}})
	require.NoError(t, err)
	require.Equal(t, 2, result.Count())
	require.Equal(t, []string{"post1.png", "post2.png"}, deliverer.delivered)

	require.False(t, result.Posts[0].Delivery.OK())
	require.Equal(t, generator.KindDelivery, generator.KindOf(result.Posts[0].Delivery.Error))
	require.EqualError(t, result.Posts[0].Delivery.Error, "unexpected status 500")

	require.True(t, result.Posts[1].Delivery.OK())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, generator.KindUnknown, generator.KindOf(errors.New("plain")))
	require.Equal(t, generator.KindUnknown, generator.KindOf(nil))
}

func TestNew(t *testing.T) {
	_, err := generator.New(nil, &stubRenderer{}, &stubDeliverer{})
	require.Error(t, err)

	_, err = generator.New(&stubFonts{}, nil, &stubDeliverer{})
	require.Error(t, err)

	_, err = generator.New(&stubFonts{}, &stubRenderer{}, nil)
	require.Error(t, err)
}
