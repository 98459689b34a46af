package slide

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adrianliechti/carousel/pkg/canvas"
	"github.com/adrianliechti/carousel/pkg/storage"

	"golang.org/x/image/font"
)

// Renderer turns a slide into a stored image and returns its storage key.
type Renderer interface {
	Render(ctx context.Context, slide Slide) (string, error)
}

// FaceProvider hands out font faces by font name and point size.
type FaceProvider interface {
	Face(ctx context.Context, name string, size float64) (font.Face, error)
}

var _ Renderer = &Processor{}

type Processor struct {
	faces   FaceProvider
	storage storage.Provider

	styles Styles

	width  int
	height int
}

func NewProcessor(faces FaceProvider, s storage.Provider, options ...Option) (*Processor, error) {
	if faces == nil {
		return nil, errors.New("font provider is required")
	}

	if s == nil {
		return nil, errors.New("storage is required")
	}

	p := &Processor{
		faces:   faces,
		storage: s,

		styles: DefaultStyles(),

		width:  canvas.Width,
		height: canvas.Height,
	}

	for _, option := range options {
		option(p)
	}

	return p, nil
}

func (p *Processor) Render(ctx context.Context, slide Slide) (string, error) {
	style := p.styles.Lookup(slide)

	face, err := p.faces.Face(ctx, style.Font, style.Size)

	if err != nil {
		return "", err
	}

	defer face.Close()

	dc := canvas.Background(p.width, p.height)
	canvas.DrawCenteredText(dc, slide.Content(), face)

	var buf bytes.Buffer

	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	key := FileName(slide.Number)

	if err := p.storage.Put(ctx, key, buf.Bytes(), "image/png"); err != nil {
		return "", fmt.Errorf("store %s: %w", key, err)
	}

	slog.DebugContext(ctx, "slide rendered", "slide", slide.Number, "font", style.Font, "size", style.Size, "file", key)

	return key, nil
}
