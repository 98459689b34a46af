package memory

import (
	"bytes"
	"context"
	"io"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/adrianliechti/carousel/pkg/storage"
)

var _ storage.Provider = &Provider{}

type Provider struct {
	mu sync.RWMutex

	blobs map[string]blob
}

type blob struct {
	data        []byte
	contentType string
}

func New() *Provider {
	return &Provider{
		blobs: make(map[string]blob),
	}
}

func (p *Provider) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	key, err := cleanKey(key)

	if err != nil {
		return nil, err
	}

	p.mu.RLock()
	b, ok := p.blobs[key]
	p.mu.RUnlock()

	if !ok {
		return nil, storage.ErrNotFound
	}

	return io.NopCloser(bytes.NewReader(b.data)), nil
}

func (p *Provider) Put(ctx context.Context, key string, data []byte, contentType string) error {
	key, err := cleanKey(key)

	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.blobs[key] = blob{
		data:        slices.Clone(data),
		contentType: contentType,
	}

	return nil
}

func (p *Provider) Exists(ctx context.Context, key string) (bool, error) {
	key, err := cleanKey(key)

	if err != nil {
		return false, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.blobs[key]
	return ok, nil
}

func (p *Provider) List(ctx context.Context, prefix string) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var keys []string

	for key := range p.blobs {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	slices.Sort(keys)

	return keys, nil
}

func (p *Provider) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)

	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.blobs, key)
	return nil
}

// ContentType returns the content type a blob was stored with.
func (p *Provider) ContentType(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.blobs[key].contentType
}

func cleanKey(key string) (string, error) {
	key = path.Clean(strings.TrimPrefix(key, "/"))

	if key == "." || key == ".." || strings.HasPrefix(key, "../") {
		return "", storage.ErrInvalidKey
	}

	return key, nil
}
