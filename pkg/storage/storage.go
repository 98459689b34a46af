package storage

import (
	"context"
	"errors"
	"io"
)

type Provider interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error

	Exists(ctx context.Context, key string) (bool, error)

	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, key string) error
}

var (
	ErrNotFound   = errors.New("not found")
	ErrInvalidKey = errors.New("invalid key")
)

func ReadAll(ctx context.Context, p Provider, key string) ([]byte, error) {
	r, err := p.Get(ctx, key)

	if err != nil {
		return nil, err
	}

	defer r.Close()

	return io.ReadAll(r)
}
