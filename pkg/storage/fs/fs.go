package fs

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrianliechti/carousel/pkg/storage"
)

var _ storage.Provider = &Provider{}

// Provider stores blobs as plain files below a base directory.
type Provider struct {
	dir string
}

func New(dir string) (*Provider, error) {
	path, err := filepath.Abs(dir)

	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}

	return &Provider{
		dir: path,
	}, nil
}

func (p *Provider) Dir() string {
	return p.dir
}

// Path resolves a key to its file path, rejecting keys outside the base directory.
func (p *Provider) Path(key string) (string, error) {
	key = filepath.FromSlash(key)
	key = filepath.Clean(key)

	if key == "." || filepath.IsAbs(key) || key == ".." || strings.HasPrefix(key, ".."+string(filepath.Separator)) {
		return "", storage.ErrInvalidKey
	}

	path := filepath.Join(p.dir, key)

	if !strings.HasPrefix(path, p.dir+string(filepath.Separator)) {
		return "", storage.ErrInvalidKey
	}

	return path, nil
}

func (p *Provider) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := p.Path(key)

	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)

	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, storage.ErrNotFound
		}

		return nil, err
	}

	return f, nil
}

func (p *Provider) Put(ctx context.Context, key string, data []byte, contentType string) error {
	path, err := p.Path(key)

	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (p *Provider) Exists(ctx context.Context, key string) (bool, error) {
	path, err := p.Path(key)

	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)

	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return !info.IsDir(), nil
}

func (p *Provider) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	err := filepath.WalkDir(p.dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(p.dir, path)

		if err != nil {
			return nil
		}

		key := filepath.ToSlash(rel)

		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	slices.Sort(keys)

	return keys, nil
}

func (p *Provider) Delete(ctx context.Context, key string) error {
	path, err := p.Path(key)

	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}

	return nil
}
