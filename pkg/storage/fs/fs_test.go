package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/carousel/pkg/storage"
	"github.com/adrianliechti/carousel/pkg/storage/fs"

	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	p, err := fs.New(filepath.Join(dir, "output"))
	require.NoError(t, err)

	require.NoError(t, p.Put(ctx, "fonts/Lora-Medium.ttf", []byte("font"), ""))
	require.FileExists(t, filepath.Join(dir, "output", "fonts", "Lora-Medium.ttf"))

	data, err := storage.ReadAll(ctx, p, "fonts/Lora-Medium.ttf")
	require.NoError(t, err)
	require.Equal(t, "font", string(data))

	require.NoError(t, p.Put(ctx, "fonts/Lora-Medium.ttf", []byte("other"), ""))

	data, err = storage.ReadAll(ctx, p, "fonts/Lora-Medium.ttf")
	require.NoError(t, err)
	require.Equal(t, "other", string(data))
}

func TestExists(t *testing.T) {
	ctx := context.Background()

	p, err := fs.New(t.TempDir())
	require.NoError(t, err)

	ok, err := p.Exists(ctx, "post1.png")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, p.Put(ctx, "post1.png", []byte{1}, "image/png"))

	ok, err = p.Exists(ctx, "post1.png")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, os.MkdirAll(filepath.Join(p.Dir(), "fonts"), 0755))

	ok, err = p.Exists(ctx, "fonts")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGetMissing(t *testing.T) {
	p, err := fs.New(t.TempDir())
	require.NoError(t, err)

	_, err = p.Get(context.Background(), "post9.png")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInvalidKeys(t *testing.T) {
	ctx := context.Background()

	p, err := fs.New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../evil", "fonts/../../evil", "/etc/passwd", "", "."} {
		err := p.Put(ctx, key, []byte("x"), "")
		require.ErrorIs(t, err, storage.ErrInvalidKey, key)
	}
}

func TestListDelete(t *testing.T) {
	ctx := context.Background()

	p, err := fs.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.Put(ctx, "post2.png", nil, ""))
	require.NoError(t, p.Put(ctx, "post1.png", nil, ""))
	require.NoError(t, p.Put(ctx, "fonts/a.ttf", nil, ""))

	keys, err := p.List(ctx, "post")
	require.NoError(t, err)
	require.Equal(t, []string{"post1.png", "post2.png"}, keys)

	require.NoError(t, p.Delete(ctx, "post1.png"))
	require.NoError(t, p.Delete(ctx, "post1.png"))

	keys, err = p.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"fonts/a.ttf", "post2.png"}, keys)
}
