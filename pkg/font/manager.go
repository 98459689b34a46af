package font

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/adrianliechti/carousel/pkg/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/zip"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

var (
	ErrUnknownFont    = errors.New("unknown font")
	ErrInvalidArchive = errors.New("invalid font archive")
)

// Manager keeps the configured fonts available in storage and hands out parsed faces.
type Manager struct {
	client  *http.Client
	storage storage.Provider

	fonts []Font

	mu     sync.Mutex
	parsed map[string]*opentype.Font
}

func New(s storage.Provider, fonts []Font, options ...Option) (*Manager, error) {
	if s == nil {
		return nil, errors.New("storage is required")
	}

	m := &Manager{
		client:  http.DefaultClient,
		storage: s,

		fonts: fonts,

		parsed: make(map[string]*opentype.Font),
	}

	for _, option := range options {
		option(m)
	}

	return m, nil
}

func (m *Manager) Fonts() []Font {
	return m.fonts
}

func (m *Manager) Font(name string) (Font, bool) {
	for _, f := range m.fonts {
		if f.Name == name {
			return f, true
		}
	}

	return Font{}, false
}

// EnsureAvailable downloads and extracts every font whose file is not yet cached.
// The first failure aborts the run.
func (m *Manager) EnsureAvailable(ctx context.Context) error {
	for _, f := range m.fonts {
		ok, err := m.storage.Exists(ctx, f.Key())

		if err != nil {
			return fmt.Errorf("font %s: %w", f.Name, err)
		}

		if ok {
			continue
		}

		if err := m.fetch(ctx, f); err != nil {
			return fmt.Errorf("font %s: %w", f.Name, err)
		}

		slog.InfoContext(ctx, "font cached", "font", f.Name, "file", f.File)
	}

	return nil
}

func (m *Manager) fetch(ctx context.Context, f Font) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)

	if err != nil {
		return err
	}

	resp, err := m.client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download %s: %s", f.URL, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return err
	}

	if err := m.storage.Put(ctx, f.ArchiveKey(), data, "application/zip"); err != nil {
		return err
	}

	return m.extract(ctx, f, data)
}

func (m *Manager) extract(ctx context.Context, f Font, data []byte) error {
	if !isZip(data) {
		return ErrInvalidArchive
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}

	type entry struct {
		key     string
		content []byte
	}

	var entries []entry
	var target []byte

	for _, file := range r.File {
		if file.FileInfo().IsDir() {
			continue
		}

		name := strings.TrimPrefix(file.Name, "/")
		key := path.Join(Dir, name)

		if !strings.HasPrefix(key, Dir+"/") {
			return fmt.Errorf("%w: entry %q escapes font directory", ErrInvalidArchive, file.Name)
		}

		content, err := readFile(file)

		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArchive, err)
		}

		if path.Base(name) == f.File && target == nil {
			target = content
		}

		if key == f.Key() {
			continue
		}

		entries = append(entries, entry{key, content})
	}

	if target == nil {
		return fmt.Errorf("archive does not contain %s", f.File)
	}

	for _, e := range entries {
		if err := m.storage.Put(ctx, e.key, e.content, ""); err != nil {
			return err
		}
	}

	// the font file marks the cache as complete, so it goes last
	if err := m.storage.Put(ctx, f.Key(), target, ""); err != nil {
		return err
	}

	return nil
}

// Load returns the parsed font for a cached font name.
func (m *Manager) Load(ctx context.Context, name string) (*opentype.Font, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if parsed, ok := m.parsed[name]; ok {
		return parsed, nil
	}

	f, ok := m.Font(name)

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFont, name)
	}

	data, err := storage.ReadAll(ctx, m.storage, f.Key())

	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", f.File, err)
	}

	parsed, err := opentype.Parse(data)

	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", f.File, err)
	}

	m.parsed[name] = parsed

	return parsed, nil
}

// Face returns a face of the named font at the given point size (72 DPI).
func (m *Manager) Face(ctx context.Context, name string, size float64) (font.Face, error) {
	parsed, err := m.Load(ctx, name)

	if err != nil {
		return nil, err
	}

	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func isZip(data []byte) bool {
	for t := mimetype.Detect(data); t != nil; t = t.Parent() {
		if t.Is("application/zip") {
			return true
		}
	}

	return false
}

func readFile(file *zip.File) ([]byte, error) {
	r, err := file.Open()

	if err != nil {
		return nil, err
	}

	defer r.Close()

	return io.ReadAll(r)
}
