package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/carousel/config"
	"github.com/adrianliechti/carousel/pkg/storage/memory"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestParseDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")

	cfg, err := config.Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:5000", cfg.Address)
	require.Empty(t, cfg.Authorizers)
	require.NotNil(t, cfg.Generator)

	require.Len(t, cfg.Fonts.Fonts(), 3)
	require.Equal(t, config.DefaultFonts(), cfg.Fonts.Fonts())

	require.DirExists(t, config.DefaultStorageDir)
}

func TestParsePort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")

	cfg, err := config.Parse("")
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8081", cfg.Address)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("WEBHOOK_TOKEN", "secret")
	t.Setenv("OUTPUT_DIR", filepath.Join(dir, "out"))

	path := writeConfig(t, `
address: 127.0.0.1:9000

authorizers:
  - type: static
    token: abc

storage:
  dir: ${OUTPUT_DIR}

fonts:
  - name: serif
    url: https://example.com/serif.zip
    file: Serif.ttf
  - name: sans
    url: https://example.com/sans.zip
    file: Sans.ttf

styles:
  title:
    font: serif
    size: 80
  quote:
    font: serif
  default:
    font: sans

renderer:
  limit: 5

webhook:
  url: https://example.com/hook
  token: ${WEBHOOK_TOKEN}
  limit: 2
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", cfg.Address)
	require.Len(t, cfg.Authorizers, 1)
	require.Len(t, cfg.Fonts.Fonts(), 2)
	require.DirExists(t, filepath.Join(dir, "out"))
}

func TestParseMemoryStorage(t *testing.T) {
	path := writeConfig(t, `
storage:
  type: memory
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)
	require.IsType(t, &memory.Provider{}, cfg.Storage)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field": `
unknown: true
`,
		"unknown storage": `
storage:
  type: s3
`,
		"unknown style": `
storage:
  type: memory
styles:
  heading:
    size: 10
`,
		"style with unknown font": `
storage:
  type: memory
styles:
  title:
    font: comic
`,
		"incomplete font": `
storage:
  type: memory
fonts:
  - name: serif
`,
		"duplicate font": `
storage:
  type: memory
fonts:
  - name: serif
    url: https://example.com/a.zip
    file: A.ttf
  - name: serif
    url: https://example.com/b.zip
    file: B.ttf
`,
		"invalid authorizer": `
storage:
  type: memory
authorizers:
  - type: magic
`,
		"partial size": `
storage:
  type: memory
renderer:
  width: 100
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}
