package config

import (
	"github.com/adrianliechti/carousel/pkg/storage/fs"
	"github.com/adrianliechti/carousel/pkg/storage/memory"
)

const DefaultStorageDir = "output"

type storageConfig struct {
	Type string `yaml:"type"`
	Dir  string `yaml:"dir"`
}

func (c *Config) registerStorage(f *configFile) error {
	cfg := f.Storage

	switch cfg.Type {
	case "memory":
		c.Storage = memory.New()
		return nil

	case "", "fs", "file":
	default:
		return errInvalidType("storage", cfg.Type)
	}

	dir := cfg.Dir

	if dir == "" {
		dir = DefaultStorageDir
	}

	s, err := fs.New(dir)

	if err != nil {
		return err
	}

	c.Storage = s

	return nil
}
