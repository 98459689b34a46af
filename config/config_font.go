package config

import (
	"errors"

	"github.com/adrianliechti/carousel/pkg/font"
)

type fontConfig struct {
	Name string `yaml:"name"`

	URL  string `yaml:"url"`
	File string `yaml:"file"`
}

func DefaultFonts() []font.Font {
	return []font.Font{
		{
			Name: "amiri",
			URL:  "https://github.com/alif-type/amiri/releases/download/0.122/amiri-0.122.zip",
			File: "Amiri-Regular.ttf",
		},
		{
			Name: "garamond",
			URL:  "https://github.com/georgd/EB-Garamond/releases/download/v0.016/EBGaramond-0.016.zip",
			File: "EBGaramond-Bold.ttf",
		},
		{
			Name: "lora",
			URL:  "https://github.com/cyrealtype/Lora/releases/download/v4.202/Lora-Cyrillic.zip",
			File: "Lora-Medium.ttf",
		},
	}
}

func (c *Config) registerFonts(f *configFile) error {
	fonts := DefaultFonts()

	if len(f.Fonts) > 0 {
		fonts = nil

		seen := make(map[string]bool)

		for _, cfg := range f.Fonts {
			if cfg.Name == "" || cfg.URL == "" || cfg.File == "" {
				return errors.New("font requires name, url and file")
			}

			if seen[cfg.Name] {
				return errors.New("duplicate font: " + cfg.Name)
			}

			seen[cfg.Name] = true

			fonts = append(fonts, font.Font{
				Name: cfg.Name,

				URL:  cfg.URL,
				File: cfg.File,
			})
		}
	}

	client, err := f.Proxy.proxyClient()

	if err != nil {
		return err
	}

	m, err := font.New(c.Storage, fonts, font.WithClient(client))

	if err != nil {
		return err
	}

	c.Fonts = m

	return nil
}
