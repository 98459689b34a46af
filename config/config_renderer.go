package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/carousel/pkg/limiter"
	"github.com/adrianliechti/carousel/pkg/otel"
	"github.com/adrianliechti/carousel/pkg/slide"
)

type styleConfig struct {
	Font string  `yaml:"font"`
	Size float64 `yaml:"size"`
}

type rendererConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Limit *int `yaml:"limit"`
}

func (c *Config) registerRenderer(f *configFile) error {
	styles, err := c.createStyles(f.Styles)

	if err != nil {
		return err
	}

	options := []slide.Option{
		slide.WithStyles(styles),
	}

	if f.Renderer.Width > 0 || f.Renderer.Height > 0 {
		if f.Renderer.Width <= 0 || f.Renderer.Height <= 0 {
			return errors.New("renderer requires both width and height")
		}

		options = append(options, slide.WithSize(f.Renderer.Width, f.Renderer.Height))
	}

	p, err := slide.NewProcessor(c.Fonts, c.Storage, options...)

	if err != nil {
		return err
	}

	var renderer slide.Renderer = p

	if l := createLimiter(f.Renderer.Limit); l != nil {
		renderer = limiter.NewRenderer(l, renderer)
	}

	c.Renderer = otel.NewRenderer(renderer)

	return nil
}

func (c *Config) createStyles(configs map[string]styleConfig) (slide.Styles, error) {
	styles := slide.DefaultStyles()

	for name, cfg := range configs {
		var t slide.Type

		switch strings.ToLower(name) {
		case "title":
			t = slide.TypeTitle
		case "quote":
			t = slide.TypeQuote
		case "default":
			t = slide.TypeDefault
		default:
			return nil, errInvalidType("style", name)
		}

		style := styles[t]

		if cfg.Font != "" {
			style.Font = cfg.Font
		}

		if cfg.Size > 0 {
			style.Size = cfg.Size
		}

		styles[t] = style
	}

	for _, style := range styles {
		if _, ok := c.Fonts.Font(style.Font); !ok {
			return nil, errors.New("style references unknown font: " + style.Font)
		}
	}

	return styles, nil
}
