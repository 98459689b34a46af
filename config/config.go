package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"net"
	"os"

	"github.com/adrianliechti/carousel/pkg/auth"
	"github.com/adrianliechti/carousel/pkg/font"
	"github.com/adrianliechti/carousel/pkg/generator"
	"github.com/adrianliechti/carousel/pkg/slide"
	"github.com/adrianliechti/carousel/pkg/storage"
	"github.com/adrianliechti/carousel/pkg/webhook"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

const DefaultPort = "5000"

type Config struct {
	Address string

	Authorizers []auth.Provider

	Storage storage.Provider

	Fonts     *font.Manager
	Renderer  slide.Renderer
	Deliverer webhook.Deliverer

	Generator *generator.Generator
}

// Parse reads the YAML file at path and builds all components from it.
// A missing file yields the built-in defaults.
func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: file.Address,
	}

	if c.Address == "" {
		port := os.Getenv("PORT")

		if port == "" {
			port = DefaultPort
		}

		c.Address = net.JoinHostPort("0.0.0.0", port)
	}

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerStorage(file); err != nil {
		return nil, err
	}

	if err := c.registerFonts(file); err != nil {
		return nil, err
	}

	if err := c.registerRenderer(file); err != nil {
		return nil, err
	}

	if err := c.registerWebhook(file); err != nil {
		return nil, err
	}

	g, err := generator.New(c.Fonts, c.Renderer, c.Deliverer)

	if err != nil {
		return nil, err
	}

	c.Generator = g

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Authorizers []authorizerConfig `yaml:"authorizers"`

	Proxy *proxyConfig `yaml:"proxy"`

	Storage storageConfig `yaml:"storage"`

	Fonts  []fontConfig           `yaml:"fonts"`
	Styles map[string]styleConfig `yaml:"styles"`

	Renderer rendererConfig `yaml:"renderer"`
	Webhook  webhookConfig  `yaml:"webhook"`
}

func parseFile(path string) (*configFile, error) {
	var config configFile

	if path == "" {
		return &config, nil
	}

	data, err := os.ReadFile(path)

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &config, nil
		}

		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil || *limit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
