package config

import (
	"github.com/adrianliechti/carousel/pkg/limiter"
	"github.com/adrianliechti/carousel/pkg/otel"
	"github.com/adrianliechti/carousel/pkg/webhook"
)

const DefaultWebhookURL = "https://hook.eu2.make.com/zvi2nvx42ia5aqouj0o4t0kxtznw6qga"

type webhookConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`
}

func (c *Config) registerWebhook(f *configFile) error {
	cfg := f.Webhook

	url := cfg.URL

	if url == "" {
		url = DefaultWebhookURL
	}

	client, err := f.Proxy.proxyClient()

	if err != nil {
		return err
	}

	options := []webhook.Option{
		webhook.WithClient(client),
	}

	if cfg.Token != "" {
		options = append(options, webhook.WithToken(cfg.Token))
	}

	w, err := webhook.New(url, c.Storage, options...)

	if err != nil {
		return err
	}

	var deliverer webhook.Deliverer = w

	if l := createLimiter(cfg.Limit); l != nil {
		deliverer = limiter.NewDeliverer(l, deliverer)
	}

	c.Deliverer = otel.NewDeliverer(deliverer)

	return nil
}
