package config

import (
	"net/http"
	"net/url"

	"github.com/adrianliechti/carousel/pkg/otel"
)

type proxyConfig struct {
	URL string `yaml:"url"`
}

func (cfg *proxyConfig) proxyTransport() (http.RoundTripper, error) {
	if cfg == nil || cfg.URL == "" {
		return otel.Transport(nil), nil
	}

	proxyURL, err := url.Parse(cfg.URL)

	if err != nil {
		return nil, err
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.Proxy = http.ProxyURL(proxyURL)

	return otel.Transport(tr), nil
}

func (cfg *proxyConfig) proxyClient() (*http.Client, error) {
	transport, err := cfg.proxyTransport()

	if err != nil {
		return nil, err
	}

	return &http.Client{
		Transport: transport,
	}, nil
}
