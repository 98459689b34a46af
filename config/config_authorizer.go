package config

import (
	"context"
	"strings"

	"github.com/adrianliechti/carousel/pkg/auth"
	"github.com/adrianliechti/carousel/pkg/auth/header"
	"github.com/adrianliechti/carousel/pkg/auth/oidc"
	"github.com/adrianliechti/carousel/pkg/auth/static"
)

type authorizerConfig struct {
	Type string `yaml:"type"`

	Token string `yaml:"token"`

	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

func (c *Config) registerAuthorizer(f *configFile) error {
	for _, a := range f.Authorizers {
		authorizer, err := createAuthorizer(a)

		if err != nil {
			return err
		}

		c.Authorizers = append(c.Authorizers, authorizer)
	}

	return nil
}

func createAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "header":
		return header.New()

	case "static":
		return static.New(cfg.Token)

	case "oidc":
		return oidc.New(context.Background(), cfg.Issuer, cfg.Audience)

	default:
		return nil, errInvalidType("authorizer", cfg.Type)
	}
}
