package font

import (
	"net/http"
)

type Option func(*Manager)

func WithClient(client *http.Client) Option {
	return func(m *Manager) {
		m.client = client
	}
}
