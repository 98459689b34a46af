package webhook

import (
	"context"
)

// Deliverer uploads a stored post image to an external receiver.
// Failures are reported in the Result and never returned as errors.
type Deliverer interface {
	Deliver(ctx context.Context, key string, number int) Result
}

type Result struct {
	Number int
	File   string

	StatusCode int
	Error      error
}

func (r Result) OK() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode <= 299
}
