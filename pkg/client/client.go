package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/adrianliechti/carousel/server/api"
)

type Client struct {
	Generations GenerationService
	Posts       PostService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Generations: NewGenerationService(opts...),
		Posts:       NewPostService(opts...),
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.URL = strings.TrimRight(c.URL, "/")

	return c
}

func (c *RequestConfig) authorize(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var result api.ErrorResponse

	if err := json.Unmarshal(data, &result); err == nil && result.Error != "" {
		return &Error{StatusCode: resp.StatusCode, Message: result.Error}
	}

	if len(data) == 0 {
		return &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	return &Error{StatusCode: resp.StatusCode, Message: string(data)}
}

type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

func Ptr[T any](v T) *T {
	return &v
}
