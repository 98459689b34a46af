package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/adrianliechti/carousel/pkg/slide"
	"github.com/adrianliechti/carousel/pkg/storage"
)

var _ Deliverer = &Client{}

type Client struct {
	client  *http.Client
	storage storage.Provider

	url   string
	token string
}

func New(url string, s storage.Provider, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("webhook url is required")
	}

	if s == nil {
		return nil, errors.New("storage is required")
	}

	c := &Client{
		client:  http.DefaultClient,
		storage: s,

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Deliver(ctx context.Context, key string, number int) Result {
	result := Result{
		Number: number,
		File:   slide.FileName(number),
	}

	status, err := c.upload(ctx, key, result.File)

	result.StatusCode = status
	result.Error = err

	if err != nil {
		slog.WarnContext(ctx, "post delivery failed", "file", result.File, "status", status, "error", err)
	} else {
		slog.InfoContext(ctx, "post delivered", "file", result.File, "status", status)
	}

	return result
}

func (c *Client) upload(ctx context.Context, key, name string) (int, error) {
	data, err := storage.ReadAll(ctx, c.storage, key)

	if err != nil {
		return 0, err
	}

	var body bytes.Buffer

	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", multipart.FileContentDisposition("file", name))
	h.Set("Content-Type", "image/png")

	f, err := w.CreatePart(h)

	if err != nil {
		return 0, err
	}

	if _, err := f.Write(data); err != nil {
		return 0, err
	}

	if err := w.Close(); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)

	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", w.FormDataContentType())

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return 0, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, convertError(resp)
	}

	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(data))
}
