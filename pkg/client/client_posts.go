package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/adrianliechti/carousel/server/api"
)

type PostService struct {
	Options []RequestOption
}

func NewPostService(opts ...RequestOption) PostService {
	return PostService{
		Options: opts,
	}
}

func (r *PostService) List(ctx context.Context, opts ...RequestOption) ([]string, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/posts", nil)
	c.authorize(req)

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result api.PostsResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Posts, nil
}

// Get returns the rendered image of a post.
func (r *PostService) Get(ctx context.Context, number int, opts ...RequestOption) ([]byte, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/posts/"+strconv.Itoa(number), nil)
	c.authorize(req)

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	return io.ReadAll(resp.Body)
}
